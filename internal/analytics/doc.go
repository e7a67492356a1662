// Package analytics computes the season statistics over parsed match and
// delivery records.
//
// Each aggregation is a pure function of its inputs. Season-scoped
// aggregations select deliveries through the set of match ids played in the
// season (SeasonMatchIDs); a delivery whose match id is not in a loaded match
// is silently left out. Results are returned as ordered slices so callers
// never depend on map iteration order.
//
// Engine runs all five aggregations for one report concurrently and records
// a span and a duration sample for each.
package analytics
