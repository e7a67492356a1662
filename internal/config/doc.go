// Package config provides centralized configuration management for iplstats.
//
// # Configuration Sources
//
// Configuration is layered, later sources winning:
//
//	1. Default values (Default())
//	2. A YAML file: the -config flag, else iplstats.yaml or configs/iplstats.yaml
//	3. Environment variables (highest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern IPL_<SECTION>_<KEY>:
//
//	IPL_DATA_MATCHES_FILE=data/matches.csv
//	IPL_DATA_DELIVERIES_FILE=data/deliveries.csv
//	IPL_REPORT_EXTRAS_SEASON=2016
//	IPL_REPORT_DISMISSAL_THRESHOLD=10
//	IPL_EXPORT_DIR=out
//	IPL_EXPORT_FORMATS=csv,xlsx
//	IPL_LOGGING_LEVEL=debug
//	IPL_TELEMETRY_METRICS_FILE=/var/lib/node_exporter/iplstats.prom
//
// # Validation
//
// Load validates the merged configuration with struct tags, so a bad season,
// threshold, export format or logging option fails before any file is read.
//
// With no file and no environment the report reads data/matches.csv and
// data/deliveries.csv and covers the 2016 extras, 2015 economy and 2017
// dismissal seasons.
package config
