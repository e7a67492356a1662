// Package shared holds helpers used across packages. testutil provides log
// capture for tests.
package shared
