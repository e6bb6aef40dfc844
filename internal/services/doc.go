// Package services implements the query layer between the HTTP handlers and
// the table registry.
//
// TableService wraps the registry built once at startup. The registry is
// read-only, so the service holds no locks. When the workbook failed to
// load the service is constructed without a store and every query returns
// tables.ErrServiceUnavailable, which the transport layer maps to 503.
//
// Every query runs inside a span named "tables.<operation>" and is counted
// in table_queries_total by operation and outcome (ok, not_found,
// unavailable, error). A panic raised while evaluating a query is recovered
// and returned as an error wrapping tables.ErrInternal.
//
// HealthService reports liveness together with whether the table store was
// initialised.
package services
