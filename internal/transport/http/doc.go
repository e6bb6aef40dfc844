// Package http implements the HTTP handlers of the IRIS service.
//
// Handlers are thin: they bind and validate the query string, call the
// service layer and render the result as JSON with go-chi/render. Every
// error goes through errors.ErrorHandler, which turns it into an RFC 7807
// problem document.
//
// # Endpoints
//
//	GET /                                         service info
//	GET /list_tables                              {"tables": [...]}
//	GET /get_table_details?table_name=            {"table_name", "row_names"}
//	GET /row_sum?table_name=&row_name=            {"table_name", "row_name", "sum"}
//	GET /health                                   {"status", "processor_initialized"}
//
// A required query parameter that is absent yields 422. A parameter that is
// present but empty is passed to the service as "" and fails the lookup
// with 404.
package http
