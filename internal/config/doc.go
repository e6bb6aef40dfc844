// Package config loads the IRIS service configuration.
//
// Values come from, in order of precedence:
//
//	1. Environment variables prefixed IRIS_ (highest priority)
//	2. A YAML file: $IRIS_CONFIG_FILE, config.yaml or configs/config.yaml
//	3. Default (lowest priority)
//
// Variable names follow the field path, so ServerConfig.ReadTimeout is
// IRIS_SERVER_READ_TIMEOUT. Unprefixed names such as PORT are never read.
//
// Example:
//
//	IRIS_SERVER_PORT=9090
//	IRIS_WORKBOOK_PATH=capbudg.xls
//	IRIS_WORKBOOK_SHEETS=Model,Assumptions
//	IRIS_LOGGING_LEVEL=debug
//	IRIS_TELEMETRY_ENABLE_TRACING=true
//
// The matching YAML layout:
//
//	server:
//	  port: 9090
//	workbook:
//	  path: capbudg.xls
//	telemetry:
//	  trace_exporter: stdout
//
// Load validates the result; an out of range port, a non-positive timeout,
// an empty workbook path or an unknown trace exporter is rejected.
package config
