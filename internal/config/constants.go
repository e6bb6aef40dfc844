package config

import "time"

// Application constants
const (
	AppName    = "IRIS"
	AppVersion = "1.0.0"

	// EnvPrefix namespaces every environment variable, e.g. IRIS_SERVER_PORT
	EnvPrefix = "IRIS"

	DefaultPort           = 9090
	DefaultWorkbookPath   = "capbudg.xls"
	DefaultLogFile        = "logs/iris.log"
	DefaultRequestTimeout = 10 * time.Second

	TraceExporterNone   = "none"
	TraceExporterStdout = "stdout"
)

// Endpoints served by the HTTP transport
const (
	RootEndpoint         = "/"
	ListTablesEndpoint   = "/list_tables"
	TableDetailsEndpoint = "/get_table_details"
	RowSumEndpoint       = "/row_sum"
	HealthEndpoint       = "/health"
	MetricsEndpoint      = "/metrics"
)

var configLocations = []string{
	"config.yaml",
	"configs/config.yaml",
}
