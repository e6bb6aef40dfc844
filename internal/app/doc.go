// Package app wires the IRIS service together and manages its lifecycle.
//
// # Initialization Flow
//
//	1. Load configuration from environment and files
//	2. Initialize logging and OpenTelemetry
//	3. Load the workbook once into an immutable table registry
//	4. Build the table and health services over the registry
//	5. Set up the chi router, middleware chain and handlers
//	6. Serve until SIGINT or SIGTERM, then shut down gracefully
//
// A workbook that cannot be read does not stop the service. The failure is
// logged, /health reports processor_initialized=false and the table
// endpoints answer 503.
//
// # Usage
//
//	application, err := app.NewApplication()
//	if err != nil {
//	    return err
//	}
//	return application.Run()
//
// All initialization errors are returned to the caller. The package never
// calls os.Exit.
package app
