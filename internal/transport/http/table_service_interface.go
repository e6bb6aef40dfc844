package http

import (
	"context"

	"github.com/ShwetaPawar0705/IRIS/internal/services"
)

// TableServiceInterface defines the table queries served over HTTP
type TableServiceInterface interface {
	ListTables(ctx context.Context) (*services.TableList, error)
	TableDetails(ctx context.Context, table string) (*services.TableDetails, error)
	RowSum(ctx context.Context, table, row string) (*services.RowSum, error)
}

// HealthServiceInterface defines the health query served over HTTP
type HealthServiceInterface interface {
	HealthCheck(ctx context.Context) services.HealthStatus
}
