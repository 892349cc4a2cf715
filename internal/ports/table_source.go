package ports

import (
	"collection-dashboard/internal/domain"
	"context"
)

// Port: a boundary for retrieving the collection sheet as an untyped table.
type TableSource interface {
	// Return the header row and every data row of the sheet.
	FetchTable(ctx context.Context) (*domain.RawTable, error)
}
