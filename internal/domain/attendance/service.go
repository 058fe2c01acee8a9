package attendance

import (
	"context"
)

// Service defines business logic for attendance ingestion and lookups.
type Service interface {
	// ImportFile downloads or opens the CSV named by the request, runs the
	// normalization and deduction pipeline and upserts the results.
	ImportFile(ctx context.Context, req ImportRequest) (ImportSummary, error)

	// ListRecords retrieves stored records for an employee
	ListRecords(ctx context.Context, filter ListFilter) ([]RecordResponse, error)

	// GetRecord retrieves a single record by its minted identifier
	GetRecord(ctx context.Context, id int64) (RecordResponse, error)
}
