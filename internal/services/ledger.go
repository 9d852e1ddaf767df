package services

import (
	"context"

	"thesisledger/internal/api"
	"thesisledger/internal/logging"
	"thesisledger/internal/models"
)

// LedgerService reads the published side of the platform: ledger records
// and the admin dashboard counters.
type LedgerService struct {
	api      api.Client
	pageSize int
	log      logging.Logger
}

func NewLedgerService(c api.Client, pageSize int, log logging.Logger) *LedgerService {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &LedgerService{api: c, pageSize: pageSize, log: log}
}

// Records returns one page of ledger-recorded papers.
func (s *LedgerService) Records(ctx context.Context, page int) (models.ResultSet[models.PublishedPaper], error) {
	if page < 0 {
		page = 0
	}
	return s.api.LedgerRecords(ctx, page, s.pageSize)
}

// Stats returns the dashboard counters.
func (s *LedgerService) Stats(ctx context.Context) (models.AdminStats, error) {
	return s.api.AdminStats(ctx)
}
