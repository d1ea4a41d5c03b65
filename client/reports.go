package client

import (
	"context"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
)

type ReportsService struct {
	c *Client
}

func (c *Client) Reports() *ReportsService {
	return &ReportsService{c: c}
}

func (s *ReportsService) Today(ctx context.Context) (*domain.DailyReport, Envelope) {
	return into[*domain.DailyReport](s.c.Get(ctx, "/reports/today"))
}

func (s *ReportsService) Weekly(ctx context.Context) (*domain.WeeklySummary, Envelope) {
	return into[*domain.WeeklySummary](s.c.Get(ctx, "/reports/weekly"))
}

// Export downloads today's report as an xlsx file.
func (s *ReportsService) Export(ctx context.Context) ([]byte, Envelope) {
	return s.c.GetFile(ctx, "/reports/export")
}
