package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
	"github.com/fevziatanoglu/cafe-management/internal/repo"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ReportService struct {
	reportRepo repo.ReportRepository
	logger     *zap.SugaredLogger
}

func NewReportService(reportRepo repo.ReportRepository, logger *zap.SugaredLogger) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

func (s *ReportService) DailyReport(ctx context.Context, adminID primitive.ObjectID, day time.Time) (*domain.DailyReport, error) {
	report, err := s.reportRepo.Daily(ctx, adminID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to build daily report: %w", err)
	}

	return report, nil
}

// WeeklySummary aggregates the seven days ending at the given day.
func (s *ReportService) WeeklySummary(ctx context.Context, adminID primitive.ObjectID, endDay time.Time) (*domain.WeeklySummary, error) {
	summary := &domain.WeeklySummary{
		AdminID: adminID,
		From:    endDay.AddDate(0, 0, -6),
		To:      endDay,
		Days:    []domain.DailyReport{},
	}

	for i := 6; i >= 0; i-- {
		day := endDay.AddDate(0, 0, -i)

		report, err := s.reportRepo.Daily(ctx, adminID, day)
		if err != nil {
			return nil, fmt.Errorf("failed to build weekly summary: %w", err)
		}

		summary.TotalSales += report.TotalSales
		summary.OrderCount += report.OrderCount
		summary.Days = append(summary.Days, *report)
	}

	return summary, nil
}

// ExportDaily renders a daily report as an xlsx workbook.
func (s *ReportService) ExportDaily(ctx context.Context, adminID primitive.ObjectID, day time.Time) (*bytes.Buffer, error) {
	report, err := s.reportRepo.Daily(ctx, adminID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to build daily report: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	f.SetCellValue(sheet, "A1", "Date")
	f.SetCellValue(sheet, "B1", report.Date.Format("2006-01-02"))
	f.SetCellValue(sheet, "A2", "Total sales")
	f.SetCellValue(sheet, "B2", report.TotalSales)
	f.SetCellValue(sheet, "A3", "Orders")
	f.SetCellValue(sheet, "B3", report.OrderCount)

	f.SetCellValue(sheet, "A5", "Product")
	f.SetCellValue(sheet, "B5", "Quantity")
	f.SetCellValue(sheet, "C5", "Revenue")

	for i, item := range report.Items {
		row := 6 + i
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), item.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), item.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), item.Revenue)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write report workbook: %w", err)
	}

	s.logger.Infow("daily report exported", "admin_id", adminID.Hex(), "date", report.Date.Format("2006-01-02"))

	return buf, nil
}
