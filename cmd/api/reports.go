package main

import (
	"fmt"
	"net/http"
	"time"
)

// todayReportHandler godoc
//
//	@Summary		Today's sales report
//	@Description	Aggregated sales of paid orders for the current day
//	@Tags			reports
//	@Produce		json
//	@Success		200	{object}	domain.DailyReport
//	@Security		ApiKeyAuth
//	@Router			/reports/today [get]
func (app *application) todayReportHandler(w http.ResponseWriter, r *http.Request) {
	adminID, _, err := tenantFromRequest(r)
	if err != nil {
		app.unauthorizedResponse(w, r, err)
		return
	}

	report, err := app.reportService.DailyReport(r.Context(), adminID, time.Now())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, "report generated", report); err != nil {
		app.internalServerError(w, r, err)
	}
}

// weeklyReportHandler godoc
//
//	@Summary		Weekly sales summary
//	@Description	Day-by-day totals for the last seven days
//	@Tags			reports
//	@Produce		json
//	@Success		200	{object}	domain.WeeklySummary
//	@Security		ApiKeyAuth
//	@Router			/reports/weekly [get]
func (app *application) weeklyReportHandler(w http.ResponseWriter, r *http.Request) {
	adminID, _, err := tenantFromRequest(r)
	if err != nil {
		app.unauthorizedResponse(w, r, err)
		return
	}

	summary, err := app.reportService.WeeklySummary(r.Context(), adminID, time.Now())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, "report generated", summary); err != nil {
		app.internalServerError(w, r, err)
	}
}

// exportReportHandler godoc
//
//	@Summary		Export today's report as a spreadsheet
//	@Description	Returns an xlsx file with totals and a per-product breakdown
//	@Tags			reports
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Success		200	{file}	binary
//	@Security		ApiKeyAuth
//	@Router			/reports/export [get]
func (app *application) exportReportHandler(w http.ResponseWriter, r *http.Request) {
	adminID, _, err := tenantFromRequest(r)
	if err != nil {
		app.unauthorizedResponse(w, r, err)
		return
	}

	day := time.Now()
	buf, err := app.reportService.ExportDaily(r.Context(), adminID, day)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	fileName := fmt.Sprintf("sales-report-%s.xlsx", day.Format("2006-01-02"))

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buf.Len()))

	if _, err := buf.WriteTo(w); err != nil {
		app.logger.Errorw("failed to write report export", "error", err)
	}
}
