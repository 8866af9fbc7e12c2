package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rhpro/folha-backend-go/internal/domain/report"
	"github.com/rhpro/folha-backend-go/internal/handler/http/response"
	"github.com/rhpro/folha-backend-go/internal/pkg/validator"
	"github.com/rhpro/folha-backend-go/internal/pkg/xlsx"
)

type ReportHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	AnnualReport(w http.ResponseWriter, r *http.Request)
	AdvanceReport(w http.ResponseWriter, r *http.Request)
	ExportAnnualReport(w http.ResponseWriter, r *http.Request)
	ExportAdvances(w http.ResponseWriter, r *http.Request)
	ExportEvolution(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func yearParam(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return time.Now().Year(), true
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1900 || year > 9999 {
		return 0, false
	}
	return year, true
}

func (h *reportHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	kpis, err := h.reportService.Dashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, kpis)
}

func (h *reportHandlerImpl) AnnualReport(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(r)
	if !ok {
		response.BadRequest(w, "Query parameter year must be a four digit year", nil)
		return
	}

	annual, err := h.reportService.AnnualReport(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, annual)
}

func (h *reportHandlerImpl) AdvanceReport(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if !validator.IsValidPeriod(period) {
		response.BadRequest(w, "Query parameter period must be YYYY-MM", nil)
		return
	}

	rows, err := h.reportService.AdvanceReport(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rows)
}

func writeExport(w http.ResponseWriter, export report.Export) {
	w.Header().Set("Content-Type", xlsx.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.Filename))
	if err := export.Sheet.Write(w); err != nil {
		// Headers are already out; nothing useful left to send.
		return
	}
}

func (h *reportHandlerImpl) ExportAnnualReport(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(r)
	if !ok {
		response.BadRequest(w, "Query parameter year must be a four digit year", nil)
		return
	}

	export, err := h.reportService.ExportAnnualReport(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	writeExport(w, export)
}

func (h *reportHandlerImpl) ExportAdvances(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if !validator.IsValidPeriod(period) {
		response.BadRequest(w, "Query parameter period must be YYYY-MM", nil)
		return
	}

	export, err := h.reportService.ExportAdvances(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	writeExport(w, export)
}

func (h *reportHandlerImpl) ExportEvolution(w http.ResponseWriter, r *http.Request) {
	export, err := h.reportService.ExportEvolution(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	writeExport(w, export)
}
