package report

import (
	"context"

	"github.com/rhpro/folha-backend-go/internal/pkg/xlsx"
)

// Export bundles a rendered workbook with the filename to suggest to the
// downloading client.
type Export struct {
	Filename string
	Sheet    xlsx.Sheet
}

// ReportService drives the dashboard figures and the spreadsheet exports.
type ReportService interface {
	Dashboard(ctx context.Context) (KPIs, error)
	AnnualReport(ctx context.Context, year int) (AnnualReportResponse, error)
	AdvanceReport(ctx context.Context, period string) ([]AdvanceRow, error)

	ExportAnnualReport(ctx context.Context, year int) (Export, error)
	ExportAdvances(ctx context.Context, period string) (Export, error)
	ExportEvolution(ctx context.Context) (Export, error)
}
