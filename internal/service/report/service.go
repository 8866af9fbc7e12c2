package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rhpro/folha-backend-go/internal/domain/advance"
	"github.com/rhpro/folha-backend-go/internal/domain/employee"
	"github.com/rhpro/folha-backend-go/internal/domain/evolution"
	"github.com/rhpro/folha-backend-go/internal/domain/launch"
	"github.com/rhpro/folha-backend-go/internal/domain/report"
	"github.com/rhpro/folha-backend-go/internal/pkg/validator"
	"github.com/rhpro/folha-backend-go/internal/pkg/xlsx"
)

var monthHeaders = []string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

type ReportServiceImpl struct {
	employeeRepo  employee.EmployeeRepository
	launchRepo    launch.LaunchRepository
	advanceRepo   advance.AdvanceRepository
	evolutionRepo evolution.EvolutionRepository
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	launchRepo launch.LaunchRepository,
	advanceRepo advance.AdvanceRepository,
	evolutionRepo evolution.EvolutionRepository,
) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo:  employeeRepo,
		launchRepo:    launchRepo,
		advanceRepo:   advanceRepo,
		evolutionRepo: evolutionRepo,
	}
}

func (s *ReportServiceImpl) Dashboard(ctx context.Context) (report.KPIs, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return report.KPIs{}, err
	}
	launches, err := s.launchRepo.List(ctx)
	if err != nil {
		return report.KPIs{}, err
	}
	return report.ComputeKPIs(employees, launches), nil
}

func (s *ReportServiceImpl) AnnualReport(ctx context.Context, year int) (report.AnnualReportResponse, error) {
	launches, err := s.launchRepo.List(ctx)
	if err != nil {
		return report.AnnualReportResponse{}, err
	}
	return report.AnnualReportResponse{
		Year: year,
		Rows: report.BuildAnnualReport(launches, year),
	}, nil
}

func (s *ReportServiceImpl) AdvanceReport(ctx context.Context, period string) ([]report.AdvanceRow, error) {
	if !validator.IsValidPeriod(period) {
		return nil, advance.ErrInvalidPeriod
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	stored, err := s.advanceRepo.ListByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}
	return report.BuildAdvanceReport(employees, stored, period), nil
}

// amount renders a decimal as a plain spreadsheet number.
func amount(d decimal.Decimal) any {
	f, _ := d.Float64()
	return f
}

func (s *ReportServiceImpl) ExportAnnualReport(ctx context.Context, year int) (report.Export, error) {
	annual, err := s.AnnualReport(ctx, year)
	if err != nil {
		return report.Export{}, err
	}

	headers := make([]string, 0, 14)
	headers = append(headers, "Funcionário")
	headers = append(headers, monthHeaders...)
	headers = append(headers, "Total Anual")

	rows := make([][]any, 0, len(annual.Rows))
	for _, row := range annual.Rows {
		cells := make([]any, 0, 14)
		cells = append(cells, row.EmployeeName)
		for _, m := range row.Months {
			cells = append(cells, amount(m))
		}
		cells = append(cells, amount(row.Total))
		rows = append(rows, cells)
	}

	return report.Export{
		Filename: fmt.Sprintf("Relatorio_Anual_RH_%d.xlsx", year),
		Sheet: xlsx.Sheet{
			Name:    fmt.Sprintf("Relatório %d", year),
			Headers: headers,
			Rows:    rows,
		},
	}, nil
}

func (s *ReportServiceImpl) ExportAdvances(ctx context.Context, period string) (report.Export, error) {
	advanceRows, err := s.AdvanceReport(ctx, period)
	if err != nil {
		return report.Export{}, err
	}

	rows := make([][]any, 0, len(advanceRows))
	for _, row := range advanceRows {
		rows = append(rows, []any{
			row.EmployeeName,
			row.Period,
			amount(row.BaseSalary),
			amount(row.FunctionBonus),
			amount(row.StandardAdvance),
			amount(row.OtherAdvances),
			amount(row.TotalAdvance),
		})
	}

	return report.Export{
		Filename: fmt.Sprintf("adiantamentos_%s.xlsx", period),
		Sheet: xlsx.Sheet{
			Name: "Adiantamentos",
			Headers: []string{
				"Funcionário", "Período", "Salário Base", "Acúmulo Função",
				"Adiantamento (40%)", "Outros Adiant.", "Total Adiantamento",
			},
			Rows: rows,
		},
	}, nil
}

func (s *ReportServiceImpl) ExportEvolution(ctx context.Context) (report.Export, error) {
	records, err := s.evolutionRepo.List(ctx)
	if err != nil {
		return report.Export{}, err
	}

	rows := make([][]any, 0, len(records))
	for _, e := range records {
		rows = append(rows, []any{
			e.EmployeeName,
			e.Date,
			e.Role,
			e.Reason,
			amount(e.BaseSalary),
			amount(e.FunctionBonus),
			amount(e.OtherEarnings),
			amount(e.GrossTotal()),
		})
	}

	return report.Export{
		Filename: "evolucao_salarial.xlsx",
		Sheet: xlsx.Sheet{
			Name: "Evolução Salarial",
			Headers: []string{
				"Colaborador", "Data Alteração", "Cargo", "Motivo",
				"Salário Base", "Acúmulo Função", "Outros", "Total Bruto",
			},
			Rows: rows,
		},
	}, nil
}
