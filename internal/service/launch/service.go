package launch

import (
	"context"
	"time"

	"github.com/rhpro/folha-backend-go/internal/domain/employee"
	"github.com/rhpro/folha-backend-go/internal/domain/launch"
)

func today() string {
	return time.Now().Format("2006-01-02")
}

type LaunchServiceImpl struct {
	launchRepo   launch.LaunchRepository
	employeeRepo employee.EmployeeRepository
}

func NewLaunchService(launchRepo launch.LaunchRepository, employeeRepo employee.EmployeeRepository) launch.LaunchService {
	return &LaunchServiceImpl{launchRepo: launchRepo, employeeRepo: employeeRepo}
}

func mapLaunchToResponse(l launch.MonthlyLaunch) launch.LaunchResponse {
	return launch.LaunchResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		ClosingDate:  l.ClosingDate,

		BaseSalary:    l.BaseSalary,
		FunctionBonus: l.FunctionBonus,
		OtherEarnings: l.OtherEarnings,
		PremiumAmount: l.PremiumAmount,
		BasicBasket:   l.BasicBasket,
		MealVoucher:   l.MealVoucher,
		FoodVoucher:   l.FoodVoucher,

		ExtraHours100: l.ExtraHours100,
		ExtraHours70:  l.ExtraHours70,
		ExtraHours50:  l.ExtraHours50,

		HasTransportVoucher:   l.HasTransportVoucher,
		TransportVoucherValue: l.TransportVoucherValue,

		Advances:         l.Advances,
		MedicalConvenio:  l.MedicalConvenio,
		DentalConvenio:   l.DentalConvenio,
		PharmacyConvenio: l.PharmacyConvenio,
		OtherConvenios:   l.OtherConvenios,
		Absences:         l.Absences,
		Loans:            l.Loans,

		OtherDiscounts: l.OtherDiscounts,
		Notes:          l.Notes,

		TotalEarnings:   l.TotalEarnings,
		TotalDeductions: l.TotalDeductions,
		NetSalary:       l.NetSalary,

		CreatedAt: l.CreatedAt,
	}
}

func entityFromCreateRequest(req launch.CreateLaunchRequest) launch.MonthlyLaunch {
	return launch.MonthlyLaunch{
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		ClosingDate:  req.ClosingDate,

		BaseSalary:    req.BaseSalary.Dec(),
		FunctionBonus: req.FunctionBonus.Dec(),
		OtherEarnings: req.OtherEarnings.Dec(),
		PremiumAmount: req.PremiumAmount.Dec(),
		BasicBasket:   req.BasicBasket.Dec(),
		MealVoucher:   req.MealVoucher.Dec(),
		FoodVoucher:   req.FoodVoucher.Dec(),

		ExtraHours100: req.ExtraHours100.Dec(),
		ExtraHours70:  req.ExtraHours70.Dec(),
		ExtraHours50:  req.ExtraHours50.Dec(),

		HasTransportVoucher:   req.HasTransportVoucher,
		TransportVoucherValue: req.TransportVoucherValue.Dec(),

		Advances:         req.Advances.Dec(),
		MedicalConvenio:  req.MedicalConvenio.Dec(),
		DentalConvenio:   req.DentalConvenio.Dec(),
		PharmacyConvenio: req.PharmacyConvenio.Dec(),
		OtherConvenios:   req.OtherConvenios.Dec(),
		Absences:         req.Absences.Dec(),
		Loans:            req.Loans.Dec(),

		OtherDiscounts: req.OtherDiscounts,
		Notes:          req.Notes,
	}
}

// mergePatch overlays the provided fields onto the stored record. Only the
// merged result is summed; the patch alone never is.
func mergePatch(stored launch.MonthlyLaunch, req launch.UpdateLaunchRequest) launch.MonthlyLaunch {
	if req.EmployeeID != nil {
		stored.EmployeeID = *req.EmployeeID
	}
	if req.EmployeeName != nil {
		stored.EmployeeName = *req.EmployeeName
	}
	if req.ClosingDate != nil {
		stored.ClosingDate = *req.ClosingDate
	}

	if req.BaseSalary != nil {
		stored.BaseSalary = req.BaseSalary.Dec()
	}
	if req.FunctionBonus != nil {
		stored.FunctionBonus = req.FunctionBonus.Dec()
	}
	if req.OtherEarnings != nil {
		stored.OtherEarnings = req.OtherEarnings.Dec()
	}
	if req.PremiumAmount != nil {
		stored.PremiumAmount = req.PremiumAmount.Dec()
	}
	if req.BasicBasket != nil {
		stored.BasicBasket = req.BasicBasket.Dec()
	}
	if req.MealVoucher != nil {
		stored.MealVoucher = req.MealVoucher.Dec()
	}
	if req.FoodVoucher != nil {
		stored.FoodVoucher = req.FoodVoucher.Dec()
	}

	if req.ExtraHours100 != nil {
		stored.ExtraHours100 = req.ExtraHours100.Dec()
	}
	if req.ExtraHours70 != nil {
		stored.ExtraHours70 = req.ExtraHours70.Dec()
	}
	if req.ExtraHours50 != nil {
		stored.ExtraHours50 = req.ExtraHours50.Dec()
	}

	if req.HasTransportVoucher != nil {
		stored.HasTransportVoucher = *req.HasTransportVoucher
	}
	if req.TransportVoucherValue != nil {
		stored.TransportVoucherValue = req.TransportVoucherValue.Dec()
	}

	if req.Advances != nil {
		stored.Advances = req.Advances.Dec()
	}
	if req.MedicalConvenio != nil {
		stored.MedicalConvenio = req.MedicalConvenio.Dec()
	}
	if req.DentalConvenio != nil {
		stored.DentalConvenio = req.DentalConvenio.Dec()
	}
	if req.PharmacyConvenio != nil {
		stored.PharmacyConvenio = req.PharmacyConvenio.Dec()
	}
	if req.OtherConvenios != nil {
		stored.OtherConvenios = req.OtherConvenios.Dec()
	}
	if req.Absences != nil {
		stored.Absences = req.Absences.Dec()
	}
	if req.Loans != nil {
		stored.Loans = req.Loans.Dec()
	}

	if req.OtherDiscounts != nil {
		stored.OtherDiscounts = *req.OtherDiscounts
	}
	if req.Notes != nil {
		stored.Notes = *req.Notes
	}

	return stored
}

func (s *LaunchServiceImpl) List(ctx context.Context) ([]launch.LaunchResponse, error) {
	launches, err := s.launchRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]launch.LaunchResponse, 0, len(launches))
	for _, l := range launches {
		responses = append(responses, mapLaunchToResponse(l))
	}
	return responses, nil
}

func (s *LaunchServiceImpl) Get(ctx context.Context, id string) (launch.LaunchResponse, error) {
	l, err := s.launchRepo.GetByID(ctx, id)
	if err != nil {
		return launch.LaunchResponse{}, err
	}
	return mapLaunchToResponse(l), nil
}

func (s *LaunchServiceImpl) Create(ctx context.Context, req launch.CreateLaunchRequest) (launch.LaunchResponse, error) {
	if err := req.Validate(); err != nil {
		return launch.LaunchResponse{}, err
	}

	l := entityFromCreateRequest(req)
	launch.ApplyTotals(&l)

	created, err := s.launchRepo.Create(ctx, l)
	if err != nil {
		return launch.LaunchResponse{}, err
	}
	return mapLaunchToResponse(created), nil
}

// QuickCreate seeds a launch from the employee's current contract values,
// closing on today's date.
func (s *LaunchServiceImpl) QuickCreate(ctx context.Context, req launch.QuickLaunchRequest) (launch.LaunchResponse, error) {
	if err := req.Validate(); err != nil {
		return launch.LaunchResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return launch.LaunchResponse{}, err
	}

	l := launch.MonthlyLaunch{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		ClosingDate:  today(),

		BaseSalary:    emp.BaseSalary,
		FunctionBonus: emp.FunctionBonus,
		MealVoucher:   emp.DefaultMealVoucher,
		FoodVoucher:   emp.DefaultFoodVoucher,

		OtherEarnings: req.OtherEarnings.Dec(),
		PremiumAmount: req.PremiumAmount.Dec(),
		Absences:      req.Absences.Dec(),

		Notes: "Lançamento via Ação Rápida",
	}
	launch.ApplyTotals(&l)

	created, err := s.launchRepo.Create(ctx, l)
	if err != nil {
		return launch.LaunchResponse{}, err
	}
	return mapLaunchToResponse(created), nil
}

func (s *LaunchServiceImpl) Update(ctx context.Context, req launch.UpdateLaunchRequest) (launch.LaunchResponse, error) {
	if err := req.Validate(); err != nil {
		return launch.LaunchResponse{}, err
	}

	stored, err := s.launchRepo.GetByID(ctx, req.ID)
	if err != nil {
		return launch.LaunchResponse{}, err
	}

	merged := mergePatch(stored, req)
	launch.ApplyTotals(&merged)

	updated, err := s.launchRepo.Update(ctx, merged)
	if err != nil {
		return launch.LaunchResponse{}, err
	}
	return mapLaunchToResponse(updated), nil
}

func (s *LaunchServiceImpl) Delete(ctx context.Context, id string) error {
	return s.launchRepo.Delete(ctx, id)
}
