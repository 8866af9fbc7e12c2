package auth

import (
	"context"
	"strings"

	"github.com/rhpro/folha-backend-go/internal/domain/auth"
	"github.com/rhpro/folha-backend-go/internal/domain/employee"
	"github.com/rhpro/folha-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	employeeRepo    employee.EmployeeRepository
	jwtService      jwt.Service
	superAdminEmail string
}

func NewAuthService(employeeRepo employee.EmployeeRepository, jwtService jwt.Service, superAdminEmail string) auth.AuthService {
	return &AuthServiceImpl{
		employeeRepo:    employeeRepo,
		jwtService:      jwtService,
		superAdminEmail: superAdminEmail,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// The super-admin address works even with an empty employees table, so
	// a fresh deployment can always be entered.
	if email == s.superAdminEmail {
		token, expiresAt, err := s.jwtService.GenerateAccessToken("Administrador", email, true)
		if err != nil {
			return auth.LoginResponse{}, err
		}
		return auth.LoginResponse{
			Name:        "Administrador",
			Email:       email,
			SuperAdmin:  true,
			AccessToken: token,
			ExpiresAt:   expiresAt,
		}, nil
	}

	emp, err := s.employeeRepo.FindByEmail(ctx, email)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	if emp == nil {
		return auth.LoginResponse{}, auth.ErrEmailNotAuthorized
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(emp.Name, email, false)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	return auth.LoginResponse{
		Name:        emp.Name,
		Email:       email,
		SuperAdmin:  false,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
