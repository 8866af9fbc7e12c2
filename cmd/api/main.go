package main

import (
	"fmt"
	"net/http"

	"github.com/rhpro/folha-backend-go/internal/config"
	appHTTP "github.com/rhpro/folha-backend-go/internal/handler/http"
	"github.com/rhpro/folha-backend-go/internal/pkg/database"
	"github.com/rhpro/folha-backend-go/internal/pkg/jwt"
	"github.com/rhpro/folha-backend-go/internal/repository/postgresql"
	advanceService "github.com/rhpro/folha-backend-go/internal/service/advance"
	authService "github.com/rhpro/folha-backend-go/internal/service/auth"
	employeeService "github.com/rhpro/folha-backend-go/internal/service/employee"
	evolutionService "github.com/rhpro/folha-backend-go/internal/service/evolution"
	launchService "github.com/rhpro/folha-backend-go/internal/service/launch"
	reportService "github.com/rhpro/folha-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	launchRepo := postgresql.NewLaunchRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	evolutionRepo := postgresql.NewEvolutionRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(employeeRepo, jwtService, cfg.Auth.SuperAdminEmail)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	launchSvc := launchService.NewLaunchService(launchRepo, employeeRepo)
	advanceSvc := advanceService.NewAdvanceService(advanceRepo, employeeRepo)
	evolutionSvc := evolutionService.NewEvolutionService(evolutionRepo)
	reportSvc := reportService.NewReportService(employeeRepo, launchRepo, advanceRepo, evolutionRepo)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:      appHTTP.NewAuthHandler(authSvc),
		Employee:  appHTTP.NewEmployeeHandler(employeeSvc),
		Launch:    appHTTP.NewLaunchHandler(launchSvc),
		Advance:   appHTTP.NewAdvanceHandler(advanceSvc),
		Evolution: appHTTP.NewEvolutionHandler(evolutionSvc),
		Report:    appHTTP.NewReportHandler(reportSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
