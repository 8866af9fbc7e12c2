package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/rhpro/folha-backend-go/internal/config"
	"github.com/rhpro/folha-backend-go/internal/handler/http/middleware"
	"github.com/rhpro/folha-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth      AuthHandler
	Employee  EmployeeHandler
	Launch    LaunchHandler
	Advance   AdvanceHandler
	Evolution EvolutionHandler
	Report    ReportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "folha-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.ListEmployees)
				r.Post("/", h.Employee.CreateEmployee)
				r.Put("/vouchers", h.Employee.BulkUpdateVouchers)
				r.Get("/{id}", h.Employee.GetEmployee)
				r.Put("/{id}", h.Employee.UpdateEmployee)
				r.Delete("/{id}", h.Employee.DeleteEmployee)
			})

			r.Route("/launches", func(r chi.Router) {
				r.Get("/", h.Launch.ListLaunches)
				r.Post("/", h.Launch.CreateLaunch)
				r.Post("/quick", h.Launch.QuickCreateLaunch)
				r.Get("/{id}", h.Launch.GetLaunch)
				r.Put("/{id}", h.Launch.UpdateLaunch)
				r.Delete("/{id}", h.Launch.DeleteLaunch)
			})

			r.Route("/advances", func(r chi.Router) {
				r.Get("/", h.Advance.GetAdvances)
				r.Put("/", h.Advance.SaveAdvances)
				r.Get("/export", h.Report.ExportAdvances)
			})

			r.Route("/salary-evolution", func(r chi.Router) {
				r.Get("/", h.Evolution.ListEvolution)
				r.Post("/", h.Evolution.CreateEvolution)
				r.Delete("/{id}", h.Evolution.DeleteEvolution)
				r.Get("/export", h.Report.ExportEvolution)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/dashboard", h.Report.Dashboard)
				r.Get("/annual", h.Report.AnnualReport)
				r.Get("/annual/export", h.Report.ExportAnnualReport)
				r.Get("/advances", h.Report.AdvanceReport)
			})
		})
	})
	return r
}
