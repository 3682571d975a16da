package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/warelogix/warehouse-backend-go/internal/handler/http/middleware"
	"github.com/warelogix/warehouse-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	allowedOrigins []string,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	analyticsHandler AnalyticsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "warehouse-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Get("/login/oauth/google", authHandler.LoginWithGoogle)
			r.Get("/oauth/callback/google", authHandler.OAuthCallbackGoogle)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/staff", func(r chi.Router) {
				r.Post("/attendance", attendanceHandler.Mark)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/{id}/qrcode", attendanceHandler.QRBadge)
				})
			})

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/attendance", analyticsHandler.Attendance)
				r.Get("/employee-details", analyticsHandler.EmployeeDetails)
				r.Get("/today-stats", analyticsHandler.TodayStats)
				r.Get("/export-pdf", analyticsHandler.ExportPDF)
				r.Get("/export-excel", analyticsHandler.ExportExcel)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Create)
				r.Get("/my-requests", leaveHandler.MyRequests)
				r.Get("/balance", leaveHandler.Balance)
				r.Put("/{id}", leaveHandler.Update)
				r.Delete("/{id}", leaveHandler.Delete)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/all", leaveHandler.All)
					r.Patch("/{id}/status", leaveHandler.UpdateStatus)
					r.Get("/report/{employeeId}", leaveHandler.Report)
				})
			})
		})
	})

	return r
}
