package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/warelogix/warehouse-backend-go/internal/config"
	appHTTP "github.com/warelogix/warehouse-backend-go/internal/handler/http"
	"github.com/warelogix/warehouse-backend-go/internal/pkg/cron"
	"github.com/warelogix/warehouse-backend-go/internal/pkg/database"
	"github.com/warelogix/warehouse-backend-go/internal/pkg/jwt"
	"github.com/warelogix/warehouse-backend-go/internal/pkg/oauth"
	"github.com/warelogix/warehouse-backend-go/internal/pkg/redislock"
	"github.com/warelogix/warehouse-backend-go/internal/pkg/storage"
	"github.com/warelogix/warehouse-backend-go/internal/pkg/workday"
	"github.com/warelogix/warehouse-backend-go/internal/repository/postgresql"
	analyticsService "github.com/warelogix/warehouse-backend-go/internal/service/analytics"
	attendanceService "github.com/warelogix/warehouse-backend-go/internal/service/attendance"
	authService "github.com/warelogix/warehouse-backend-go/internal/service/auth"
	leaveService "github.com/warelogix/warehouse-backend-go/internal/service/leave"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	attendanceReader := postgresql.NewAttendanceReader(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	googleService := oauth.NewGoogleService(
		cfg.OAuth2Google.ClientID,
		cfg.OAuth2Google.ClientSecret,
		cfg.OAuth2Google.RedirectURL,
		[]string{"https://www.googleapis.com/auth/userinfo.email"},
	)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	case "cloudinary":
		fileStorage, err = storage.NewCloudinaryStorage(
			cfg.Storage.CloudinaryCloudName,
			cfg.Storage.CloudinaryAPIKey,
			cfg.Storage.CloudinaryAPISecret,
			cfg.Storage.CloudinaryFolder,
		)
		if err != nil {
			log.Fatal("Failed to initialize cloudinary storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	policy := workday.NewPolicy(cfg.Workday.Start, cfg.Workday.End, cfg.Workday.GracePeriod)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, policy)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, employeeRepo, fileStorage, cfg.Workday.AnnualQuota)
	analyticsSvc := analyticsService.NewAnalyticsService(attendanceReader, employeeRepo)
	authSvc := authService.NewAuthService(employeeRepo, jwtService, googleService)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, employeeRepo)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	analyticsHandler := appHTTP.NewAnalyticsHandler(analyticsSvc)

	router := appHTTP.NewRouter(
		jwtService,
		[]string{cfg.App.FrontendURL},
		authHandler,
		attendanceHandler,
		leaveHandler,
		analyticsHandler,
	)

	locker := redislock.NewLocker(redislock.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB))
	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceSvc, policy, locker).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
