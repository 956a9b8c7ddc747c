package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/oscahub/benefits-gateway/internal/config"
	gateway "github.com/oscahub/benefits-gateway/internal/gateways"
	"github.com/oscahub/benefits-gateway/internal/handlers"
	"github.com/oscahub/benefits-gateway/internal/repository"
	"github.com/oscahub/benefits-gateway/internal/services"
	xhttp "github.com/oscahub/benefits-gateway/pkg/http"
	"github.com/oscahub/benefits-gateway/pkg/logger"
	"github.com/oscahub/benefits-gateway/pkg/pg"
	"github.com/oscahub/benefits-gateway/pkg/prom"
	"github.com/oscahub/benefits-gateway/pkg/storage"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {

	err := config.Load(argContainsEnvPath())
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return
	}

	s := xhttp.NewServer(xhttp.DefaultServerOption)
	s.Server.ReadBufferSize = 1024 * 16
	s.Server.WriteBufferSize = 1024 * 16
	s.Use(xhttp.CompressMiddleware(6))
	s.Use(xhttp.TimeoutMiddleware(time.Second * 10))
	s.Use(xhttp.RequestLoggerMiddleware)
	s.Use(xhttp.MetricsMiddleware)
	s.Use(xhttp.RecoverMiddleware)
	s.Router = xhttp.CreateDefaultRouter()

	pgConf := pg.Config{
		User:     config.Get().PostgresUser,
		Host:     config.Get().PostgresHost,
		Port:     config.Get().PostgresPort,
		Password: config.Get().PostgresPassword,
		Database: config.Get().PostgresDatabase,
	}

	pgDebug := false
	if config.Get().AppEnv == "dev" {
		pgDebug = true
	}
	db, err := pg.CreateSingle(pgConf, pgDebug)
	if err != nil {
		logger.Error("failed connecting to pg", "error", err)
		return
	}

	host, _ := os.Hostname()
	if err := prom.Create(host, config.Get().AppEnv, config.Get().PromNamespace); err != nil {
		logger.Error("failed to register metrics", "error", err)
		return
	}

	store, err := storage.NewDiskStore(config.Get().StorageDir)
	if err != nil {
		logger.Error("failed to prepare upload storage", "error", err)
		return
	}

	var mailer services.Mailer
	if config.Get().MailerEnabled {
		mailer = gateway.NewMailerClient(config.Get().MailerURL, config.Get().MailerFrom, 5*time.Second)
	}

	seniorRepo := repository.NewSeniorRepository(db)
	benefitRepo := repository.NewBenefitRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	fundRepo := repository.NewFundRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// services
	releaseOffset := time.Duration(config.Get().ReleaseOffsetHours) * time.Hour
	seniorService := services.NewSeniorService(seniorRepo, mailer, releaseOffset)
	benefitService := services.NewBenefitService(benefitRepo)
	applicationService := services.NewApplicationService(applicationRepo, benefitRepo)
	documentService := services.NewDocumentService(documentRepo, store)
	fundService := services.NewFundService(fundRepo, transactionRepo, store)
	notificationService := services.NewNotificationService(notificationRepo, seniorRepo)
	reportService := services.NewReportService(seniorRepo, applicationRepo, fundRepo, transactionRepo)
	healthService := services.NewHealthService()

	// v1 handlers
	seniorHandler := handlers.NewSeniorHandler(seniorService)
	benefitHandler := handlers.NewBenefitHandler(benefitService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	fundHandler := handlers.NewFundHandler(fundService)
	dashboardHandler := handlers.NewDashboardHandler(reportService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	healthHandler := handlers.NewHealthHandler(healthService)

	g := s.Router.Group("/api/v1")
	handlers.RegisterSeniorRoutes(g, seniorHandler)
	handlers.RegisterBenefitRoutes(g, benefitHandler)
	handlers.RegisterApplicationRoutes(g, applicationHandler)
	handlers.RegisterDocumentRoutes(g, documentHandler)
	handlers.RegisterFundRoutes(g, fundHandler)
	handlers.RegisterDashboardRoutes(g, dashboardHandler)
	handlers.RegisterNotificationRoutes(g, notificationHandler)
	handlers.RegisterHealthRoutes(g, healthHandler)

	s.Router.GET("/metrics", prom.Handler())

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		var err = s.ListenAndServe(config.Get().HttpListenAddr)
		if err != nil {
			logger.Error("error in running http-server", "error", err)
		}
	}()

	select {
	case <-c:
		s.Shutdown()
	}
}

func argContainsEnvPath() string {
	for _, v := range os.Args {
		if strings.Contains(v, "--env=") {
			s := strings.Split(v, "=")
			if _, err := os.Open(s[1]); err != nil {
				logger.Error("failed to open the passed env file, got error" + err.Error())
				return ""
			}
			return s[1]
		}
	}
	return ""
}
