package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/lovelyhome/carehome/internal/auth"
	"github.com/lovelyhome/carehome/internal/config"
	"github.com/lovelyhome/carehome/internal/repository/mongodb"
	"github.com/lovelyhome/carehome/internal/repository/sheets"
	"github.com/lovelyhome/carehome/internal/scheduler"
	"github.com/lovelyhome/carehome/internal/server/handlers"
	"github.com/lovelyhome/carehome/internal/server/middleware"
	"github.com/lovelyhome/carehome/internal/server/router"
	adminsvc "github.com/lovelyhome/carehome/internal/service/admin"
	commandsvc "github.com/lovelyhome/carehome/internal/service/commands"
	"github.com/lovelyhome/carehome/internal/service/notify"
	outreachsvc "github.com/lovelyhome/carehome/internal/service/outreach"
	reportingsvc "github.com/lovelyhome/carehome/internal/service/reporting"
	whatsappsvc "github.com/lovelyhome/carehome/internal/service/whatsapp"
	"github.com/lovelyhome/carehome/internal/store/memory"
	whatsappclient "github.com/lovelyhome/carehome/pkg/clients/whatsapp"
	"github.com/lovelyhome/carehome/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	store := memory.NewStore(
		memory.WithHomeIDs(idGenerator(cfg.Store.IDStrategy)),
		memory.WithResidentIDs(idGenerator(cfg.Store.IDStrategy)),
	)

	var verifier auth.Verifier = auth.NewStaticVerifier(cfg.Admin.Username, cfg.Admin.Password)
	if cfg.Admin.PasswordHash != "" {
		verifier = auth.NewBcryptVerifier(cfg.Admin.Username, cfg.Admin.PasswordHash)
		baseLogger.Info("admin password hash configured")
	}
	gate := auth.NewGate(verifier, baseLogger.Named("auth.gate"))

	var whatsClient *whatsappclient.APIClient
	var notifier notify.Notifier
	if cfg.WhatsApp.Enabled() {
		whatsClient = whatsappclient.NewClient(cfg.WhatsApp)
		notifier = notify.NewWhatsAppNotifier(whatsClient, cfg.WhatsApp.CoordinatorID, baseLogger.Named("notify.whatsapp"))
		baseLogger.Info("whatsapp notifications enabled")
	} else {
		notifier = notify.NewLogNotifier(baseLogger.Named("notify.log"))
		baseLogger.Warn("whatsapp token missing, notifications are logged only")
	}

	adminService := adminsvc.NewService(store, gate, baseLogger.Named("svc.admin"))
	outreachService := outreachsvc.NewService(idGenerator(cfg.Store.IDStrategy), notifier, baseLogger.Named("svc.outreach"))
	if cfg.Store.SeedDemoData {
		if err := adminService.Seed(); err != nil {
			baseLogger.Fatal("failed to seed demo homes", zap.Error(err))
		}
		if err := outreachService.Seed(); err != nil {
			baseLogger.Fatal("failed to seed outreach content", zap.Error(err))
		}
	}

	reportingService := reportingsvc.NewService(store, cfg.Reporting.CheckupWindowDays, cfg.Reporting.Location(), baseLogger.Named("svc.reporting"))

	var opts scheduler.Options
	var archive handlers.ReportArchiveReader
	if cfg.MongoDB.Enabled() {
		mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		opts.Archive = mongoRepo
		archive = mongoRepo
		baseLogger.Info("report archive enabled", zap.String("db", cfg.MongoDB.DBName))
	}

	if cfg.Sheets.Enabled() {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		opts.Roster = sheets.NewRosterSync(sheetsRepo, baseLogger.Named("repo.sheets.roster"))
		baseLogger.Info("roster sheet sync enabled")
	}

	sched := scheduler.NewScheduler(cfg.Reporting, store, reportingService, notifier, opts, baseLogger.Named("scheduler"))
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	var webhookHandler *handlers.WebhookHandler
	if cfg.WhatsApp.WebhookEnabled() {
		commandDispatcher := commandsvc.NewService(reportingService, store, baseLogger.Named("svc.commands"))
		messagingSvc := whatsappsvc.NewMetaWhatsAppService(cfg.WhatsApp, whatsClient, commandDispatcher, baseLogger.Named("svc.whatsapp"))
		webhookHandler = handlers.NewWebhookHandler(messagingSvc, baseLogger.Named("handlers.whatsapp"))
		baseLogger.Info("coordinator command webhook enabled")
	}

	engine := router.New(router.Deps{
		Auth:           handlers.NewAuthHandler(adminService, baseLogger.Named("handlers.auth")),
		Admin:          handlers.NewAdminHandler(adminService, baseLogger.Named("handlers.admin")),
		Reports:        handlers.NewReportHandler(reportingService, adminService, archive, baseLogger.Named("handlers.reports")),
		Site:           handlers.NewSiteHandler(outreachService, baseLogger.Named("handlers.site")),
		Webhook:        webhookHandler,
		Gate:           gate,
		Limiter:        middleware.NewIPRateLimiter(cfg.Server.PublicRateLimit, cfg.Server.PublicBurst),
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, baseLogger.Named("router"))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func idGenerator(strategy string) memory.IDGenerator {
	if strategy == config.IDStrategyCounter {
		return memory.NewCounterGenerator(0)
	}
	return memory.UUIDGenerator{}
}
