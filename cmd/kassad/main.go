package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kassa-app/kassa/internal/application/usecase"
	"github.com/kassa-app/kassa/internal/infrastructure/config"
	"github.com/kassa-app/kassa/internal/infrastructure/messaging"
	pgRepo "github.com/kassa-app/kassa/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/kassa-app/kassa/internal/presentation/grpc"
	"github.com/kassa-app/kassa/internal/presentation/rest"
	pkgkafka "github.com/kassa-app/kassa/pkg/kafka"
	"github.com/kassa-app/kassa/pkg/observability"
	pkgpostgres "github.com/kassa-app/kassa/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:  "info",
		Format: "json",
	})
	slog.SetDefault(logger)

	logger.Info("starting kassa",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pgCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, pgCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Run database migrations.
	if migErr := pkgpostgres.RunMigrations(pgCfg.DSN(), "file://internal/infrastructure/persistence/postgres/migrations"); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Wire infrastructure adapters.
	creditRepo := pgRepo.NewCreditRepo(pool)
	depositRepo := pgRepo.NewDepositRepo(pool)
	fundRepo := pgRepo.NewFundRepo(pool)
	incomeRepo := pgRepo.NewIncomeRepo(pool)
	distRepo := pgRepo.NewDistributionRepo(pool)
	ruleRepo := pgRepo.NewRuleRepo(pool)
	budgetRepo := pgRepo.NewBudgetRepo(pool)
	allocationUoW := pgRepo.NewAllocationUoW(pool)
	outboxRepo := pgRepo.NewOutboxRepo(pool)

	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()

	// Relay outbox entries written by the repositories. The relay is the only
	// path from the outbox table to the broker.
	relay := messaging.NewOutboxRelay(outboxRepo, kafkaProducer, "kassa-events", logger)
	go relay.Run(ctx)

	// Wire use cases.
	useCases := grpcPresentation.UseCases{
		CreateCredit:            usecase.NewCreateCreditUseCase(creditRepo),
		GetCredit:               usecase.NewGetCreditUseCase(creditRepo),
		UpdateCredit:            usecase.NewUpdateCreditUseCase(creditRepo),
		RegenerateSchedule:      usecase.NewRegenerateScheduleUseCase(creditRepo),
		RecordEarlyPayment:      usecase.NewRecordEarlyPaymentUseCase(creditRepo),
		DeleteEarlyPayment:      usecase.NewDeleteEarlyPaymentUseCase(creditRepo),
		GetCreditSummary:        usecase.NewGetCreditSummaryUseCase(creditRepo),
		MarkSchedulePayment:     usecase.NewMarkSchedulePaymentUseCase(creditRepo),
		OpenDeposit:             usecase.NewOpenDepositUseCase(depositRepo, fundRepo),
		GetDeposit:              usecase.NewGetDepositUseCase(depositRepo),
		ProjectMaturity:         usecase.NewProjectMaturityUseCase(depositRepo),
		CloseDepositEarly:       usecase.NewCloseDepositEarlyUseCase(depositRepo),
		PlanDistributions:       usecase.NewPlanDistributionsUseCase(ruleRepo, allocationUoW, logger),
		ConfirmDistribution:     usecase.NewConfirmDistributionUseCase(distRepo, fundRepo, incomeRepo, allocationUoW),
		CancelDistribution:      usecase.NewCancelDistributionUseCase(distRepo, fundRepo, incomeRepo, allocationUoW),
		RecalculateBudgetLimits: usecase.NewRecalculateBudgetLimitsUseCase(budgetRepo),
		RecordBudgetActual:      usecase.NewRecordBudgetActualUseCase(budgetRepo),
	}

	// gRPC server.
	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
	handler := grpcPresentation.NewKassaHandler(useCases, metrics)
	grpcServer := grpcPresentation.NewServer(handler, logger)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(logger)
	healthHandler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", observability.MetricsHandler())

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("kassa stopped")
}
