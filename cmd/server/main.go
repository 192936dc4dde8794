package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	grpclib "google.golang.org/grpc"

	amqpadapter "github.com/simaogato/momoney-backend/internal/adapter/amqp"
	grpcadapter "github.com/simaogato/momoney-backend/internal/adapter/grpc"
	"github.com/simaogato/momoney-backend/internal/adapter/repository/sqlstore"
	"github.com/simaogato/momoney-backend/internal/adapter/rest"
	"github.com/simaogato/momoney-backend/internal/config"
	"github.com/simaogato/momoney-backend/internal/domain"
	"github.com/simaogato/momoney-backend/internal/logging"
	"github.com/simaogato/momoney-backend/internal/usecase/budget"
	"github.com/simaogato/momoney-backend/internal/usecase/category"
	"github.com/simaogato/momoney-backend/internal/usecase/report"
	"github.com/simaogato/momoney-backend/internal/usecase/seeder"
	"github.com/simaogato/momoney-backend/internal/usecase/transaction"
)

func main() {
	if err := run(); err != nil {
		logrus.WithError(err).Error("Server stopped with error")
		os.Exit(1)
	}
}

// run wires every component and serves until a shutdown signal arrives.
// Deferred cleanup always runs before it returns.
func run() error {
	// A missing .env file is fine, the environment still applies
	_ = godotenv.Load()

	cfg := config.Load()

	logger, logCloser, err := logging.New(logging.Options{
		Level: cfg.LogLevel,
		Env:   cfg.AppEnv,
		File:  cfg.LogFile,
	})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer logCloser.Close()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// 1. Setup Database
	dialect, err := sqlstore.ParseDialect(cfg.DataBackend)
	if err != nil {
		return err
	}
	dsn := cfg.SQLiteDBPath
	if dialect == sqlstore.DialectPostgres {
		dsn = cfg.DBConnStr
	}

	db, err := sqlstore.Open(dialect, dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()
	logger.WithField("backend", dialect).Info("Database ready")

	// 2. Initialize Repositories
	transactionRepo := sqlstore.NewTransactionRepository(db)
	budgetRepo := sqlstore.NewBudgetRepository(db)
	categoryRepo := sqlstore.NewCategoryRepository(db)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if cfg.SeedDefaults {
		if err := seeder.NewDefaultSeeder(categoryRepo, budgetRepo).Seed(ctx); err != nil {
			return fmt.Errorf("failed to seed defaults: %w", err)
		}
		logger.Info("Default categories and budgets seeded")
	}

	// 3. Optional overrun alerts
	var notifier domain.OverrunNotifier
	if cfg.AMQPURL != "" {
		publisher, err := amqpadapter.NewPublisher(ctx, cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, cfg.AMQPConnectAttempts, logger)
		if err != nil {
			return fmt.Errorf("failed to connect to AMQP broker: %w", err)
		}
		defer func() {
			if err := publisher.Close(); err != nil {
				logger.WithError(err).Warn("Failed to close AMQP publisher")
			}
		}()
		notifier = publisher
		logger.WithField("exchange", cfg.AMQPExchange).Info("Overrun alerts enabled")
	}

	// 4. Initialize Services (Use Cases)
	reportService := report.NewReportService(transactionRepo, budgetRepo, notifier, logger)
	transactionService := transaction.NewTransactionService(transactionRepo, logger)
	budgetService := budget.NewBudgetService(budgetRepo, transactionRepo, logger)
	categoryService := category.NewCategoryService(categoryRepo)

	// 5. gRPC server with logging and auth interceptors
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(logger),
			grpcadapter.AuthInterceptor(cfg.APIToken),
		),
	)
	grpcadapter.RegisterReportServiceServer(grpcServer, grpcadapter.NewServer(reportService, budgetService, transactionService))

	grpcLis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		return fmt.Errorf("failed to listen on :%s: %w", cfg.GRPCPort, err)
	}

	// 6. HTTP server
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	handler := rest.NewHandler(reportService, transactionService, budgetService, categoryService)
	httpServer := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: rest.NewRouter(handler, cfg.APIToken, logger),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.WithField("addr", grpcLis.Addr().String()).Info("gRPC server listening")
		return grpcServer.Serve(grpcLis)
	})
	g.Go(func() error {
		logger.WithField("addr", httpServer.Addr).Info("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return shutdown(grpcServer, httpServer, cfg, logger)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("Servers stopped")
	return nil
}

// shutdown stops both servers gracefully, bounded by cfg.ShutdownTimeout
func shutdown(grpcServer *grpclib.Server, httpServer *http.Server, cfg *config.Config, logger logrus.FieldLogger) error {
	logger.Info("Shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	httpErr := httpServer.Shutdown(ctx)

	select {
	case <-stopped:
	case <-ctx.Done():
		grpcServer.Stop()
	}

	return httpErr
}
