package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"wrapcommand/internal/adapter/http/handlers"
	"wrapcommand/internal/adapter/http/routes"
	"wrapcommand/internal/adapter/persistence/repository"
	"wrapcommand/internal/domain/gate"
	"wrapcommand/internal/domain/pricing"
	"wrapcommand/internal/infrastructure/config"
	"wrapcommand/internal/infrastructure/database"
	"wrapcommand/internal/infrastructure/lock"
	"wrapcommand/internal/infrastructure/logger"
	"wrapcommand/internal/infrastructure/mail"
	"wrapcommand/internal/usecase"
	"wrapcommand/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           WrapCommand Quote API
// @version         1.0
// @description     Vehicle wrap quote generation and approval flow backed by DynamoDB.

// @contact.name   WePrintWraps Engineering
// @contact.email  dev@weprintwraps.com

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	zl := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = zl.Sync() }()

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := run(cfg, zl); err != nil {
		zl.Fatal("[api][main] server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	awsCfg, err := database.NewAWSConfig(ctx, cfg.AWS)
	if err != nil {
		return fmt.Errorf("aws config: %w", err)
	}
	ddb := dynamodb.NewFromConfig(awsCfg)

	vehicleRepo := repository.NewVehicleSizeDynamoRepository(ddb, cfg.Tables.VehicleDimensions)
	table, err := loadVehicleTable(ctx, cfg.Vehicles.Source, usecase.NewVehicleSyncUseCase(vehicleRepo, zl))
	if err != nil {
		return err
	}
	zl.Info("[api][main] vehicle table loaded", zap.String("source", cfg.Vehicles.Source), zap.Int("entries", table.Len()))

	mailer, err := mail.NewSESMailer(ses.NewFromConfig(awsCfg), cfg.Mail.From, cfg.Mail.ReplyTo, cfg.Mail.Mock, zl)
	if err != nil {
		return fmt.Errorf("mailer: %w", err)
	}

	locker := newLocker(ctx, cfg.Redis.URL, zl)

	quoteRepo := repository.NewQuoteDynamoRepository(ddb, cfg.Tables.Quotes)
	draftRepo := repository.NewQuoteDraftDynamoRepository(ddb, cfg.Tables.QuoteDrafts)
	eventRepo := repository.NewConversationEventDynamoRepository(ddb, cfg.Tables.ConversationEvents)
	followUpRepo := repository.NewFollowUpDynamoRepository(ddb, cfg.Tables.Tasks, cfg.Tables.SequenceEnrollments)
	aiActionRepo := repository.NewAIActionDynamoRepository(ddb, cfg.Tables.AIActions)

	tiers := pricing.DefaultVolumeTiers()
	resolver := pricing.NewResolver(table)
	zl.Info("[api][main] vehicle resolver ready", zap.Strings("strategies", resolver.Strategies()))
	followUps := usecase.NewFollowUpService(followUpRepo, eventRepo, usecase.FollowUpPolicy{
		Owner:           cfg.FollowUp.Owner,
		HighThreshold:   cfg.FollowUp.HighThreshold,
		UrgentThreshold: cfg.FollowUp.UrgentThreshold,
		Sequence:        cfg.FollowUp.Sequence,
	}, zl)
	quoteDeps := usecase.QuoteDeps{
		Quotes:    quoteRepo,
		Events:    eventRepo,
		Quoter:    usecase.NewQuoter(resolver, pricing.NewCalculator(pricing.DefaultPriceTable()), tiers),
		Gate:      gate.New(gate.DefaultPolicy()),
		Notifier:  usecase.NewNotificationService(mailer, quoteRepo, eventRepo, tiers, zl),
		FollowUps: followUps,
		Log:       zl,
	}
	draftUseCase := usecase.NewQuoteDraftUseCase(usecase.DraftDeps{
		QuoteDeps: quoteDeps,
		Drafts:    draftRepo,
		AIActions: aiActionRepo,
		Locker:    locker,
	})
	quoteUseCase := usecase.NewQuoteUseCase(quoteDeps, draftUseCase)
	eventUseCase := usecase.NewConversationEventUseCase(eventRepo)

	router := routes.NewRouter(routes.Handlers{
		Quote:  handlers.NewQuoteHandler(quoteUseCase),
		Draft:  handlers.NewQuoteDraftHandler(draftUseCase),
		Events: handlers.NewEventHandler(eventUseCase),
	}, zl)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zl.Info("[api][main] listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zl.Info("[api][main] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func loadVehicleTable(ctx context.Context, source string, sync *usecase.VehicleSyncUseCase) (*pricing.VehicleTable, error) {
	if source == "dynamodb" {
		t, err := sync.LoadTable(ctx)
		if err != nil {
			return nil, fmt.Errorf("load vehicle table from dynamodb: %w", err)
		}
		return t, nil
	}
	t, err := pricing.DefaultVehicleTable()
	if err != nil {
		return nil, fmt.Errorf("load embedded vehicle table: %w", err)
	}
	return t, nil
}

// newLocker falls back to NoopLocker when Redis is not configured or not
// reachable at start.
func newLocker(ctx context.Context, url string, zl *zap.Logger) interfaces.IExecutionLocker {
	if url == "" {
		zl.Info("[api][main] REDIS_URL not set, draft execution lock disabled")
		return lock.NoopLocker{}
	}
	rdb, err := lock.Connect(ctx, url)
	if err != nil {
		zl.Warn("[api][main] redis unavailable, draft execution lock disabled", zap.Error(err))
		return lock.NoopLocker{}
	}
	return lock.NewRedisLocker(rdb, lock.DefaultTTL)
}
