package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kollabee/seller-portal/seller-portal-backend/internal/auth"
	"kollabee/seller-portal/seller-portal-backend/internal/config"
	"kollabee/seller-portal/seller-portal-backend/internal/notifications"
	"kollabee/seller-portal/seller-portal-backend/internal/settings"
)

// The workers binary runs scheduled jobs that should not live in the API
// process. Currently that is the notification digest and archive cycle.
func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.GetDatabaseURL()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	cancel()
	var archive *notifications.Archive
	if err != nil {
		logger.Warn("Mongo unavailable, archival disabled", zap.Error(err))
	} else {
		archive = notifications.NewArchive(mongoClient.Database(cfg.Mongo.Database))
		defer mongoClient.Disconnect(context.Background())
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		logger.Fatal("Failed to load AWS config", zap.Error(err))
	}
	emailChannel := notifications.NewSESEmailChannel(awsCfg, cfg.AWS.SESSender)

	notificationService, err := notifications.NewService(db, nil, emailChannel, nil, nil, logger)
	if err != nil {
		logger.Fatal("Failed to init notifications", zap.Error(err))
	}
	authService, err := auth.NewService(db, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		logger.Fatal("Failed to init auth", zap.Error(err))
	}

	settingsRepo, err := settings.NewRepository(db)
	if err != nil {
		logger.Fatal("Failed to init settings repository", zap.Error(err))
	}
	settingsService := settings.NewService(settingsRepo)

	// Sellers who turned the digest off resolve to no address.
	resolveEmail := func(ctx context.Context, userID uuid.UUID) (string, error) {
		if !settingsService.DigestEnabled(ctx, userID) {
			return "", nil
		}
		return authService.EmailFor(ctx, userID)
	}

	retention := time.Duration(cfg.Notifications.RetentionDays) * 24 * time.Hour
	digest := notifications.NewDigest(notificationService, archive, resolveEmail, retention, logger)
	if err := digest.Start(); err != nil {
		logger.Fatal("Failed to start digest", zap.Error(err))
	}
	logger.Info("Digest worker started",
		zap.Int("retention_days", cfg.Notifications.RetentionDays))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Stopping digest worker...")
	digest.Stop()
}
