package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kollabee/seller-portal/seller-portal-backend/internal/auth"
	"kollabee/seller-portal/seller-portal-backend/internal/config"
	"kollabee/seller-portal/seller-portal-backend/internal/export"
	"kollabee/seller-portal/seller-portal-backend/internal/notifications"
	"kollabee/seller-portal/seller-portal-backend/internal/notifications/websocket"
	"kollabee/seller-portal/seller-portal-backend/internal/search"
	"kollabee/seller-portal/seller-portal-backend/internal/seller"
	"kollabee/seller-portal/seller-portal-backend/internal/settings"
	"kollabee/seller-portal/seller-portal-backend/pkg/storage"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Postgres, via GORM for the domain tables and sqlx for export scans.
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.GetDatabaseURL()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	sqlxDB, err := sqlx.Connect("postgres", cfg.Database.GetDatabaseURL())
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer sqlxDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	cancel()
	var archive *notifications.Archive
	if err != nil {
		logger.Warn("Mongo unavailable, notification history disabled", zap.Error(err))
	} else {
		archive = notifications.NewArchive(mongoClient.Database(cfg.Mongo.Database))
		defer mongoClient.Disconnect(context.Background())
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		logger.Fatal("Failed to load AWS config", zap.Error(err))
	}
	s3Client := storage.NewS3Client(awsCfg, cfg.AWS.UploadsBucket)
	uploads := storage.NewUploadService(s3Client)

	var indexer seller.Indexer
	var searchIndexer *search.Indexer
	esClient, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Elasticsearch.Addresses,
		Username:  cfg.Elasticsearch.Username,
		Password:  cfg.Elasticsearch.Password,
	})
	if err != nil {
		logger.Warn("Elasticsearch unavailable, search disabled", zap.Error(err))
	} else {
		searchIndexer = search.NewIndexer(esClient, logger)
		if err := searchIndexer.EnsureIndex(context.Background()); err != nil {
			logger.Warn("Failed to ensure search index", zap.Error(err))
		}
		indexer = searchIndexer
	}

	wsManager := websocket.NewManager(logger)
	defer wsManager.Close()

	settingsRepo, err := settings.NewRepository(gormDB)
	if err != nil {
		logger.Fatal("Failed to init settings repository", zap.Error(err))
	}
	settingsService := settings.NewService(settingsRepo)

	emailChannel := notifications.NewSESEmailChannel(awsCfg, cfg.AWS.SESSender)
	smsChannel := notifications.NewSNSSMSChannel(awsCfg)
	notificationService, err := notifications.NewService(gormDB, wsManager, emailChannel, smsChannel, settingsService, logger)
	if err != nil {
		logger.Fatal("Failed to init notifications", zap.Error(err))
	}

	authService, err := auth.NewService(gormDB, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		logger.Fatal("Failed to init auth", zap.Error(err))
	}
	sellerRepo, err := seller.NewRepository(gormDB)
	if err != nil {
		logger.Fatal("Failed to init seller repository", zap.Error(err))
	}
	sellerService := seller.NewService(sellerRepo, indexer, notificationService, cfg.AWS.ReviewerPhone, logger)
	if indexer != nil {
		if err := sellerService.ReindexAll(context.Background()); err != nil {
			logger.Warn("Failed to reindex sellers", zap.Error(err))
		}
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))
	router.Use(cors())

	authHandler := auth.NewHandler(authService)
	authMiddleware := auth.Middleware(authService)
	auth.RegisterRoutes(router, authHandler, authMiddleware)

	api := router.Group("/api/v1", authMiddleware)
	{
		seller.NewHandler(sellerService, uploads).RegisterRoutes(api)
		notifications.NewHandler(notificationService, archive, wsManager).RegisterRoutes(api)
		export.NewHandler(sellerRepo, export.NewRepository(sqlxDB)).RegisterRoutes(api)
		settings.NewHandler(settingsService).RegisterRoutes(api)
		if searchIndexer != nil {
			search.NewHandler(searchIndexer).RegisterRoutes(api)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
		})
	})

	srv := &http.Server{
		Addr:         cfg.Server.GetServerAddr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()
	logger.Info("Server started", zap.String("addr", srv.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exiting")
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
