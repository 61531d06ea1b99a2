package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"propertyfinder/internal/config"
	"propertyfinder/internal/handler"
	"propertyfinder/internal/repository"
	"propertyfinder/internal/service"
	"propertyfinder/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log.Printf("PropertyFinder")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	utils.SetDebug(cfg.Logging.IsDebug())
	gin.SetMode(cfg.Server.GinMode)

	// Catalog source and search log
	var (
		source    repository.CatalogSource
		searchLog repository.SearchLogger
	)
	if cfg.PostgreSQL.Enabled {
		repo, err := repository.NewPostgresRepository(
			cfg.GetPostgreSQLDSN(),
			cfg.PostgreSQL.MaxConnections,
			cfg.PostgreSQL.MaxIdleConnections,
		)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer repo.Close()
		log.Println("✅ Connected to PostgreSQL database")
		source, searchLog = repo, repo
	} else {
		static, err := repository.NewStaticCatalog()
		if err != nil {
			log.Fatalf("Failed to load built-in catalog: %v", err)
		}
		log.Println("⚠️  PostgreSQL not configured - serving the built-in sample catalog")
		source = static
	}

	// Favorite store
	var kv repository.KVClient
	if cfg.Redis.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisKV, err := repository.NewRedisKVClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		cancel()
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisKV.Close()
		kv = redisKV
	} else {
		log.Println("⚠️  Redis not configured - favorites are kept in memory only")
		kv = repository.NewMemoryKVClient()
	}
	favorites := service.NewFavoriteBridge(repository.NewKVFavoriteStore(kv, cfg.Redis.FavoritesKey), 5*time.Second)

	// Filter oracle
	var oracle service.FilterOracle
	if cfg.OpenAI.Enabled {
		oracle = service.NewOpenAIClient(&cfg.OpenAI)
		log.Printf("✅ OpenAI client initialized")
		log.Printf("   - API Base: %s", cfg.OpenAI.APIBase)
		log.Printf("   - Chat model: %s", cfg.OpenAI.ChatModel)
		log.Printf("   - Chat Temperature: %.2f", cfg.OpenAI.ChatTemperature)
		log.Printf("   - Chat MaxTokens: %d", cfg.OpenAI.ChatMaxTokens)
	} else {
		log.Println("⚠️  OpenAI is disabled - natural language search falls back to substring matching")
		log.Println("   Set OPENAI_API_KEY environment variable to enable AI features")
	}

	rules := service.NewFilterRules(cfg.Catalog.PriceDomainMax, cfg.Catalog.MinPriceGap)
	session := service.NewSession(
		source,
		service.NewIntentParser(oracle, rules),
		favorites,
		searchLog,
		service.SessionOptions{
			Rules:      rules,
			PageSize:   cfg.Catalog.PageSize,
			MaxCompare: cfg.Catalog.MaxCompare,
		},
	)

	// Load in the background; requests before it finishes see ready=false
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = session.Load(ctx)
	}()

	log.Println("✅ Services initialized")

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	if cfg.Server.AllowedOrigins == "*" {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = cfg.Server.AllowedMethodList()
	corsConfig.AllowHeaders = cfg.Server.AllowedHeaderList()
	router.Use(cors.New(corsConfig))

	handler.RegisterRoutes(router, session, handler.BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	log.Printf("🚀 Starting server on %s", addr)
	log.Printf("📝 API: http://localhost:%d/api/v1/listings", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	favorites.Flush()
	log.Println("✅ Server stopped")
}
