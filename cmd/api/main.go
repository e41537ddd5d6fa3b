package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "solarquote/api/swagger" // swagger docs
	"solarquote/internal/config"
	"solarquote/internal/database"
	"solarquote/internal/handler"
	"solarquote/internal/integration"
	"solarquote/internal/middleware"
	"solarquote/internal/repository"
	"solarquote/internal/service"
	"solarquote/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Solar Quote API
// @version         1.0
// @description     Quote lifecycle and financial settlement engine for a solar installation marketplace.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	middleware.InitJWTSecret(cfg.JWTSecret)

	db, err := database.NewConnection(cfg.DSN(), cfg.DBMaxOpenConns, cfg.DBMaxIdleConns)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	if err := database.SeedPenaltyRules(db); err != nil {
		log.Fatalf("Seeding penalty rules failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Set up WebSocket Hub
	wsHub := websocket.NewHub(cfg.CORSOrigins, service.RoleAdmin)
	hubCtx, stopHub := context.WithCancel(context.Background())
	go wsHub.Run(hubCtx)

	// Collaborators
	identity := integration.NewHTTPIdentityClient(cfg.IdentityServiceURL, cfg.IntegrationToken, cfg.CollaboratorTimeout)
	wallet := integration.NewHTTPWalletClient(cfg.WalletServiceURL, cfg.IntegrationToken, cfg.CollaboratorTimeout)

	// Set up dependencies (Repository -> Service -> Handler)
	tx := repository.NewTransactionManager(db)
	requestRepo := repository.NewQuoteRequestRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	quoteRepo := repository.NewContractorQuoteRepository(db)
	penaltyRepo := repository.NewPenaltyRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	configService := service.NewPricingConfigService(tx, repository.NewBusinessConfigRepository(db), auditRepo)
	requestService := service.NewQuoteRequestService(tx, requestRepo, assignmentRepo, auditRepo, configService)
	assignmentService := service.NewAssignmentService(tx, requestRepo, assignmentRepo, auditRepo, wsHub)
	quoteService := service.NewContractorQuoteService(tx, requestRepo, quoteRepo, repository.NewLineItemRepository(db),
		repository.NewComparisonRepository(db), auditRepo, configService, wsHub)
	penaltyService := service.NewPenaltyService(tx, quoteRepo, repository.NewPenaltyRuleRepository(db), penaltyRepo,
		auditRepo, wallet, wsHub)
	adminService := service.NewAdminReviewService(requestRepo, assignmentRepo, quoteRepo, penaltyRepo,
		quoteService, configService, identity)
	auditService := service.NewAuditService(auditRepo)

	scheduler := service.NewPenaltyScheduler(service.NewSLADetector(quoteRepo, penaltyRepo), penaltyService, penaltyRepo,
		service.SchedulerConfig{
			DailySpec:  cfg.PenaltyDailyCron,
			HourlySpec: cfg.PenaltyHourlyCron,
			WeeklySpec: cfg.PenaltyWeeklyCron,
			Timeout:    cfg.SchedulerTimeout,
		})
	if cfg.SchedulerEnabled {
		if err := scheduler.Start(); err != nil {
			log.Fatalf("Scheduler failed to start: %v", err)
		}
	}

	// Initialize Handlers
	quoteRequestHandler := handler.NewQuoteRequestHandler(requestService, assignmentService, quoteService)
	contractorHandler := handler.NewContractorHandler(assignmentService, quoteService)
	penaltyHandler := handler.NewPenaltyHandler(penaltyService, scheduler)
	adminHandler := handler.NewAdminHandler(adminService, requestService, assignmentService, configService)
	auditHandler := handler.NewAuditHandler(auditService)

	// Set up Gin Router
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.ExposeHeaders = []string{"Content-Disposition"}
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "ws_clients": wsHub.ConnectedClients()})
	})

	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	// API Routing
	quoteRequestHandler.RegisterRoutes(router.Group(""))
	contractorHandler.RegisterRoutes(router.Group(""))
	penaltyHandler.RegisterRoutes(router.Group(""))
	adminHandler.RegisterRoutes(router.Group(""))
	auditHandler.RegisterRoutes(router.Group(""))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	scheduler.Stop()
	stopHub()
	log.Println("Server stopped")
}
