package routes

import (
	"context"
	"fmt"
	_ "invoice_service/docs" // swagger docs
	"invoice_service/internal/adapter/http/handlers"
	"invoice_service/internal/adapter/persistence/repository"
	"invoice_service/internal/config"
	"invoice_service/internal/infrastructure/database"
	"invoice_service/internal/usecase"
	"invoice_service/internal/usecase/interfaces"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	repo, err := newInvoiceRepository(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	invoiceUseCase := usecase.NewInvoiceUseCase(repo, usecase.InvoiceOptions{
		RecomputeTotals: cfg.RecomputeTotals,
		DefaultCurrency: cfg.DefaultCurrency,
	})
	dashboardUseCase := usecase.NewDashboardUseCase(repo)

	router := NewRouter(cfg,
		handlers.NewInvoiceHandler(invoiceUseCase, cfg.DefaultCurrency),
		handlers.NewDashboardHandler(dashboardUseCase),
	)

	log.Printf("[invoice] listening on %s (storage=%s)", cfg.Addr(), cfg.StorageDriver)
	if err := router.Run(cfg.Addr()); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter wires middlewares, swagger and the API routes under the
// configured base path.
func NewRouter(cfg *config.Config, invoiceHandler *handlers.InvoiceHandler, dashboardHandler *handlers.DashboardHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group(cfg.BasePath)
	addPingRoutes(api)
	addInvoiceRoutes(api, invoiceHandler)
	addDashboardRoutes(api, dashboardHandler)
	return router
}

func newInvoiceRepository(ctx context.Context, cfg *config.Config) (interfaces.IInvoiceRepository, error) {
	if cfg.StorageDriver == config.StorageMemory {
		log.Printf("[invoice] using in-memory storage; data is lost on restart")
		return repository.NewInvoiceMemoryRepository(), nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect dynamodb: %w", err)
	}
	if cfg.AutoCreateTables {
		err := database.EnsureTables(ctx, ddb,
			database.TableSpec{Name: cfg.InvoicesTable, Key: "id"},
			database.TableSpec{Name: cfg.InvoiceNumbersTable, Key: "invoiceNumber"},
		)
		if err != nil {
			return nil, fmt.Errorf("ensure tables: %w", err)
		}
	}
	return repository.NewInvoiceDynamoRepository(ddb, cfg.InvoicesTable, cfg.InvoiceNumbersTable), nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
