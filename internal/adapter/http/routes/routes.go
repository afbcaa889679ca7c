package routes

import (
	"context"
	"log"
	"strconv"

	_ "paint_quote/docs" // generated by swag init
	"paint_quote/internal/adapter/http/handlers"
	"paint_quote/internal/adapter/persistence/repository"
	"paint_quote/internal/infrastructure/config"
	"paint_quote/internal/infrastructure/database"
	"paint_quote/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run() {
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ddb, err := database.ConnectDynamoDB(context.Background(), cfg.Dynamo)
	if err != nil {
		log.Fatalf("failed to create dynamodb client: %v", err)
	}

	ratesHandler := handlers.NewRatesHandler(usecase.NewRatesUseCase(repository.NewRatesDynamoRepository(ddb, cfg.RatesTable)))
	quotationHandler := handlers.NewQuotationHandler(usecase.NewQuotationUseCase(repository.NewQuotationDynamoRepository(ddb, cfg.QuotationsTable)))

	router := NewRouter(ratesHandler, quotationHandler)
	log.Printf("[server] listening port=%d quotations_table=%s rates_table=%s", cfg.Port, cfg.QuotationsTable, cfg.RatesTable)
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter mounts the API both at the root and under /v1.
func NewRouter(ratesHandler *handlers.RatesHandler, quotationHandler *handlers.QuotationHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	root := router.Group("")
	addPingRoutes(root)
	addQuotationRoutes(root, ratesHandler, quotationHandler)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotationRoutes(v1, ratesHandler, quotationHandler)

	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
