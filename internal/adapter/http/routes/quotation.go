package routes

import (
	"paint_quote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRates      = "/rates"
	PathQuotations = "/quotations"
)

func addQuotationRoutes(rg *gin.RouterGroup, ratesHandler *handlers.RatesHandler, quotationHandler *handlers.QuotationHandler) {
	rates := rg.Group(PathRates)
	{
		rates.GET("", ratesHandler.GetRates)
		rates.PUT("", ratesHandler.ReplaceRates)
	}

	quotations := rg.Group(PathQuotations)
	{
		quotations.GET("", quotationHandler.ListQuotations)
		quotations.POST("", quotationHandler.CreateQuotation)
		quotations.PUT("/:id", quotationHandler.UpdateQuotation)
		quotations.DELETE("/:id", quotationHandler.DeleteQuotation)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
