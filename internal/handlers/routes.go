package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"items-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	ItemService services.ItemService
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	itemHandler := NewItemHandler(config.ItemService)
	helloHandler := NewHelloHandler(config.ItemService)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Connectivity check, also mounted as the server health endpoint
	router.GET("/hello", helloHandler.Hello)
	router.GET("/health", helloHandler.Hello)

	items := router.Group("/items")
	{
		items.POST("", itemHandler.CreateItem)
		items.GET("", itemHandler.ListItems)
		items.GET("/:id", itemHandler.GetItem)
		items.PUT("/:id", itemHandler.UpdateItem)
		items.DELETE("/:id", itemHandler.DeleteItem)
	}
}
