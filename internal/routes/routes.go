package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bigshop/bigshop-golang/internal/handlers"
)

// CORSMiddleware allows the configured frontend origin to call the API,
// including the browser's preflight OPTIONS requests.
func CORSMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// SetupRouter wires the full HTTP surface.
func SetupRouter(h *handlers.Handlers, frontendOrigin string) *gin.Engine {
	router := gin.Default()

	router.Use(CORSMiddleware(frontendOrigin))

	router.GET("/health", h.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// --- Product Routes ---
		v1.GET("/products", h.GetProducts)
		v1.GET("/products/:id", h.GetProduct)
		v1.POST("/products", h.CreateProduct)

		// --- Category Routes ---
		v1.GET("/categories", h.GetCategories)

		// --- Cart Routes ---
		cart := v1.Group("/cart/:userId")
		{
			cart.GET("", h.GetCart)
			cart.POST("", h.AddToCart)
			cart.PUT("/items/:itemId", h.UpdateCartItem)
			cart.DELETE("/items/:itemId", h.DeleteCartItem)
			cart.DELETE("", h.ClearCart)
		}

		// --- AI Assistant Route ---
		v1.POST("/ai/chat/:userId", h.ChatAssistant)

		// --- Order Routes ---
		v1.GET("/orders", h.GetOrders)
		v1.POST("/orders", h.CreateOrder)
	}

	return router
}
