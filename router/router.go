package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/table-order-service/config"
	"github.com/yeremiapane/table-order-service/controllers"
	"github.com/yeremiapane/table-order-service/kds"
	"github.com/yeremiapane/table-order-service/middlewares"
	"github.com/yeremiapane/table-order-service/services"
)

func SetupRouter(tableService *services.TableService, hub *kds.Hub, cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.RequestID())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSOrigin))
	r.Use(middlewares.LoggerMiddleware())
	if cfg.RateLimitRPS > 0 {
		r.Use(middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).RateLimit())
	}

	// Inisialisasi controller
	itemCtrl := controllers.NewItemController(tableService)
	tableCtrl := controllers.NewTableController(tableService)
	orderCtrl := controllers.NewOrderController(tableService)
	kdsCtrl := controllers.NewKDSController(hub)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Katalog
	r.GET("/items", itemCtrl.GetAllItems)
	r.GET("/items/:item_id", itemCtrl.GetItemByID)

	// Sesi meja
	r.GET("/tables", tableCtrl.GetActiveSessions)
	r.POST("/tables/:table_nr", tableCtrl.OpenSession)
	r.GET("/tables/:table_nr", tableCtrl.GetTableSessions)
	r.GET("/tables/:table_nr/active", tableCtrl.GetActiveSession)
	r.DELETE("/tables/:table_nr", tableCtrl.EndSession)

	// Orders, selalu lewat sesi aktif meja
	r.POST("/tables/:table_nr/orders", orderCtrl.CreateOrder)
	r.GET("/tables/:table_nr/orders", orderCtrl.GetOrders)
	r.GET("/tables/:table_nr/orders/:order_id", orderCtrl.GetOrderByID)
	r.DELETE("/tables/:table_nr/orders/:order_id", orderCtrl.DeleteOrder)
	r.DELETE("/tables/:table_nr/orders/:order_id/:item_id", orderCtrl.DeleteOrderItem)

	// Endpoint KDS WebSocket
	r.GET("/kds/ws", kdsCtrl.Handle)

	return r
}
