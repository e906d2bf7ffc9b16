package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cornerstore/backend/controllers"
	"github.com/cornerstore/backend/middlewares"
	"github.com/cornerstore/backend/utils"
)

func SetupRouter(db *gorm.DB, limiter *middlewares.RateLimiter) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.LoggerMiddleware())
	// gin freezes each route's handler chain at registration time, so the
	// limiter has to be attached before any route below
	if limiter != nil {
		r.Use(limiter.RateLimit())
	}

	cashierCtrl := controllers.NewCashierController(db)
	productCtrl := controllers.NewProductController(db)
	orderCtrl := controllers.NewOrderController(db)

	r.GET("/ping", func(c *gin.Context) {
		if shared := utils.GetDB(); shared != nil {
			sqlDB, err := shared.DB()
			if err != nil || sqlDB.Ping() != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"message": "database unreachable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	r.GET("/cashiers/:cashier_id", cashierCtrl.GetCashierByID)
	r.POST("/cashiers", cashierCtrl.CreateCashier)

	r.GET("/products", productCtrl.GetAllProducts)
	r.POST("/products", productCtrl.CreateProduct)
	r.PUT("/products/:product_id", productCtrl.UpdateProduct)
	r.GET("/products/popular", productCtrl.GetPopularProducts)

	r.GET("/orders", orderCtrl.GetAllOrders)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	r.POST("/orders", orderCtrl.CreateOrder)
	r.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)

	return r
}
