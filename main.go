package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"virtual-payment-api/internal/config"
	"virtual-payment-api/internal/dal"
	"virtual-payment-api/internal/handler"
	"virtual-payment-api/internal/idgen"
	"virtual-payment-api/internal/logger"
	"virtual-payment-api/internal/middleware"
	"virtual-payment-api/internal/service"
)

func main() {
	config.Init()
	logger.Init("app")
	idgen.Init(1)

	dal.InitMainDB()
	dal.InitRedis()
	dal.InitRabbitMQ()

	if config.C.Server.Mode != "" {
		gin.SetMode(config.C.Server.Mode)
	}
	r := buildRouter()
	if err := r.Run(":" + config.C.Server.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func buildRouter() *gin.Engine {
	r := gin.New()
	r.Use(cors.Default())
	r.Use(middleware.RequestLog())
	r.Use(middleware.Recover())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	adminSvc := service.NewAdminService()
	logSvc := service.NewLogService()

	merchantH := handler.NewMerchantHandler()
	orderH := handler.NewOrderHandler()
	accountH := handler.NewAccountHandler()
	adminH := handler.NewAdminHandler(adminSvc, logSvc)

	v1 := r.Group("/api/v1")

	signed := v1.Group("", middleware.SignVerify(), middleware.RateLimit())

	// 商户
	v1.POST("/merchants", merchantH.Create)
	v1.GET("/merchants/search", merchantH.Search)
	signed.POST("/merchants/info", merchantH.Info)
	signed.POST("/merchants/update", merchantH.Update)
	signed.POST("/merchants/regenerate-keys", merchantH.RegenerateKeys)

	// 订单
	signed.POST("/orders/create", orderH.Create)
	signed.POST("/orders/query", orderH.Query)
	signed.POST("/orders/close", orderH.Close)
	signed.GET("/orders/list", orderH.List)
	v1.POST("/orders/pay", orderH.Pay) // 模拟支付，免签

	// 账户
	v1.POST("/accounts", accountH.Create)
	v1.GET("/accounts/:id", accountH.Get)
	v1.POST("/accounts/recharge", accountH.Recharge)
	v1.POST("/accounts/withdraw", accountH.Withdraw)
	v1.POST("/accounts/freeze", accountH.Freeze)
	v1.POST("/accounts/unfreeze", accountH.Unfreeze)
	v1.POST("/accounts/transfer", accountH.Transfer)
	v1.GET("/accounts/:id/transactions", accountH.Transactions)

	// 管理后台
	admin := v1.Group("/admin")
	admin.POST("/login", adminH.Login)
	guarded := admin.Group("", middleware.AdminAuth(adminSvc), middleware.OperationLog(logSvc))
	guarded.POST("/users", adminH.CreateUser)
	guarded.GET("/users", adminH.ListUsers)
	guarded.GET("/logs", adminH.ListLogs)
	guarded.GET("/logs/export", adminH.ExportLogs)

	return r
}
