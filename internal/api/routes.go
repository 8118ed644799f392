package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"medal_stats/internal/api/handlers"
	"medal_stats/internal/middleware"
	"medal_stats/internal/service"
)

// Options 路由需要的基礎設施依賴
type Options struct {
	Logger         zerolog.Logger
	Registry       *prometheus.Registry
	AllowedOrigins []string
	DB             handlers.Pinger // 為 nil 時就緒檢查不做資料庫 ping
}

func SetupRoutes(r *gin.Engine, services *service.Services, opts Options) {
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}

	// 全域中間件，NoRoute 的請求也會經過
	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(opts.Logger),
		middleware.NewMetrics(opts.Registry).Handler(),
		middleware.CORS(opts.AllowedOrigins),
	)

	// 初始化 handlers
	medalHandler := handlers.NewMedalHandler(services.Medal)
	athleteHandler := handlers.NewAthleteHandler(services.Athlete)
	categoryHandler := handlers.NewCategoryHandler(services.Sport)
	healthHandler := handlers.NewHealthHandler(opts.DB)

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Rota não encontrada.",
		})
	})

	r.GET("/", handlers.Home)

	// 獎牌統計
	medals := r.Group("/medals")
	{
		medals.GET("", medalHandler.ListMedals)
		medals.GET("/ratio", medalHandler.MedalRatio)
		medals.GET("/top/:n", medalHandler.TopMedals)
		medals.GET("/category/", medalHandler.CategoryMedals) // 空類別，回 400
		medals.GET("/category/:category", medalHandler.CategoryMedals)
		medals.GET("/:country", medalHandler.GetCountryMedals)
	}

	r.GET("/categories", categoryHandler.ListCategories)
	r.GET("/athlete/", athleteHandler.ListByCountry) // 空代碼，回 400
	r.GET("/athlete/:country", athleteHandler.ListByCountry)

	// 健康檢查與指標
	r.GET("/health", healthHandler.Live)
	r.GET("/health/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))
}
