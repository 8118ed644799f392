package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"medal_stats/internal/api"
	"medal_stats/internal/repository"
	"medal_stats/internal/service"
	"medal_stats/internal/storage"
	"medal_stats/pkg/config"
	"medal_stats/pkg/logger"
)

func main() {
	// 載入應用程式配置
	// 從配置文件和環境變數讀取資料庫連線、伺服器地址等設定
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.Init("info", "json")
		bootLog.Fatal().Err(err).Msg("Failed to load config")
	}

	log := logger.Init(cfg.Log.Level, cfg.Log.Format)

	// 初始化資料庫連接池
	// 資料表由外部匯入程序建立，這裡不做遷移
	db, err := storage.NewPostgresDB(cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	// 確保在程序結束時關閉數據庫連接
	defer db.Close()

	// 初始化 repositories 和 services
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// 設置 Gin 路由
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	api.SetupRoutes(r, services, api.Options{
		Logger:         log,
		Registry:       registry,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		DB:             db,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 啟動伺服器
	go func() {
		log.Info().Str("address", cfg.Server.Address).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to run server")
		}
	}()

	// 收到中斷訊號後優雅關閉
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}
	log.Info().Msg("Server stopped")
}
