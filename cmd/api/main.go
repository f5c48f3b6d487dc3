package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fridge-catalog/internal/api"
	"fridge-catalog/internal/core/catalog"
	"fridge-catalog/internal/infrastructure/config"
	"fridge-catalog/internal/pkg/common"

	"go.uber.org/zap"
)

func main() {
	// 載入設定（內含 .env）
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.LogLevel, cfg.LogDir); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("載入設定",
		zap.String("catalog_source", cfg.Catalog.Source),
		zap.String("store_driver", cfg.Store.Driver),
	)

	startCtx, cancelStart := context.WithTimeout(context.Background(), cfg.Catalog.FetchTimeout+5*time.Second)
	defer cancelStart()

	// 載入基礎目錄
	entries, err := catalog.NewSource(cfg.Catalog.FetchTimeout).Load(startCtx, cfg.Catalog.Source)
	if err != nil {
		common.LogFatal("Failed to load catalog", zap.Error(err))
	}

	// 初始化新增食材儲存
	store, err := catalog.NewStore(startCtx, &cfg.Store)
	if err != nil {
		common.LogFatal("Failed to initialize store", zap.Error(err))
	}

	catalogSvc, err := catalog.NewService(entries, store, &cfg.Resolver)
	if err != nil {
		_ = store.Close()
		common.LogFatal("Failed to initialize catalog service", zap.Error(err))
	}
	defer catalogSvc.Close()

	// 設置路由
	router, err := api.SetupRouter(cfg, catalogSvc)
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}

	// 設置 HTTP 服務器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 啟動服務器
	go func() {
		common.LogInfo("啟動應用",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Int("port", cfg.Server.Port),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server",
				zap.Error(err),
			)
			os.Exit(1)
		}
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	// 設置關閉超時
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown",
			zap.Error(err),
		)
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}
