package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/cache"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/config"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/handler"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/repository"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/seed"
)

func main() {
	/**********************************************
	 * 创建 logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * 加载配置
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法加载配置文件", "error", err)
		return
	}

	loc, err := time.LoadLocation(cfg.Grid.Timezone)
	if err != nil {
		logger.Error("无法加载时区", "timezone", cfg.Grid.Timezone, "error", err)
		return
	}

	/**********************************************
	 * 创建 repository 并写入演示数据
	 **********************************************/
	repo := repository.NewRepository(cfg)

	if cfg.Seed.Enabled {
		today := time.Now().In(loc).Format(time.DateOnly)
		if err := seed.SeedMockData(repo, today); err != nil {
			logger.Error("无法写入演示数据", "error", err)
			return
		}
	}

	/**********************************************
	 * 创建布局缓存，未启用 redis 时使用进程内缓存
	 **********************************************/
	var layoutCache cache.LayoutCache
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Redis.ConnectTimeout)*time.Second)
		defer cancel()

		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Error("无法连接到 redis", "error", err)
			return
		}

		layoutCache = cache.NewRedisCache(
			rdb,
			time.Duration(cfg.Redis.LayoutCacheTTL)*time.Second,
			time.Duration(cfg.Redis.OperationTimeout)*time.Second,
		)
	} else {
		layoutCache = cache.NewMemoryCache(256)
	}

	/**********************************************
	 * 创建 handler
	 **********************************************/
	handler, err := handler.NewHandler(cfg, repo, layoutCache)
	if err != nil {
		logger.Error("无法创建 handler", "error", err)
		return
	}
	handler.RegisterRoutes()

	/**********************************************
	 * 启动 HTTP 服务器
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      handler.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("正在启动服务器...", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("无法启动服务器", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	logger.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("关闭服务器失败", "error", err)
	}
	logger.Info("服务器已成功关闭")
}
