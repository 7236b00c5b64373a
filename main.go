package main

import (
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"go.uber.org/zap"

	"schedsim/api"
	"schedsim/config"
	"schedsim/internal/cache"
	"schedsim/internal/schedulers"
	"schedsim/internal/stats"
)

func main() {
	cfg := config.GetSchedulerConfig()

	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalln(err)
	}
	defer logger.Sync()

	recorder := stats.NewRecorder()
	defer recorder.Close()

	options := []schedulers.EngineOption{schedulers.WithRecorder(recorder)}
	if cfg.CacheEnabled {
		resultCache, err := cache.NewResultCache(cfg.CacheNumCounters, cfg.CacheMaxCost, logger)
		if err != nil {
			logger.Fatal("failed to create result cache", zap.Error(err))
		}
		defer resultCache.Close()
		options = append(options, schedulers.WithCache(resultCache))
	}

	engine := schedulers.NewEngine(schedulers.EngineConfig{
		DefaultQuantum: cfg.RoundRobinTimeQuantum,
		MaxProcesses:   cfg.MaxProcesses,
		MaxSegments:    cfg.MaxSegments,
	}, logger, options...)

	app := api.NewApp(api.NewSchedulerHandlerImpl(engine, recorder, logger), logger)

	go func() {
		shutdownCh := make(chan os.Signal, 1)
		signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
		<-shutdownCh
		logger.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			logger.Error("shutdown error", zap.Error(err))
		}
	}()

	addr := ":" + strconv.Itoa(cfg.Port)
	logger.Info("scheduler simulator listening", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		logger.Error("listen", zap.Error(err))
	}
}
