package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/speedmodel/pkg/http"
	"github.com/lintang-b-s/speedmodel/pkg/http/usecases"
	"github.com/lintang-b-s/speedmodel/pkg/logger"
	"github.com/lintang-b-s/speedmodel/pkg/speedmodel"
	"github.com/lintang-b-s/speedmodel/pkg/taxonomy"
	"github.com/lintang-b-s/speedmodel/pkg/util"
	"go.uber.org/zap"
)

var (
	useRateLimit = flag.Bool("rate_limit", false, "rate limit api requests per client ip")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		logger.Info("no config file found, using defaults", zap.Error(err))
	}

	tax := taxonomy.New()
	factory, err := speedmodel.NewModelFactory(tax)
	if err != nil {
		panic(err)
	}

	api := http.NewServer(logger)

	speedService := usecases.NewSpeedService(logger, factory, tax)
	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	api.Use(ctx, logger, *useRateLimit, speedService)

	signal := http.GracefulShutdown()

	logger.Info("Speedmodel Server Stopped", zap.String("signal", signal.String()))
	cleanup()
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
