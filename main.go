package main

import (
	"context"
	"flag"
	stdlog "log"
	"net/http"

	"lovebridge-gateway/assembly"
	"lovebridge-gateway/conf"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/log"
	"github.com/txix-open/isp-kit/shutdown"
)

func main() {
	configPath := flag.String("config", "", "path to the TOML config file")
	flag.Parse()

	config, err := conf.Read(*configPath)
	if err != nil {
		stdlog.Fatalf("read config: %v", err)
	}
	secrets := conf.SecretsFromEnv()

	level, err := config.Logging.Level()
	if err != nil {
		stdlog.Fatalf("log level: %v", err)
	}
	logger, err := log.New(log.WithLevel(level))
	if err != nil {
		stdlog.Fatalf("new logger: %v", err)
	}

	ctx := context.Background()

	asm, err := assembly.New(config, secrets, logger)
	if err != nil {
		logger.Fatal(ctx, errors.WithMessage(err, "new assembly"))
	}

	shutdown.On(func() {
		logger.Info(ctx, "starting shutdown")
		err := asm.Close()
		if err != nil {
			logger.Error(ctx, errors.WithMessage(err, "close assembly"))
		}
		logger.Info(ctx, "shutdown completed")
	})

	err = asm.Run(ctx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(ctx, err)
	}
}
