package assembly

import (
	"context"

	"lovebridge-gateway/conf"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/txix-open/isp-kit/http"
	"github.com/txix-open/isp-kit/log"
)

type Assembly struct {
	config   conf.Config
	server   *http.Server
	logger   *log.Adapter
	redisCli redis.UniversalClient
}

func New(config conf.Config, secrets conf.Secrets, logger *log.Adapter) (*Assembly, error) {
	var redisCli redis.UniversalClient
	if config.Redis != nil {
		redisCli = redis.NewClient(&redis.Options{
			Addr:     config.Redis.Address,
			Username: config.Redis.Username,
			Password: config.Redis.Password,
		})
	}

	locator := NewLocator(logger, config, secrets, redisCli)
	handler, err := locator.Handler()
	if err != nil {
		return nil, errors.WithMessage(err, "locator handler")
	}

	server := http.NewServer(logger)
	server.Upgrade(handler)

	return &Assembly{
		config:   config,
		server:   server,
		logger:   logger,
		redisCli: redisCli,
	}, nil
}

func (a *Assembly) Run(ctx context.Context) error {
	a.logger.Info(ctx, "listening on "+a.config.Http.ListenAddress)
	return a.server.ListenAndServe(a.config.Http.ListenAddress)
}

func (a *Assembly) Close() error {
	err := a.server.Shutdown(context.Background())
	if err != nil {
		return errors.WithMessage(err, "shutdown server")
	}
	if a.redisCli != nil {
		err := a.redisCli.Close()
		if err != nil {
			return errors.WithMessage(err, "close redis client")
		}
	}
	return nil
}
