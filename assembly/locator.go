package assembly

import (
	"net/http"
	"time"

	"lovebridge-gateway/conf"
	"lovebridge-gateway/domain"
	"lovebridge-gateway/handler"
	"lovebridge-gateway/httperrors"
	"lovebridge-gateway/middleware"
	"lovebridge-gateway/provider"
	"lovebridge-gateway/repository"
	"lovebridge-gateway/service"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/txix-open/isp-kit/log"
)

type Locator struct {
	logger   log.Logger
	config   conf.Config
	secrets  conf.Secrets
	redisCli redis.UniversalClient
}

func NewLocator(logger log.Logger, config conf.Config, secrets conf.Secrets, redisCli redis.UniversalClient) Locator {
	return Locator{
		logger:   logger,
		config:   config,
		secrets:  secrets,
		redisCli: redisCli,
	}
}

func (l Locator) Handler() (http.Handler, error) {
	var (
		rateLimitRepo  service.RateLimitRepo
		dailyLimitRepo service.DailyLimitRepo
		usageRepo      service.UsageRepo
	)
	if l.redisCli != nil {
		rateLimitRepo = repository.NewRateLimit(l.redisCli)
		dailyLimitRepo = repository.NewDailyLimit(l.redisCli)
		usageRepo = repository.NewUsage(l.redisCli)
	} else {
		rateLimitRepo = repository.NewRateLimitMemory()
		dailyLimitRepo = repository.NewDailyLimitMemory()
		usageRepo = repository.NewUsageMemory()
	}

	throttling := service.NewThrottling(rateLimitRepo, map[domain.Kind]int{
		domain.KindSpeech:    l.config.Speech.RequestsPerMinute,
		domain.KindTranslate: l.config.Translate.RequestsPerMinute,
	})
	dailyLimit := service.NewDailyLimit(dailyLimitRepo, map[domain.Kind]int64{
		domain.KindSpeech:    l.config.Speech.RequestsPerDay,
		domain.KindTranslate: l.config.Translate.RequestsPerDay,
	})
	usage := service.NewUsage(usageRepo, l.config.Usage, dailyLimit)

	filter, err := service.NewContentFilter(l.config.Filter.DenyPatterns)
	if err != nil {
		return nil, errors.WithMessage(err, "new content filter")
	}

	transcription := service.NewTranscription(l.logger, l.transcribers()...)

	var completer service.ChatCompleter
	if l.secrets.OpenRouterApiKey != "" {
		completer = provider.NewOpenRouterClient(
			l.secrets.OpenRouterApiKey,
			l.config.Translate.BaseUrl,
			l.config.Translate.Model,
			l.config.Translate.RequestsPerMinute,
			time.Duration(l.config.Translate.UpstreamTimeoutInSec)*time.Second,
		)
	}
	translation := service.NewTranslation(completer)

	auth := service.NewAuthentication(l.secrets.ApiSecret, l.config.Auth.Disabled)
	adminAuth := service.NewAdminAuthentication(l.secrets.AdminSecret)

	speechHandler := middleware.Chain(
		handler.NewSpeech(transcription, usage),
		append(l.commonMiddlewares(),
			middleware.Authenticate(auth),
			middleware.Throttling(throttling, domain.KindSpeech),
			middleware.DailyLimit(dailyLimit, domain.KindSpeech),
		)...,
	)

	translateHandler := middleware.Chain(
		handler.NewTranslate(translation, filter, usage, l.config.Translate.MaxTextLength),
		append(l.commonMiddlewares(),
			middleware.Authenticate(auth),
			middleware.Throttling(throttling, domain.KindTranslate),
			middleware.DailyLimit(dailyLimit, domain.KindTranslate),
		)...,
	)

	adminHandler := middleware.Chain(
		handler.NewAdmin(usage),
		append(l.commonMiddlewares(),
			middleware.AdminAuthenticate(adminAuth),
		)...,
	)

	healthHandler := middleware.Chain(
		handler.NewHealth(),
		l.commonMiddlewares()...,
	)

	maxBodySize := l.config.Http.MaxRequestBodySizeInMb * 1024 * 1024 //nolint:mnd

	router := mux.NewRouter()
	router.Handle("/api/speech-to-text",
		middleware.Entrypoint(maxBodySize, speechHandler, "/api/speech-to-text", l.logger)).
		Methods(http.MethodPost, http.MethodOptions)
	router.Handle("/api/translate",
		middleware.Entrypoint(maxBodySize, translateHandler, "/api/translate", l.logger)).
		Methods(http.MethodPost, http.MethodOptions)
	router.Handle("/api/admin",
		middleware.Entrypoint(maxBodySize, adminHandler, "/api/admin", l.logger)).
		Methods(http.MethodGet, http.MethodPost, http.MethodOptions)
	router.Handle("/api/health",
		middleware.Entrypoint(maxBodySize, healthHandler, "/api/health", l.logger)).
		Methods(http.MethodGet, http.MethodOptions)

	router.MethodNotAllowedHandler = l.errorHandler(http.StatusMethodNotAllowed, "method not allowed")
	router.NotFoundHandler = l.errorHandler(http.StatusNotFound, "not found")

	return router, nil
}

// The ordering matters: Cors sits inside ErrorHandler so error responses
// still carry the CORS headers set before the failure.
func (l Locator) commonMiddlewares() []middleware.Middleware {
	return []middleware.Middleware{
		middleware.RequestId(),
		middleware.Logger(l.logger, l.config.Logging.RequestLogEnable),
		middleware.ErrorHandler(l.logger),
		middleware.Cors(l.config.Http.CorsAllowOrigin),
	}
}

func (l Locator) transcribers() []service.Transcriber {
	strategies := make([]service.Transcriber, 0, 3) //nolint:mnd
	timeout := time.Duration(l.config.Speech.UpstreamTimeoutInSec) * time.Second

	if l.secrets.OpenAiApiKey != "" {
		strategies = append(strategies, provider.NewOpenAiTranscriber(
			l.secrets.OpenAiApiKey,
			l.config.Speech.PrimaryBaseUrl,
			l.config.Speech.PrimaryModel,
			timeout,
		))
	}
	if l.secrets.HuggingFaceApiKey != "" && l.config.Speech.SecondaryUrl != "" {
		strategies = append(strategies, provider.NewHuggingFaceTranscriber(
			l.config.Speech.SecondaryUrl,
			l.secrets.HuggingFaceApiKey,
			timeout,
		))
	}
	strategies = append(strategies, provider.NewHeuristic(l.config.Heuristic))

	return strategies
}

func (l Locator) errorHandler(statusCode int, message string) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
		writer.Header().Set("Access-Control-Allow-Origin", l.config.Http.CorsAllowOrigin)
		err := httperrors.
			New(statusCode, message, errors.Errorf("%s %s: %s", req.Method, req.URL.Path, message)).
			WriteError(writer)
		if err != nil {
			l.logger.Error(req.Context(), errors.WithMessage(err, "write error response"))
		}
	})
}
