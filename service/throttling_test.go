package service_test

import (
	"context"
	"testing"

	"lovebridge-gateway/domain"
	"lovebridge-gateway/repository"
	"lovebridge-gateway/service"

	"github.com/stretchr/testify/require"
)

func TestThrottlingAllowsUpToLimit(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	throttling := service.NewThrottling(repository.NewRateLimitMemory(), map[domain.Kind]int{
		domain.KindSpeech: 5,
	})

	for i := 0; i < 5; i++ {
		result, err := throttling.AllowRateLimit(context.Background(), domain.KindSpeech, "1.2.3.4")
		require.NoError(err)
		require.True(result.Allow)
	}

	result, err := throttling.AllowRateLimit(context.Background(), domain.KindSpeech, "1.2.3.4")
	require.NoError(err)
	require.False(result.Allow)
	require.True(result.RetryAfter > 0)
	require.EqualValues(0, result.Remaining)
}

func TestThrottlingUnknownKindAlwaysAllows(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	throttling := service.NewThrottling(repository.NewRateLimitMemory(), map[domain.Kind]int{})

	for i := 0; i < 20; i++ {
		result, err := throttling.AllowRateLimit(context.Background(), domain.KindTranslate, "1.2.3.4")
		require.NoError(err)
		require.True(result.Allow)
	}
}

func TestThrottlingIsolatesCallers(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	throttling := service.NewThrottling(repository.NewRateLimitMemory(), map[domain.Kind]int{
		domain.KindSpeech: 1,
	})

	result, err := throttling.AllowRateLimit(context.Background(), domain.KindSpeech, "1.2.3.4")
	require.NoError(err)
	require.True(result.Allow)

	result, err = throttling.AllowRateLimit(context.Background(), domain.KindSpeech, "1.2.3.4")
	require.NoError(err)
	require.False(result.Allow)

	result, err = throttling.AllowRateLimit(context.Background(), domain.KindSpeech, "5.6.7.8")
	require.NoError(err)
	require.True(result.Allow)
}
