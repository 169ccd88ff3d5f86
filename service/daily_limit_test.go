package service_test

import (
	"context"
	"testing"

	"lovebridge-gateway/domain"
	"lovebridge-gateway/repository"
	"lovebridge-gateway/service"

	"github.com/stretchr/testify/require"
)

func TestDailyLimitRejectsOverCeiling(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	dailyLimit := service.NewDailyLimit(repository.NewDailyLimitMemory(), map[domain.Kind]int64{
		domain.KindSpeech: 3,
	})

	for i := int64(1); i <= 3; i++ {
		result, err := dailyLimit.IncrementAndCheck(context.Background(), domain.KindSpeech)
		require.NoError(err)
		require.True(result.Allow)
		require.EqualValues(i, result.Used)
	}

	result, err := dailyLimit.IncrementAndCheck(context.Background(), domain.KindSpeech)
	require.NoError(err)
	require.False(result.Allow)
	require.EqualValues(4, result.Used)
	require.EqualValues(3, result.Limit)
}

func TestDailyLimitUpdateAtRuntime(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	dailyLimit := service.NewDailyLimit(repository.NewDailyLimitMemory(), map[domain.Kind]int64{
		domain.KindTranslate: 1,
	})

	result, err := dailyLimit.IncrementAndCheck(context.Background(), domain.KindTranslate)
	require.NoError(err)
	require.True(result.Allow)

	result, err = dailyLimit.IncrementAndCheck(context.Background(), domain.KindTranslate)
	require.NoError(err)
	require.False(result.Allow)

	dailyLimit.UpdateLimit(domain.KindTranslate, 10)

	result, err = dailyLimit.IncrementAndCheck(context.Background(), domain.KindTranslate)
	require.NoError(err)
	require.True(result.Allow)
	require.EqualValues(10, result.Limit)
}

func TestDailyLimitUnknownKindAllows(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	dailyLimit := service.NewDailyLimit(repository.NewDailyLimitMemory(), map[domain.Kind]int64{})

	result, err := dailyLimit.IncrementAndCheck(context.Background(), domain.KindSpeech)
	require.NoError(err)
	require.True(result.Allow)
}
