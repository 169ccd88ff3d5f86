package repository_test

import (
	"context"
	"testing"

	"lovebridge-gateway/domain"
	"lovebridge-gateway/repository"

	"github.com/stretchr/testify/require"
)

func TestUsageMemoryAccumulates(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	repo := repository.NewUsageMemory()
	ctx := context.Background()

	require.NoError(repo.Add(ctx, domain.KindTranslate, "2026-08-01", 0.0001))
	require.NoError(repo.Add(ctx, domain.KindTranslate, "2026-08-01", 0.0001))
	require.NoError(repo.Add(ctx, domain.KindSpeech, "2026-08-01", 0.001))

	counters, cost, err := repo.Counters(ctx, "2026-08-01")
	require.NoError(err)
	require.EqualValues(2, counters[domain.KindTranslate])
	require.EqualValues(1, counters[domain.KindSpeech])
	require.InDelta(0.0012, cost, 1e-9)
}

func TestUsageMemoryRollsOverOnDateChange(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	repo := repository.NewUsageMemory()
	ctx := context.Background()

	require.NoError(repo.Add(ctx, domain.KindSpeech, "2026-08-01", 0.001))

	// several idle days later the old counters are gone
	counters, cost, err := repo.Counters(ctx, "2026-08-05")
	require.NoError(err)
	require.Empty(counters)
	require.EqualValues(0, cost)

	require.NoError(repo.Add(ctx, domain.KindSpeech, "2026-08-05", 0.001))
	counters, _, err = repo.Counters(ctx, "2026-08-05")
	require.NoError(err)
	require.EqualValues(1, counters[domain.KindSpeech])
}
