package provider_test

import (
	"context"
	"testing"

	"lovebridge-gateway/conf"
	"lovebridge-gateway/domain"
	"lovebridge-gateway/provider"

	"github.com/stretchr/testify/require"
)

func heuristicConfig() conf.Heuristic {
	return conf.Heuristic{
		MediumLengthThreshold: 30000,
		LongLengthThreshold:   80000,
		SampleStride:          1000,
		ShortPhrases:          []string{"hi", "hey", "hello"},
		MediumPhrases:         []string{"how was your day?"},
		LongPhrases:           []string{"let me tell you about my whole day"},
		DefaultPhrase:         "say that again?",
	}
}

func TestHeuristicShortBufferUsesShortPool(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	heuristic := provider.NewHeuristicWithSeed(heuristicConfig(), 1)

	for _, size := range []int{0, 1, 100, 29999} {
		transcript, err := heuristic.Transcribe(context.Background(), domain.Audio{Data: make([]byte, size)})
		require.NoError(err)
		require.True(transcript.Demo)
		require.EqualValues(domain.SourceHeuristicDemo, transcript.Source)
		require.Contains(heuristicConfig().ShortPhrases, transcript.Text)
		require.Equal("short", transcript.Analysis.Bucket)
	}
}

func TestHeuristicBuckets(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	heuristic := provider.NewHeuristicWithSeed(heuristicConfig(), 1)

	transcript, err := heuristic.Transcribe(context.Background(), domain.Audio{Data: make([]byte, 30000)})
	require.NoError(err)
	require.Equal("medium", transcript.Analysis.Bucket)
	require.Equal("how was your day?", transcript.Text)

	transcript, err = heuristic.Transcribe(context.Background(), domain.Audio{Data: make([]byte, 80000)})
	require.NoError(err)
	require.Equal("long", transcript.Analysis.Bucket)
	require.Equal("let me tell you about my whole day", transcript.Text)
}

func TestHeuristicDeterministicWithSeed(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	audio := domain.Audio{Data: make([]byte, 100)}

	first := provider.NewHeuristicWithSeed(heuristicConfig(), 42)
	second := provider.NewHeuristicWithSeed(heuristicConfig(), 42)

	for i := 0; i < 10; i++ {
		a, err := first.Transcribe(context.Background(), audio)
		require.NoError(err)
		b, err := second.Transcribe(context.Background(), audio)
		require.NoError(err)
		require.Equal(a.Text, b.Text)
	}
}

func TestHeuristicEmptyPoolFallsBackToDefault(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	config := heuristicConfig()
	config.ShortPhrases = nil
	heuristic := provider.NewHeuristicWithSeed(config, 1)

	transcript, err := heuristic.Transcribe(context.Background(), domain.Audio{Data: make([]byte, 10)})
	require.NoError(err)
	require.EqualValues(domain.SourceFixedFallback, transcript.Source)
	require.Equal("say that again?", transcript.Text)
}

func TestAnalyze(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	// samples at stride 2: indexes 0 and 2 -> |128-128|=0, |255-128|=127
	analysis := provider.Analyze([]byte{128, 0, 255, 0}, 2)
	require.EqualValues(4, analysis.ByteLength)
	require.EqualValues(127, analysis.PeakIntensity)
	require.InDelta(63.5, analysis.MeanIntensity, 1e-9)

	empty := provider.Analyze(nil, 1000)
	require.EqualValues(0, empty.ByteLength)
	require.EqualValues(0, empty.PeakIntensity)
	require.EqualValues(0, empty.MeanIntensity)
}
