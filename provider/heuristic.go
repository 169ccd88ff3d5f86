package provider

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"lovebridge-gateway/conf"
	"lovebridge-gateway/domain"
)

const (
	bucketShort  = "short"
	bucketMedium = "medium"
	bucketLong   = "long"
)

// Heuristic is the terminal transcription strategy. It never fails: it
// buckets the audio by byte length, derives a crude intensity profile and
// picks a canned phrase from the bucket's pool.
type Heuristic struct {
	config conf.Heuristic

	lock sync.Mutex
	rand *rand.Rand
}

func NewHeuristic(config conf.Heuristic) *Heuristic {
	return NewHeuristicWithSeed(config, time.Now().UnixNano())
}

// NewHeuristicWithSeed fixes the phrase selection, which makes the output
// deterministic for a given audio buffer.
func NewHeuristicWithSeed(config conf.Heuristic, seed int64) *Heuristic {
	return &Heuristic{
		config: config,
		rand:   rand.New(rand.NewSource(seed)),
	}
}

func (p *Heuristic) Name() string {
	return "heuristic-demo"
}

func (p *Heuristic) Transcribe(_ context.Context, audio domain.Audio) (*domain.Transcript, error) {
	analysis := Analyze(audio.Data, p.config.SampleStride)

	var pool []string
	switch {
	case len(audio.Data) < p.config.MediumLengthThreshold:
		analysis.Bucket = bucketShort
		pool = p.config.ShortPhrases
	case len(audio.Data) < p.config.LongLengthThreshold:
		analysis.Bucket = bucketMedium
		pool = p.config.MediumPhrases
	default:
		analysis.Bucket = bucketLong
		pool = p.config.LongPhrases
	}

	if len(pool) == 0 {
		return &domain.Transcript{
			Text:     p.config.DefaultPhrase,
			Demo:     true,
			Source:   domain.SourceFixedFallback,
			Analysis: &analysis,
		}, nil
	}

	p.lock.Lock()
	phrase := pool[p.rand.Intn(len(pool))]
	p.lock.Unlock()

	return &domain.Transcript{
		Text:     phrase,
		Demo:     true,
		Source:   domain.SourceHeuristicDemo,
		Analysis: &analysis,
	}, nil
}

// Analyze samples |b-128| every stride bytes and reports the mean and peak.
func Analyze(data []byte, stride int) domain.AudioAnalysis {
	if stride <= 0 {
		stride = 1
	}

	sum := 0
	peak := 0
	samples := 0
	for i := 0; i < len(data); i += stride {
		intensity := int(data[i]) - 128
		if intensity < 0 {
			intensity = -intensity
		}
		sum += intensity
		if intensity > peak {
			peak = intensity
		}
		samples++
	}

	mean := float64(0)
	if samples > 0 {
		mean = float64(sum) / float64(samples)
	}

	return domain.AudioAnalysis{
		ByteLength:    len(data),
		MeanIntensity: mean,
		PeakIntensity: peak,
	}
}
