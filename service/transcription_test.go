package service_test

import (
	"context"
	"testing"

	"lovebridge-gateway/domain"
	"lovebridge-gateway/service"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/test"
)

type fakeTranscriber struct {
	name       string
	transcript *domain.Transcript
	err        error
	calls      int
}

func (f *fakeTranscriber) Name() string {
	return f.name
}

func (f *fakeTranscriber) Transcribe(_ context.Context, _ domain.Audio) (*domain.Transcript, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.transcript, nil
}

func TestTranscriptionStopsAtFirstSuccess(t *testing.T) {
	t.Parallel()
	test, require := test.New(t)

	primary := &fakeTranscriber{name: "primary", transcript: &domain.Transcript{Text: "hello", Source: domain.SourcePrimaryApi}}
	secondary := &fakeTranscriber{name: "secondary", transcript: &domain.Transcript{Text: "unused", Source: domain.SourceSecondaryApi}}
	pipeline := service.NewTranscription(test.Logger(), primary, secondary)

	transcript, err := pipeline.Transcribe(context.Background(), domain.Audio{Data: []byte("a")})
	require.NoError(err)
	require.EqualValues("hello", transcript.Text)
	require.EqualValues(domain.SourcePrimaryApi, transcript.Source)
	require.EqualValues(0, secondary.calls)
}

func TestTranscriptionFallsThroughFailures(t *testing.T) {
	t.Parallel()
	test, require := test.New(t)

	primary := &fakeTranscriber{name: "primary", err: errors.New("upstream 500")}
	secondary := &fakeTranscriber{name: "secondary", err: errors.New("upstream timeout")}
	demo := &fakeTranscriber{name: "demo", transcript: &domain.Transcript{Text: "canned", Demo: true, Source: domain.SourceHeuristicDemo}}
	pipeline := service.NewTranscription(test.Logger(), primary, secondary, demo)

	transcript, err := pipeline.Transcribe(context.Background(), domain.Audio{Data: []byte("a")})
	require.NoError(err)
	require.True(transcript.Demo)
	require.EqualValues(domain.SourceHeuristicDemo, transcript.Source)
	require.EqualValues(1, primary.calls)
	require.EqualValues(1, secondary.calls)
}

func TestTranscriptionAllStrategiesFailed(t *testing.T) {
	t.Parallel()
	test, require := test.New(t)

	primary := &fakeTranscriber{name: "primary", err: errors.New("boom")}
	pipeline := service.NewTranscription(test.Logger(), primary)

	_, err := pipeline.Transcribe(context.Background(), domain.Audio{Data: []byte("a")})
	require.Error(err)
}
