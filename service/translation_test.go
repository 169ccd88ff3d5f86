package service_test

import (
	"context"
	"strings"
	"testing"

	"lovebridge-gateway/domain"
	"lovebridge-gateway/service"

	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	prompts []string
}

func (f *fakeCompleter) Complete(_ context.Context, _ string, userPrompt string) (string, error) {
	f.prompts = append(f.prompts, userPrompt)
	switch {
	case strings.Contains(userPrompt, "to Japanese"):
		return "こんにちは", nil
	case strings.Contains(userPrompt, "to Cantonese"):
		return "你好", nil
	case strings.Contains(userPrompt, "to English"):
		return "hello", nil
	default:
		return "?", nil
	}
}

func TestFullTranslationToJapaneseKeepsOriginalEnglish(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	completer := &fakeCompleter{}
	translation := service.NewTranslation(completer)

	result, err := translation.FullTranslation(context.Background(), "good morning my love", domain.ModeToJapanese)
	require.NoError(err)
	require.Equal("good morning my love", result.English)
	require.Equal("good morning my love", result.Original)
	require.Equal("こんにちは", result.Japanese)
	require.Equal("你好", result.Cantonese)

	// second call chains from the Japanese output, not the source
	require.Len(completer.prompts, 2)
	require.Contains(completer.prompts[1], "こんにちは")
	require.NotContains(completer.prompts[1], "good morning")
}

func TestFullTranslationToCantoneseUsesSourceTwice(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	completer := &fakeCompleter{}
	translation := service.NewTranslation(completer)

	result, err := translation.FullTranslation(context.Background(), "hello", domain.ModeToCantonese)
	require.NoError(err)
	require.Equal("你好", result.Cantonese)
	require.Equal("hello", result.English)
	require.Empty(result.Japanese)

	require.Len(completer.prompts, 2)
	require.Contains(completer.prompts[0], "hello")
	require.Contains(completer.prompts[1], "hello")
}

func TestTranslateUnknownMode(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	translation := service.NewTranslation(&fakeCompleter{})

	_, err := translation.Translate(context.Background(), "hello", "toKlingon")
	require.Error(err)
}

func TestTranslateWithoutCredential(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	translation := service.NewTranslation(nil)

	_, err := translation.Translate(context.Background(), "hello", domain.ModeToJapanese)
	require.ErrorIs(err, domain.ErrTranslatorNotConfigured)

	_, err = translation.FullTranslation(context.Background(), "hello", domain.ModeToJapanese)
	require.ErrorIs(err, domain.ErrTranslatorNotConfigured)
}
