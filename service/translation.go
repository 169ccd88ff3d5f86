package service

import (
	"context"
	"fmt"

	"lovebridge-gateway/domain"

	"github.com/pkg/errors"
)

const translatorSystemPrompt = "You are a translator helping a couple communicate across languages. " +
	"Translate naturally and keep the warm, affectionate tone of the original. " +
	"Reply with the translation only, no explanations."

type ChatCompleter interface {
	Complete(ctx context.Context, systemPrompt string, userPrompt string) (string, error)
}

type Translation struct {
	client ChatCompleter
}

// NewTranslation accepts a nil client when no translator credential is
// configured; every call then fails with ErrTranslatorNotConfigured.
func NewTranslation(client ChatCompleter) Translation {
	return Translation{
		client: client,
	}
}

func (s Translation) Translate(ctx context.Context, text string, mode string) (string, error) {
	language, err := targetLanguage(mode)
	if err != nil {
		return "", err
	}
	return s.translateTo(ctx, text, language)
}

// FullTranslation composes up to two sequential calls. A single upstream
// failure aborts the whole composite with no partial result.
func (s Translation) FullTranslation(ctx context.Context, text string, mode string) (*domain.FullTranslation, error) {
	switch mode {
	case domain.ModeToJapanese:
		japanese, err := s.translateTo(ctx, text, "Japanese")
		if err != nil {
			return nil, err
		}
		cantonese, err := s.translateTo(ctx, japanese, "Cantonese")
		if err != nil {
			return nil, err
		}
		return &domain.FullTranslation{
			Original:  text,
			Japanese:  japanese,
			Cantonese: cantonese,
			English:   text, // the source is English, never re-translated
		}, nil
	case domain.ModeToCantonese:
		cantonese, err := s.translateTo(ctx, text, "Cantonese")
		if err != nil {
			return nil, err
		}
		english, err := s.translateTo(ctx, text, "English")
		if err != nil {
			return nil, err
		}
		return &domain.FullTranslation{
			Original:  text,
			Cantonese: cantonese,
			English:   english,
		}, nil
	case domain.ModeToEnglish:
		english, err := s.translateTo(ctx, text, "English")
		if err != nil {
			return nil, err
		}
		return &domain.FullTranslation{
			Original: text,
			English:  english,
		}, nil
	default:
		return nil, errors.Errorf("unknown translation mode '%s'", mode)
	}
}

func (s Translation) translateTo(ctx context.Context, text string, language string) (string, error) {
	if s.client == nil {
		return "", domain.ErrTranslatorNotConfigured
	}

	prompt := fmt.Sprintf("Translate the following message to %s:\n\n%s", language, text)
	completion, err := s.client.Complete(ctx, translatorSystemPrompt, prompt)
	if err != nil {
		return "", errors.WithMessagef(err, "translate to %s", language)
	}
	if completion == "" {
		return "", errors.Errorf("translate to %s: empty completion", language)
	}
	return completion, nil
}

func targetLanguage(mode string) (string, error) {
	switch mode {
	case domain.ModeToJapanese:
		return "Japanese", nil
	case domain.ModeToCantonese:
		return "Cantonese", nil
	case domain.ModeToEnglish:
		return "English", nil
	default:
		return "", errors.Errorf("unknown translation mode '%s'", mode)
	}
}
