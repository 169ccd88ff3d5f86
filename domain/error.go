package domain

import (
	"github.com/pkg/errors"
)

var (
	ErrTranslatorNotConfigured = errors.New("OpenRouter API key not configured in environment variables")
	ErrEmptyTranscription      = errors.New("upstream returned empty transcription")
)
