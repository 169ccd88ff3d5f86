package conf

import (
	"os"
)

// Secrets are taken from the environment only, never from the config file.
type Secrets struct {
	OpenAiApiKey      string
	HuggingFaceApiKey string
	OpenRouterApiKey  string
	ApiSecret         string
	AdminSecret       string
}

func SecretsFromEnv() Secrets {
	return Secrets{
		OpenAiApiKey:      os.Getenv("OPENAI_API_KEY"),
		HuggingFaceApiKey: os.Getenv("HUGGINGFACE_API_KEY"),
		OpenRouterApiKey:  os.Getenv("OPENROUTER_API_KEY"),
		ApiSecret:         os.Getenv("LOVEBRIDGE_API_SECRET"),
		AdminSecret:       os.Getenv("LOVEBRIDGE_ADMIN_SECRET"),
	}
}
