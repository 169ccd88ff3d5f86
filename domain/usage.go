package domain

type UsageSnapshot struct {
	Date                string  `json:"date"`
	TotalTranslations   int64   `json:"totalTranslations"`
	TotalSpeechRequests int64   `json:"totalSpeechRequests"`
	EstimatedCost       float64 `json:"estimatedCost"`
	MaxTranslations     int64   `json:"maxTranslations"`
	MaxSpeechRequests   int64   `json:"maxSpeechRequests"`
}

const (
	AdminActionReset        = "reset"
	AdminActionUpdateLimits = "updateLimits"
)

type AdminCommand struct {
	Action            string `json:"action"`
	MaxTranslations   *int64 `json:"maxTranslations,omitempty"`
	MaxSpeechRequests *int64 `json:"maxSpeechRequests,omitempty"`
}
