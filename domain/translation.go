package domain

const (
	ModeToJapanese  = "toJapanese"
	ModeToCantonese = "toCantonese"
	ModeToEnglish   = "toEnglish"
)

type TranslateRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode"`
	Full bool   `json:"full,omitempty"`
}

type TranslateResponse struct {
	Translation string `json:"translation"`
	Success     bool   `json:"success"`
	Original    string `json:"original,omitempty"`
	Japanese    string `json:"japanese,omitempty"`
	Cantonese   string `json:"cantonese,omitempty"`
	English     string `json:"english,omitempty"`
}

// FullTranslation is the composite of up to two sequential translation
// calls. English carries the original text verbatim for toJapanese mode,
// never a re-translation.
type FullTranslation struct {
	Original  string
	Japanese  string
	Cantonese string
	English   string
}
