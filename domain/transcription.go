package domain

type TranscriptSource string

const (
	SourcePrimaryApi    TranscriptSource = "primary-api"
	SourceSecondaryApi  TranscriptSource = "secondary-api"
	SourceHeuristicDemo TranscriptSource = "heuristic-demo"
	SourceFixedFallback TranscriptSource = "fixed-fallback"
)

type Audio struct {
	Data     []byte
	MimeType string
}

// AudioAnalysis is a crude amplitude profile of the audio buffer:
// mean and peak of |b-128| sampled at a fixed stride.
type AudioAnalysis struct {
	ByteLength    int     `json:"byteLength"`
	MeanIntensity float64 `json:"meanIntensity"`
	PeakIntensity int     `json:"peakIntensity"`
	Bucket        string  `json:"bucket"`
}

type Transcript struct {
	Text     string
	Demo     bool
	Source   TranscriptSource
	Analysis *AudioAnalysis
}

type SpeechToTextRequest struct {
	AudioData string `json:"audioData"`
	MimeType  string `json:"mimeType"`
}

type SpeechToTextResponse struct {
	Text          string           `json:"text"`
	Success       bool             `json:"success"`
	Demo          bool             `json:"demo"`
	Source        TranscriptSource `json:"source"`
	AudioAnalysis *AudioAnalysis   `json:"audioAnalysis,omitempty"`
}
