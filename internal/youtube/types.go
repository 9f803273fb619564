package youtube

import (
	"errors"
	"fmt"
	"strings"
)

// Segment is one timed piece of transcript text.
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Transcript is the fetched transcript for one video in one language.
// Immutable once returned.
type Transcript struct {
	VideoID      string
	Language     string
	LanguageName string
	AutoDetected bool
	Segments     []Segment
}

// Language describes one available caption track.
type Language struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	IsGenerated    bool   `json:"is_generated"`
	IsTranslatable bool   `json:"is_translatable"`
}

// VideoInfo is best-effort video metadata.
type VideoInfo struct {
	VideoID   string `json:"video_id"`
	Title     string `json:"title"`
	Author    string `json:"author,omitempty"`
	Thumbnail string `json:"thumbnail"`
}

var (
	ErrNoTranscript        = errors.New("no transcript found for this video")
	ErrTranscriptsDisabled = errors.New("transcripts are disabled for this video")
	ErrVideoUnavailable    = errors.New("video is unavailable or private")
)

type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("youtube API error %d: %s", e.StatusCode, e.Message)
}

// captionTrack mirrors the track entries embedded in the watch page.
type captionTrack struct {
	BaseURL        string    `json:"baseUrl"`
	Name           trackName `json:"name"`
	LanguageCode   string    `json:"languageCode"`
	Kind           string    `json:"kind"`
	IsTranslatable bool      `json:"isTranslatable"`
}

func (t captionTrack) isGenerated() bool {
	return t.Kind == "asr"
}

// trackName appears either as {"simpleText": ...} or {"runs": [{"text": ...}]}.
type trackName struct {
	SimpleText string `json:"simpleText"`
	Runs       []struct {
		Text string `json:"text"`
	} `json:"runs"`
}

func (n trackName) String() string {
	if n.SimpleText != "" {
		return n.SimpleText
	}
	var sb strings.Builder
	for _, run := range n.Runs {
		sb.WriteString(run.Text)
	}
	return sb.String()
}

// timedText is the caption XML served by the timedtext endpoint.
type timedText struct {
	Texts []struct {
		Start float64 `xml:"start,attr"`
		Dur   float64 `xml:"dur,attr"`
		Body  string  `xml:",chardata"`
	} `xml:"text"`
}
