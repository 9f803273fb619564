package api

import "ytbrief/internal/youtube"

// VideoRequest identifies a video by id or by any YouTube URL form.
type VideoRequest struct {
	VideoID string `json:"video_id"`
	URL     string `json:"url"`
}

type TranscriptRequest struct {
	VideoRequest
	Language          string `json:"language"`
	IncludeTimestamps *bool  `json:"include_timestamps"`
}

type SummaryRequest struct {
	VideoRequest
	Language string `json:"language"`
	Length   string `json:"length"`
}

type LanguagesRequest struct {
	VideoRequest
}

type TranscriptResponse struct {
	Success      bool               `json:"success"`
	VideoID      string             `json:"video_id"`
	Transcript   string             `json:"transcript"`
	PlainText    string             `json:"plain_text"`
	VideoInfo    *youtube.VideoInfo `json:"video_info"`
	WordCount    int                `json:"word_count"`
	CharCount    int                `json:"char_count"`
	Language     string             `json:"language"`
	LanguageName string             `json:"language_name"`
	AutoDetected bool               `json:"auto_detected"`
}

type SummaryResponse struct {
	Success        bool               `json:"success"`
	VideoID        string             `json:"video_id"`
	Summary        string             `json:"summary"`
	WordCount      int                `json:"word_count"`
	ReadingTime    int                `json:"reading_time"`
	SentenceCount  int                `json:"sentence_count"`
	ProcessingTime float64            `json:"processing_time"`
	VideoInfo      *youtube.VideoInfo `json:"video_info"`
	Length         string             `json:"length"`
}

type LanguagesResponse struct {
	Success   bool               `json:"success"`
	VideoID   string             `json:"video_id"`
	Languages []youtube.Language `json:"languages"`
}
