package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"ytbrief/internal/config"
	"ytbrief/internal/utils"
)

const timedTextXML = `<?xml version="1.0" encoding="utf-8"?>
<transcript>
<text start="0.0" dur="1.5">Hello &amp;amp; welcome.</text>
<text start="1.5" dur="2.0">This is a test.</text>
<text start="3.5" dur="1.0">   </text>
</transcript>`

// newFakeYouTube serves a watch page whose caption track list points back at
// the same server's timedtext endpoint. Behavior varies by video id so error
// paths can be exercised against real responses.
func newFakeYouTube() *httptest.Server {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/watch":
			switch r.URL.Query().Get("v") {
			case "gone0000000":
				fmt.Fprint(w, `{"playabilityStatus":{"status":"ERROR","reason":"Video unavailable"}}`)
			case "disabled000":
				fmt.Fprint(w, `{"playabilityStatus":{"status":"OK"},"captions":{"playerCaptionsTracklistRenderer":{"audioTracks":[]}}}`)
			case "nocaps00000":
				fmt.Fprint(w, `{"playabilityStatus":{"status":"OK"}}`)
			default:
				fmt.Fprintf(w, `{"playabilityStatus":{"status":"OK"},"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[`+
					`{"baseUrl":"%s/timedtext?lang=de","name":{"simpleText":"German"},"languageCode":"de","kind":"","isTranslatable":true},`+
					`{"baseUrl":"%s/timedtext?lang=en","name":{"simpleText":"English (auto-generated)"},"languageCode":"en","kind":"asr","isTranslatable":true}`+
					`]}}}`, srv.URL, srv.URL)
			}
		case "/timedtext":
			w.Header().Set("Content-Type", "text/xml")
			fmt.Fprint(w, timedTextXML)
		case "/oembed":
			fmt.Fprint(w, `{"title":"Test Video","author_name":"Test Channel","thumbnail_url":"https://img.example.com/thumb.jpg"}`)
		default:
			http.NotFound(w, r)
		}
	}))
	return srv
}

func newTestClient(baseURL string) *Client {
	cfg := config.Default()
	cfg.App.HttpTimeoutSeconds = 5
	cfg.YouTube.WatchURL = baseURL + "/watch"
	cfg.YouTube.OEmbedURL = baseURL + "/oembed"
	cfg.YouTube.MaxAttempts = 3
	cfg.YouTube.InitialWaitMs = 1
	cfg.YouTube.MaxWaitMs = 2
	cfg.YouTube.RequestsPerSecond = 1000
	cfg.YouTube.Burst = 100
	return NewClient(cfg, utils.NewDiscardLogger())
}

func TestFetchTranscriptRequestedLanguage(t *testing.T) {
	srv := newFakeYouTube()
	defer srv.Close()
	client := newTestClient(srv.URL)

	transcript, err := client.FetchTranscript(context.Background(), "dQw4w9WgXcQ", "de", "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if transcript.Language != "de" {
		t.Errorf("Language = %q, want \"de\"", transcript.Language)
	}
	if transcript.AutoDetected {
		t.Error("AutoDetected = true for an exact language match")
	}
	if transcript.LanguageName != "German" {
		t.Errorf("LanguageName = %q, want \"German\"", transcript.LanguageName)
	}
	if len(transcript.Segments) != 2 {
		t.Fatalf("got %d segments, want 2 (blank segment should be dropped)", len(transcript.Segments))
	}
	if transcript.Segments[0].Text != "Hello & welcome." {
		t.Errorf("Segments[0].Text = %q, want double-unescaped text", transcript.Segments[0].Text)
	}
	if transcript.Segments[0].Start != 0 || transcript.Segments[1].Start != 1.5 {
		t.Errorf("segment starts = %v, %v, want 0, 1.5", transcript.Segments[0].Start, transcript.Segments[1].Start)
	}
}

func TestFetchTranscriptDefaultsToGeneratedEnglish(t *testing.T) {
	srv := newFakeYouTube()
	defer srv.Close()
	client := newTestClient(srv.URL)

	transcript, err := client.FetchTranscript(context.Background(), "dQw4w9WgXcQ", "", "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if transcript.Language != "en" {
		t.Errorf("Language = %q, want \"en\"", transcript.Language)
	}
	if !transcript.AutoDetected {
		t.Error("AutoDetected = false when no language was requested")
	}
}

func TestFetchTranscriptMissingLanguageFallsBack(t *testing.T) {
	srv := newFakeYouTube()
	defer srv.Close()
	client := newTestClient(srv.URL)

	transcript, err := client.FetchTranscript(context.Background(), "dQw4w9WgXcQ", "fr", "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if transcript.Language != "en" {
		t.Errorf("Language = %q, want fallback \"en\"", transcript.Language)
	}
	if !transcript.AutoDetected {
		t.Error("AutoDetected = false after falling back from an unavailable language")
	}
}

func TestFetchTranscriptErrorPaths(t *testing.T) {
	srv := newFakeYouTube()
	defer srv.Close()
	client := newTestClient(srv.URL)

	tests := []struct {
		name    string
		videoID string
		want    error
	}{
		{"unavailable video", "gone0000000", ErrVideoUnavailable},
		{"captions disabled", "disabled000", ErrTranscriptsDisabled},
		{"no caption data", "nocaps00000", ErrNoTranscript},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.FetchTranscript(context.Background(), tt.videoID, "", "test")
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFetchTranscriptRetriesThenFails(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()
	client := newTestClient(srv.URL)

	_, err := client.FetchTranscript(context.Background(), "dQw4w9WgXcQ", "", "test")
	if !errors.Is(err, ErrNoTranscript) {
		t.Fatalf("error = %v, want ErrNoTranscript", err)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("server saw %d requests, want 3 attempts", got)
	}
}

func TestListLanguages(t *testing.T) {
	srv := newFakeYouTube()
	defer srv.Close()
	client := newTestClient(srv.URL)

	languages, err := client.ListLanguages(context.Background(), "dQw4w9WgXcQ", "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(languages) != 2 {
		t.Fatalf("got %d languages, want 2", len(languages))
	}

	if languages[0].Code != "de" || languages[0].IsGenerated {
		t.Errorf("languages[0] = %+v, want manual de track", languages[0])
	}
	if languages[1].Code != "en" || !languages[1].IsGenerated {
		t.Errorf("languages[1] = %+v, want generated en track", languages[1])
	}
	if languages[1].Name != "English (auto-generated)" {
		t.Errorf("languages[1].Name = %q", languages[1].Name)
	}
}

func TestFetchVideoInfo(t *testing.T) {
	srv := newFakeYouTube()
	defer srv.Close()
	client := newTestClient(srv.URL)

	info := client.FetchVideoInfo(context.Background(), "dQw4w9WgXcQ", "test")
	if info.Title != "Test Video" || info.Author != "Test Channel" {
		t.Errorf("info = %+v, want oEmbed metadata", info)
	}
	if info.Thumbnail != "https://img.example.com/thumb.jpg" {
		t.Errorf("Thumbnail = %q", info.Thumbnail)
	}
}

func TestFetchVideoInfoFallback(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	client := newTestClient(srv.URL)

	info := client.FetchVideoInfo(context.Background(), "dQw4w9WgXcQ", "test")
	if info.Title != "Video dQw4w9WgXcQ" {
		t.Errorf("Title = %q, want generic fallback", info.Title)
	}
	if info.Thumbnail != "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg" {
		t.Errorf("Thumbnail = %q, want predictable fallback URL", info.Thumbnail)
	}
}

func TestSelectTrack(t *testing.T) {
	tracks := []captionTrack{
		{LanguageCode: "de", Kind: ""},
		{LanguageCode: "en-US", Kind: ""},
		{LanguageCode: "en", Kind: "asr"},
	}

	tests := []struct {
		name     string
		request  string
		wantLang string
		wantAuto bool
	}{
		{"exact match", "de", "de", false},
		{"no request prefers generated english", "", "en", true},
		{"missing language falls back", "ja", "en", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track, auto := selectTrack(tracks, tt.request)
			if track.LanguageCode != tt.wantLang || auto != tt.wantAuto {
				t.Errorf("selectTrack(%q) = (%s, %v), want (%s, %v)",
					tt.request, track.LanguageCode, auto, tt.wantLang, tt.wantAuto)
			}
		})
	}

	onlyForeign := []captionTrack{{LanguageCode: "ja"}, {LanguageCode: "ko"}}
	track, auto := selectTrack(onlyForeign, "de")
	if track.LanguageCode != "ja" || !auto {
		t.Errorf("selectTrack with no english = (%s, %v), want first track auto", track.LanguageCode, auto)
	}
}
