package youtube

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"ytbrief/internal/config"
	"ytbrief/internal/utils"
)

const captionTracksMarker = `"captionTracks":`

// Client fetches transcripts and caption metadata from YouTube by reading
// the caption track list embedded in the watch page and then loading the
// referenced timedtext document. Construct one per process and inject it
// where needed; it holds no per-request state.
type Client struct {
	watchURL   string
	oembedURL  string
	httpClient *http.Client
	limiter    *rate.Limiter
	retry      RetryConfig
	logger     *utils.Logger
}

func NewClient(cfg *config.Config, logger *utils.Logger) *Client {
	return &Client{
		watchURL:  cfg.YouTube.WatchURL,
		oembedURL: cfg.YouTube.OEmbedURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.App.HttpTimeoutSeconds) * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.YouTube.RequestsPerSecond), cfg.YouTube.Burst),
		retry:   retryConfigFrom(&cfg.YouTube),
		logger:  logger,
	}
}

// FetchTranscript returns the transcript for videoID in languageCode. An
// empty languageCode selects the best available track (generated English
// preferred) and marks the result auto-detected.
func (c *Client) FetchTranscript(ctx context.Context, videoID, languageCode, reqID string) (*Transcript, error) {
	tracks, err := c.captionTracks(ctx, videoID, reqID)
	if err != nil {
		return nil, err
	}

	track, autoDetected := selectTrack(tracks, languageCode)

	c.logger.Debug(&reqID, "Selected caption track: lang=%s, generated=%v, auto=%v",
		track.LanguageCode, track.isGenerated(), autoDetected)

	body, err := c.get(ctx, track.BaseURL, reqID)
	if err != nil {
		// retry budget exhausted; to the caller this is no transcript
		return nil, fmt.Errorf("%w: %v", ErrNoTranscript, err)
	}

	segments, err := parseTimedText(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse caption document: %w", err)
	}
	if len(segments) == 0 {
		return nil, ErrNoTranscript
	}

	return &Transcript{
		VideoID:      videoID,
		Language:     track.LanguageCode,
		LanguageName: track.Name.String(),
		AutoDetected: autoDetected,
		Segments:     segments,
	}, nil
}

// ListLanguages returns metadata for every caption track of the video.
func (c *Client) ListLanguages(ctx context.Context, videoID, reqID string) ([]Language, error) {
	tracks, err := c.captionTracks(ctx, videoID, reqID)
	if err != nil {
		return nil, err
	}

	languages := make([]Language, len(tracks))
	for i, track := range tracks {
		languages[i] = Language{
			Code:           track.LanguageCode,
			Name:           track.Name.String(),
			IsGenerated:    track.isGenerated(),
			IsTranslatable: track.IsTranslatable,
		}
	}
	return languages, nil
}

func (c *Client) captionTracks(ctx context.Context, videoID, reqID string) ([]captionTrack, error) {
	pageURL := fmt.Sprintf("%s?v=%s", c.watchURL, url.QueryEscape(videoID))

	c.logger.Debug(&reqID, "Fetching watch page for video %s", videoID)
	body, err := c.get(ctx, pageURL, reqID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoTranscript, err)
	}
	page := string(body)

	if isUnavailable(page) {
		return nil, ErrVideoUnavailable
	}

	idx := strings.Index(page, captionTracksMarker)
	if idx < 0 {
		if strings.Contains(page, `"playerCaptionsTracklistRenderer"`) {
			return nil, ErrTranscriptsDisabled
		}
		return nil, ErrNoTranscript
	}

	var tracks []captionTrack
	dec := json.NewDecoder(strings.NewReader(page[idx+len(captionTracksMarker):]))
	if err := dec.Decode(&tracks); err != nil {
		return nil, fmt.Errorf("failed to parse caption track list: %w", err)
	}
	if len(tracks) == 0 {
		return nil, ErrNoTranscript
	}

	return tracks, nil
}

// selectTrack picks the requested language when present, otherwise falls
// back to generated English, then any English, then the first track. The
// second return value reports whether a fallback (or no request) happened.
func selectTrack(tracks []captionTrack, languageCode string) (captionTrack, bool) {
	if languageCode != "" {
		for _, track := range tracks {
			if track.LanguageCode == languageCode {
				return track, false
			}
		}
	}

	for _, track := range tracks {
		if track.isGenerated() && strings.HasPrefix(track.LanguageCode, "en") {
			return track, true
		}
	}
	for _, track := range tracks {
		if strings.HasPrefix(track.LanguageCode, "en") {
			return track, true
		}
	}
	return tracks[0], true
}

func parseTimedText(body []byte) ([]Segment, error) {
	var doc timedText
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, err
	}

	segments := make([]Segment, 0, len(doc.Texts))
	for _, t := range doc.Texts {
		text := strings.TrimSpace(html.UnescapeString(t.Body))
		if text == "" {
			continue
		}
		segments = append(segments, Segment{
			Text:     text,
			Start:    t.Start,
			Duration: t.Dur,
		})
	}
	return segments, nil
}

func isUnavailable(page string) bool {
	for _, status := range []string{`"status":"ERROR"`, `"status":"LOGIN_REQUIRED"`, `"status":"UNPLAYABLE"`} {
		if strings.Contains(page, status) {
			return true
		}
	}
	return false
}

// get performs a rate-limited GET with the bounded retry policy applied to
// transient failures.
func (c *Client) get(ctx context.Context, rawURL, reqID string) ([]byte, error) {
	return RetryDo(ctx, c.retry, func() ([]byte, error) {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")
		req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if isRetryableStatus(resp.StatusCode) {
			return nil, &httpStatusError{StatusCode: resp.StatusCode}
		}
		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			return nil, &APIError{
				StatusCode: resp.StatusCode,
				Message:    http.StatusText(resp.StatusCode),
				Body:       string(body),
			}
		}

		return io.ReadAll(resp.Body)
	})
}
