package api

import (
	"errors"
	"math"
	"net/http"
	"strings"
	"time"

	"ytbrief/internal/config"
	"ytbrief/internal/processor"
	"ytbrief/internal/utils"
	"ytbrief/internal/utils/httputils"
	"ytbrief/internal/youtube"
)

type Handler struct {
	logger  *utils.Logger
	youtube *youtube.Client
	cfg     *config.Config
}

func NewHandler(logger *utils.Logger, yt *youtube.Client, cfg *config.Config) *Handler {
	return &Handler{
		logger:  logger,
		youtube: yt,
		cfg:     cfg,
	}
}

func (h *Handler) HandleTranscript(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := RequestIDFromContext(ctx)

	if h.logger.RawBodyLog {
		if _, err := httputils.LogRequestBody(r, h.logger, reqID); err != nil {
			h.logger.Error(&reqID, "Failed to read request body: %v", err)
			httputils.HandleError(w, err)
			return
		}
	}

	var req TranscriptRequest
	if err := httputils.DecodeJSON(r, &req); err != nil {
		h.logger.Error(&reqID, "JSON decode error: %v", err)
		httputils.HandleError(w, err)
		return
	}

	videoID := h.resolveVideoID(req.VideoRequest)
	if videoID == "" {
		httputils.JSONError(w, http.StatusBadRequest, "Please provide a valid video_id or YouTube URL")
		return
	}

	h.logger.Info(&reqID, "Fetching transcript: video=%s, language=%q", videoID, req.Language)

	transcript, err := h.youtube.FetchTranscript(ctx, videoID, req.Language, reqID)
	if err != nil {
		h.logger.Error(&reqID, "Transcript fetch failed for %s: %v", videoID, err)
		status, message := fetchErrorResponse(err)
		httputils.JSONError(w, status, message)
		return
	}

	videoInfo := h.youtube.FetchVideoInfo(ctx, videoID, reqID)

	includeTimestamps := req.IncludeTimestamps == nil || *req.IncludeTimestamps
	plainText := youtube.FormatPlain(transcript.Segments)
	formatted := plainText
	if includeTimestamps {
		formatted = youtube.FormatWithTimestamps(transcript.Segments)
	}

	resp := TranscriptResponse{
		Success:      true,
		VideoID:      videoID,
		Transcript:   formatted,
		PlainText:    plainText,
		VideoInfo:    videoInfo,
		WordCount:    utils.CountWords(plainText),
		CharCount:    len(plainText),
		Language:     transcript.Language,
		LanguageName: transcript.LanguageName,
		AutoDetected: transcript.AutoDetected,
	}

	if err := httputils.JSONResponse(w, http.StatusOK, resp); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := RequestIDFromContext(ctx)
	start := time.Now()

	var req SummaryRequest
	if err := httputils.DecodeJSON(r, &req); err != nil {
		h.logger.Error(&reqID, "JSON decode error: %v", err)
		httputils.HandleError(w, err)
		return
	}

	videoID := h.resolveVideoID(req.VideoRequest)
	if videoID == "" {
		httputils.JSONError(w, http.StatusBadRequest, "Please provide a valid video_id or YouTube URL")
		return
	}

	length := processor.NormalizeTier(req.Length)
	h.logger.Info(&reqID, "Summarizing: video=%s, language=%q, length=%s", videoID, req.Language, length)

	transcript, err := h.youtube.FetchTranscript(ctx, videoID, req.Language, reqID)
	if err != nil {
		h.logger.Error(&reqID, "Transcript fetch failed for %s: %v", videoID, err)
		status, message := fetchErrorResponse(err)
		httputils.JSONError(w, status, message)
		return
	}

	plainText := youtube.FormatPlain(transcript.Segments)

	summary, err := processor.Summarize(plainText, length, baseLanguage(transcript.Language), &h.cfg.Summary)
	if err != nil {
		var insufficient *processor.InsufficientContentError
		if errors.As(err, &insufficient) {
			h.logger.Info(&reqID, "Insufficient content for %s: %v", videoID, err)
			httputils.JSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error(&reqID, "Summarization failed for %s: %v", videoID, err)
		httputils.JSONError(w, http.StatusInternalServerError, "An error occurred: "+err.Error())
		return
	}

	videoInfo := h.youtube.FetchVideoInfo(ctx, videoID, reqID)

	resp := SummaryResponse{
		Success:        true,
		VideoID:        videoID,
		Summary:        summary.Text,
		WordCount:      summary.WordCount,
		ReadingTime:    summary.ReadingTime,
		SentenceCount:  summary.SentenceCount,
		ProcessingTime: math.Round(time.Since(start).Seconds()*100) / 100,
		VideoInfo:      videoInfo,
		Length:         length,
	}

	if err := httputils.JSONResponse(w, http.StatusOK, resp); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

func (h *Handler) HandleLanguages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := RequestIDFromContext(ctx)

	var req LanguagesRequest
	if err := httputils.DecodeJSON(r, &req); err != nil {
		h.logger.Error(&reqID, "JSON decode error: %v", err)
		httputils.HandleError(w, err)
		return
	}

	videoID := h.resolveVideoID(req.VideoRequest)
	if videoID == "" {
		httputils.JSONError(w, http.StatusBadRequest, "Please provide a valid video_id or YouTube URL")
		return
	}

	languages, err := h.youtube.ListLanguages(ctx, videoID, reqID)
	if err != nil {
		h.logger.Error(&reqID, "Language listing failed for %s: %v", videoID, err)
		status, message := fetchErrorResponse(err)
		httputils.JSONError(w, status, message)
		return
	}

	resp := LanguagesResponse{
		Success:   true,
		VideoID:   videoID,
		Languages: languages,
	}

	if err := httputils.JSONResponse(w, http.StatusOK, resp); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

func (h *Handler) resolveVideoID(req VideoRequest) string {
	if req.VideoID != "" {
		return youtube.ExtractVideoID(req.VideoID)
	}
	return youtube.ExtractVideoID(req.URL)
}

// fetchErrorResponse maps fetcher failures to a status and a user-facing
// message. Anything unrecognized is an internal error.
func fetchErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, youtube.ErrVideoUnavailable),
		errors.Is(err, youtube.ErrTranscriptsDisabled),
		errors.Is(err, youtube.ErrNoTranscript):
		return http.StatusBadRequest, capitalizeError(err)
	default:
		return http.StatusInternalServerError, "An error occurred: " + err.Error()
	}
}

func capitalizeError(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

func baseLanguage(code string) string {
	if i := strings.IndexByte(code, '-'); i > 0 {
		return code[:i]
	}
	return code
}
