package httputils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"ytbrief/internal/utils"
)

func JSONResponse(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// JSONError writes the failure shape the UI expects: a success flag set to
// false plus a human-readable message.
func JSONError(w http.ResponseWriter, status int, message string) error {
	return JSONResponse(w, status, map[string]any{
		"success": false,
		"error":   message,
	})
}

func LogResponseBody(resp *http.Response, logger *utils.Logger, reqID string) ([]byte, error) {
	if !logger.RawBodyLog {
		return nil, nil
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	resp.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

	logger.Debug(&reqID, "Raw response body: %s", string(bodyBytes))

	return bodyBytes, nil
}
