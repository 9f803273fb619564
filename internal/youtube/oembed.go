package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

type oembedResponse struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// FetchVideoInfo returns title and thumbnail metadata via the oEmbed
// endpoint. Metadata is best-effort: any failure falls back to a generic
// title and the predictable thumbnail URL, never an error.
func (c *Client) FetchVideoInfo(ctx context.Context, videoID, reqID string) *VideoInfo {
	info := &VideoInfo{
		VideoID:   videoID,
		Title:     fmt.Sprintf("Video %s", videoID),
		Thumbnail: fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", videoID),
	}

	videoURL := fmt.Sprintf("https://www.youtube.com/watch?v=%s", videoID)
	reqURL := fmt.Sprintf("%s?url=%s&format=json", c.oembedURL, url.QueryEscape(videoURL))

	if err := c.limiter.Wait(ctx); err != nil {
		return info
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return info
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug(&reqID, "oEmbed lookup failed for %s: %v", videoID, err)
		return info
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug(&reqID, "oEmbed lookup for %s returned %d", videoID, resp.StatusCode)
		return info
	}

	var oembed oembedResponse
	if err := json.NewDecoder(resp.Body).Decode(&oembed); err != nil {
		c.logger.Debug(&reqID, "oEmbed decode failed for %s: %v", videoID, err)
		return info
	}

	if oembed.Title != "" {
		info.Title = oembed.Title
	}
	info.Author = oembed.AuthorName
	if oembed.ThumbnailURL != "" {
		info.Thumbnail = oembed.ThumbnailURL
	}
	return info
}
