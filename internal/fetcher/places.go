package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/IsaacDSC/placecache/internal/domain"
)

const apiKeyHeader = "X-Goog-Api-Key"

// DefaultMaxPhotoBytes bounds a single photo read into memory.
const DefaultMaxPhotoBytes = 20 << 20

type PlacesConfig struct {
	BaseURL         string
	ApiKey          string
	PhotoMaxWidthPx int
	MaxPhotoBytes   int64
}

// Places calls the Google Places API (v1) details and photo media endpoints.
type Places struct {
	client *http.Client
	conf   PlacesConfig
}

func NewPlaces(client *http.Client, conf PlacesConfig) *Places {
	conf.BaseURL = strings.TrimSuffix(conf.BaseURL, "/")
	if conf.MaxPhotoBytes <= 0 {
		conf.MaxPhotoBytes = DefaultMaxPhotoBytes
	}
	return &Places{client: client, conf: conf}
}

// PlaceDetails returns the raw JSON text of a place restricted to domain.PlaceFieldMask.
func (p *Places) PlaceDetails(ctx context.Context, placeID, languageCode string) ([]byte, error) {
	q := url.Values{}
	q.Set("fields", domain.FieldMask())
	if languageCode != "" {
		q.Set("languageCode", languageCode)
	}

	endpoint := fmt.Sprintf("%s/v1/places/%s?%s", p.conf.BaseURL, url.PathEscape(placeID), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set(apiKeyHeader, p.conf.ApiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{Op: "place details", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &domain.UpstreamError{Op: "place details", StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.UpstreamError{Op: "place details", Err: fmt.Errorf("read body: %w", err)}
	}

	return body, nil
}

// PhotoMedia downloads the image behind a photo name ("places/{id}/photos/{ref}").
// Redirects to the image host are followed by the client.
func (p *Places) PhotoMedia(ctx context.Context, photoName string) ([]byte, string, error) {
	q := url.Values{}
	q.Set("key", p.conf.ApiKey)
	q.Set("maxWidthPx", strconv.Itoa(p.conf.PhotoMaxWidthPx))

	endpoint := fmt.Sprintf("%s/v1/%s/media?%s", p.conf.BaseURL, escapeResourceName(photoName), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, "", &domain.UpstreamError{Op: "photo media", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, "", &domain.UpstreamError{Op: "photo media", StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, p.conf.MaxPhotoBytes+1))
	if err != nil {
		return nil, "", &domain.UpstreamError{Op: "photo media", Err: fmt.Errorf("read body: %w", err)}
	}

	if int64(len(body)) > p.conf.MaxPhotoBytes {
		return nil, "", &domain.UpstreamError{Op: "photo media", Err: fmt.Errorf("photo exceeds %d bytes", p.conf.MaxPhotoBytes)}
	}

	return body, resp.Header.Get("Content-Type"), nil
}

// escapeResourceName escapes each segment of a resource name but keeps the slashes.
func escapeResourceName(name string) string {
	segments := strings.Split(strings.Trim(name, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
