package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sbilibin2017/gw-movie-watchlist/internal/logger"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/models"
)

// StreamingFacade queries the RapidAPI streaming-availability service.
type StreamingFacade struct {
	client  *http.Client
	baseURL string
	host    string
	apiKey  string
	country string
}

// NewStreamingFacade creates a facade for one fixed country.
func NewStreamingFacade(client *http.Client, baseURL, apiKey, country string) *StreamingFacade {
	host := ""
	if u, err := url.Parse(baseURL); err == nil {
		host = u.Host
	}
	return &StreamingFacade{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		host:    host,
		apiKey:  apiKey,
		country: strings.ToLower(country),
	}
}

type streamingOption struct {
	Service string `json:"service"`
	Link    string `json:"link"`
}

type streamingResult struct {
	StreamingInfo map[string][]streamingOption `json:"streamingInfo"`
}

type streamingResponse struct {
	Result []streamingResult `json:"result"`
}

// FetchStreamingInfo returns the services carrying title in the configured
// country. It never fails: any upstream problem yields empty sequences.
func (f *StreamingFacade) FetchStreamingInfo(ctx context.Context, title string) models.StreamingInfo {
	resp, err := f.search(ctx, title)
	if err != nil {
		logger.Log.Warnw("streaming lookup degraded to empty", "title", title, "error", err)
		return models.StreamingInfo{Services: []string{}, Links: []string{}}
	}
	if len(resp.Result) == 0 {
		logger.Log.Warnw("streaming lookup returned no result", "title", title)
		return models.StreamingInfo{Services: []string{}, Links: []string{}}
	}
	return dedupeServices(resp.Result[0].StreamingInfo[f.country])
}

func (f *StreamingFacade) search(ctx context.Context, title string) (*streamingResponse, error) {
	params := url.Values{
		"title":              {title},
		"country":            {f.country},
		"show_type":          {"all"},
		"output_language":    {"en"},
		"series_granularity": {"show"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/search/title?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-RapidAPI-Key", f.apiKey)
	req.Header.Set("X-RapidAPI-Host", f.host)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var out streamingResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ErrUpstreamUnavailable, err)
	}
	return &out, nil
}

// dedupeServices capitalizes service names and keeps the first entry per
// name, compared case-insensitively. Links stay aligned with services.
// Both lists are stored space-joined, so inner whitespace in a name becomes
// a hyphen and links containing whitespace are skipped, as are entries
// missing a service or a link.
func dedupeServices(options []streamingOption) models.StreamingInfo {
	info := models.StreamingInfo{Services: []string{}, Links: []string{}}
	seen := make(map[string]struct{}, len(options))

	for _, opt := range options {
		name := capitalize(strings.Join(strings.Fields(opt.Service), "-"))
		link := strings.TrimSpace(opt.Link)
		if name == "" || link == "" || strings.ContainsFunc(link, unicode.IsSpace) {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		info.Services = append(info.Services, name)
		info.Links = append(info.Links, link)
	}
	return info
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
