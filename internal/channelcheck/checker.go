package channelcheck

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// ChannelInfo is the result of probing a declared channel URL.
type ChannelInfo struct {
	URL       string    `json:"url"`
	Host      string    `json:"host"`
	Platform  string    `json:"platform"`
	Title     string    `json:"title"`
	FetchedAt time.Time `json:"fetched_at"`
}

type Checker struct {
	httpClient *http.Client
	log        *zap.Logger
	maxRetries int
}

func NewChecker(timeoutMS, maxRetries int, log *zap.Logger) *Checker {
	return &Checker{
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutMS) * time.Millisecond,
		},
		log:        log,
		maxRetries: maxRetries,
	}
}

// Probe normalizes the URL, fetches the page and extracts its title.
func (c *Checker) Probe(ctx context.Context, rawURL string) (*ChannelInfo, error) {
	normalized, err := NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	parsed, _ := url.Parse(normalized)

	var doc *goquery.Document
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, normalized, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
		req.Header.Set("Accept-Language", "ko-KR,ko;q=0.9,en;q=0.8")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = fmt.Errorf("HTTP %d for %s", resp.StatusCode, normalized)
			time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
			continue
		}

		doc, err = goquery.NewDocumentFromReader(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		lastErr = nil
		break
	}

	if lastErr != nil {
		return nil, lastErr
	}

	info := &ChannelInfo{
		URL:       normalized,
		Host:      parsed.Hostname(),
		Platform:  GuessPlatform(parsed.Hostname()),
		Title:     strings.TrimSpace(doc.Find("title").First().Text()),
		FetchedAt: time.Now(),
	}
	return info, nil
}

// NormalizeURL validates the channel URL and defaults a missing scheme
// to https.
func NormalizeURL(rawURL string) (string, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return "", fmt.Errorf("empty url")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", parsed.Scheme)
	}
	if parsed.Hostname() == "" {
		return "", fmt.Errorf("missing host")
	}
	return parsed.String(), nil
}

// GuessPlatform maps a hostname to one of the channel kinds declared in
// the influencer profile.
func GuessPlatform(host string) string {
	h := strings.ToLower(host)
	switch {
	case strings.Contains(h, "blog.naver.com") || strings.Contains(h, "tistory.com"):
		return "blog"
	case strings.Contains(h, "youtube.com") || strings.Contains(h, "youtu.be"):
		return "video"
	case strings.Contains(h, "instagram.com"):
		return "photo"
	case strings.Contains(h, "threads.net") || strings.Contains(h, "twitter.com") || strings.Contains(h, "x.com"):
		return "micro"
	default:
		return "unknown"
	}
}
