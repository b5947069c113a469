package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/whitefall/ytfetcher/internal/config"
)

// PreviewService fetches the page title of a link so the quality prompt can
// show what is about to be downloaded. Strictly best-effort: any failure is
// ignored by the caller and the prompt goes out without a title.
type PreviewService struct {
	httpClient *http.Client
}

func NewPreviewService() *PreviewService {
	return &PreviewService{
		httpClient: &http.Client{Timeout: config.PreviewTimeout},
	}
}

func (s *PreviewService) PageTitle(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch page: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse page: %w", err)
	}

	return ExtractTitle(doc), nil
}

// ExtractTitle pulls a display title out of a parsed document, preferring
// the og:title meta tag over <title>.
func ExtractTitle(doc *goquery.Document) string {
	title, _ := doc.Find(`meta[property="og:title"]`).Attr("content")
	title = strings.TrimSpace(title)
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if runes := []rune(title); len(runes) > 120 {
		title = string(runes[:120]) + "…"
	}
	return title
}
