package service

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestExtractTitlePrefersOpenGraph(t *testing.T) {
	doc := parseDoc(t, `<html><head>
		<title>Site - Page</title>
		<meta property="og:title" content="Real Clip Title">
	</head></html>`)
	if got := ExtractTitle(doc); got != "Real Clip Title" {
		t.Errorf("ExtractTitle = %q", got)
	}
}

func TestExtractTitleFallsBackToTitleTag(t *testing.T) {
	doc := parseDoc(t, `<html><head><title>  Plain Title  </title></head></html>`)
	if got := ExtractTitle(doc); got != "Plain Title" {
		t.Errorf("ExtractTitle = %q", got)
	}
}

func TestExtractTitleEmptyDocument(t *testing.T) {
	doc := parseDoc(t, `<html><body>nothing here</body></html>`)
	if got := ExtractTitle(doc); got != "" {
		t.Errorf("ExtractTitle = %q, want empty", got)
	}
}

func TestExtractTitleTruncatesLongTitles(t *testing.T) {
	doc := parseDoc(t, `<html><head><title>`+strings.Repeat("a", 300)+`</title></head></html>`)
	got := ExtractTitle(doc)
	if len([]rune(got)) != 121 { // 120 runes plus ellipsis
		t.Errorf("len = %d, want 121", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncated title missing ellipsis: %q", got)
	}
}
