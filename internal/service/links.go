package service

import (
	"net/url"
	"strings"
)

// LinkService builds public download links under the configured base address.
// The files themselves are served by an external static server (nginx) from
// the download root; the base address is validated as required configuration
// at startup.
type LinkService struct {
	base string
}

func NewLinkService(publicBaseURL string) *LinkService {
	return &LinkService{base: strings.TrimRight(publicBaseURL, "/")}
}

// Publish maps a stored file name to its publicly fetchable URL.
func (l *LinkService) Publish(fileName string) string {
	return l.base + "/downloads/" + url.PathEscape(fileName)
}
