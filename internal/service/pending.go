package service

import "sync"

// PendingStore keeps the URL a chat sent between the link message and the
// quality choice. One entry per chat; the map itself is mutex-guarded, but a
// second quality callback racing the first download for the same chat is an
// accepted limitation of the design.
type PendingStore struct {
	mu   sync.Mutex
	urls map[int64]string
}

func NewPendingStore() *PendingStore {
	return &PendingStore{urls: make(map[int64]string)}
}

// Set stores url as the chat's pending link, replacing any previous one.
func (p *PendingStore) Set(chatID int64, url string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.urls[chatID] = url
}

// Get returns the chat's pending link, if any.
func (p *PendingStore) Get(chatID int64) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	url, ok := p.urls[chatID]
	return url, ok
}

// Clear drops the chat's pending link. Called on every exit path of the
// quality handler so no chat is ever stuck awaiting a choice.
func (p *PendingStore) Clear(chatID int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.urls, chatID)
}
