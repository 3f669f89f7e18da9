package tgbot

import (
	"sync"

	"github.com/AVick23/ML-Manager/internal/mix"
)

// previews keeps the last /mix result per event so /fix freezes exactly
// what the admin saw.
type previews struct {
	mu sync.Mutex
	m  map[int64]mix.Result
}

func newPreviews() *previews {
	return &previews{
		m: make(map[int64]mix.Result),
	}
}

func (p *previews) Set(eventID int64, res mix.Result) {
	p.mu.Lock()
	p.m[eventID] = res
	p.mu.Unlock()
}

func (p *previews) Get(eventID int64) (mix.Result, bool) {
	p.mu.Lock()
	res, ok := p.m[eventID]
	p.mu.Unlock()
	return res, ok
}

func (p *previews) Delete(eventID int64) {
	p.mu.Lock()
	delete(p.m, eventID)
	p.mu.Unlock()
}
