package memory

import (
	"context"
	"sync"

	"github.com/deptboard/board-service/internal/domain"
)

// Publisher is an in-process stand-in for the broker. Used in dev when no
// RABBIT_URL is configured, and in tests to observe published events.
type Publisher struct {
	mu     sync.Mutex
	events []domain.Announcement
}

func NewPublisher() *Publisher {
	return &Publisher{}
}

func (p *Publisher) PublishAnnouncementCreated(_ context.Context, a *domain.Announcement) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, *a)
	return nil
}

// Published returns a copy of everything published so far.
func (p *Publisher) Published() []domain.Announcement {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.Announcement(nil), p.events...)
}
