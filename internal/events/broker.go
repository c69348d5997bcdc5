// Package events fans out page change notifications to subscribers.
package events

import (
	"sync"
	"time"

	"github.com/ArowuTest/community-center-backend/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const subscriberBuffer = 8

type subscriber struct {
	pages map[string]struct{} // empty means every page
}

// Broker delivers Change notifications. Slow subscribers drop messages
// rather than block publishers; a dropped token only delays a refresh.
type Broker struct {
	logger *zap.Logger

	mu     sync.Mutex
	subs   map[chan models.Change]subscriber
	hooks  []func(models.Change)
	closed bool
}

// NewBroker creates a Broker
func NewBroker(logger *zap.Logger) *Broker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Broker{logger: logger, subs: make(map[chan models.Change]subscriber)}
}

// OnChange registers fn to run synchronously for every published change.
func (b *Broker) OnChange(fn func(models.Change)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hooks = append(b.hooks, fn)
}

// Publish notifies subscribers that page changed and returns the change.
func (b *Broker) Publish(page string) models.Change {
	change := models.Change{Page: page, Token: uuid.NewString(), At: time.Now().UTC()}

	b.mu.Lock()
	hooks := append([]func(models.Change){}, b.hooks...)
	if !b.closed {
		for ch, sub := range b.subs {
			if !sub.wants(page) {
				continue
			}
			select {
			case ch <- change:
			default:
				b.logger.Warn("Dropping change for slow subscriber", zap.String("page", page))
			}
		}
	}
	b.mu.Unlock()

	for _, fn := range hooks {
		fn(change)
	}
	return change
}

// Subscribe returns a channel receiving changes for pages (all pages when
// none are given) and a cancel func that closes it.
func (b *Broker) Subscribe(pages ...string) (<-chan models.Change, func()) {
	ch := make(chan models.Change, subscriberBuffer)
	sub := subscriber{pages: make(map[string]struct{}, len(pages))}
	for _, p := range pages {
		sub.pages[p] = struct{}{}
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	b.subs[ch] = sub
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if _, ok := b.subs[ch]; ok {
				delete(b.subs, ch)
				close(ch)
			}
		})
	}
}

// Close closes every subscriber channel.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for ch := range b.subs {
		close(ch)
		delete(b.subs, ch)
	}
}

func (s subscriber) wants(page string) bool {
	if len(s.pages) == 0 {
		return true
	}
	_, ok := s.pages[page]
	return ok
}
