// Package pubsub implements a synchronous in-process publisher/subscriber
// mechanism. A publisher keeps an ordered subscriber registry and notifies
// every subscriber, in subscription order, each time an article is published.
package pubsub

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// registration pairs a subscriber with its subscription ID so the registry
// keeps insertion order while supporting removal by ID or by identity.
type registration struct {
	id         SubscriptionID
	subscriber Subscriber
}

// Publisher maintains the subscriber registry for one blog.
type Publisher struct {
	name   string
	out    io.Writer
	logger *zap.Logger

	mu            sync.Mutex
	subscriptions []registration
}

// NewPublisher creates a publisher writing acknowledgments to out.
func NewPublisher(name string, out io.Writer) *Publisher {
	return &Publisher{
		name:   name,
		out:    out,
		logger: zap.NewNop(),
	}
}

// WithLogger sets the diagnostic logger and returns the publisher.
func (p *Publisher) WithLogger(logger *zap.Logger) *Publisher {
	if logger != nil {
		p.logger = logger
	}
	return p
}

// Name returns the publisher's name.
func (p *Publisher) Name() string {
	return p.name
}

// Subscribe appends s to the registry and returns its subscription ID.
// There is no duplicate check; subscribing the same subscriber twice means
// it is notified twice per publish.
func (p *Publisher) Subscribe(s Subscriber) SubscriptionID {
	id := SubscriptionID(uuid.NewString())

	p.mu.Lock()
	p.subscriptions = append(p.subscriptions, registration{id: id, subscriber: s})
	p.mu.Unlock()

	p.logger.Debug("subscriber added",
		zap.String("subscriber", s.Name()),
		zap.String("subscription_id", string(id)))
	return id
}

// Unsubscribe removes the first registration whose subscriber is s.
// Unsubscribing a subscriber that was never added is a no-op.
func (p *Publisher) Unsubscribe(s Subscriber) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, reg := range p.subscriptions {
		if reg.subscriber == s {
			p.subscriptions = append(p.subscriptions[:i], p.subscriptions[i+1:]...)
			p.logger.Debug("subscriber removed", zap.String("subscriber", s.Name()))
			return
		}
	}
}

// UnsubscribeID removes the registration with the given subscription ID.
// Unknown IDs are a no-op.
func (p *Publisher) UnsubscribeID(id SubscriptionID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, reg := range p.subscriptions {
		if reg.id == id {
			p.subscriptions = append(p.subscriptions[:i], p.subscriptions[i+1:]...)
			return
		}
	}
}

// PublishArticle emits the publication acknowledgment and then notifies every
// currently-subscribed subscriber synchronously, in subscription order.
// The registry is snapshotted before notifying, so notifications reflect the
// subscriber set at the start of the publish; a subscriber removed mid-publish
// by another subscriber's Notify is still notified for this article.
func (p *Publisher) PublishArticle(title string) {
	fmt.Fprintf(p.out, "%s published article: %s\n", p.name, title)

	p.mu.Lock()
	snapshot := make([]Subscriber, len(p.subscriptions))
	for i, reg := range p.subscriptions {
		snapshot[i] = reg.subscriber
	}
	p.mu.Unlock()

	for _, s := range snapshot {
		s.Notify(title)
	}

	p.logger.Debug("article published",
		zap.String("title", title),
		zap.Int("notified", len(snapshot)))
}

// Subscribers returns the current number of registrations.
func (p *Publisher) Subscribers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.subscriptions)
}
