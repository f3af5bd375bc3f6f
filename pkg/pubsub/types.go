package pubsub

// Subscriber is the capability a publisher notifies. Notify is called
// synchronously during publish and cannot fail in this design.
// Subscribers are distinguished by interface identity for unsubscribe, so
// the same value must be passed to Subscribe and Unsubscribe.
type Subscriber interface {
	// Name identifies the subscriber in acknowledgments.
	Name() string

	// Notify delivers a published article title to the subscriber.
	Notify(article string)
}

// SubscriptionID uniquely identifies a single subscription. Each call to
// Subscribe generates a new SubscriptionID, allowing the same subscriber to
// be registered more than once with independent lifecycles.
type SubscriptionID string
