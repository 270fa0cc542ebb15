package bridge

// Event is a lifecycle notification emitted by the bridge. Consumers must not
// block in Publish; the bridge publishes outside its locks but on the calling
// goroutine.
type Event struct {
	// Name identifies the event: form_registered, form_unregistered,
	// editor_attached, editor_detached, reinit_saved, pending_ops_high_water.
	Name string
	// Form is the form the event concerns.
	Form string
	// Fields carries event-specific details (counts, error text).
	Fields map[string]any
}

// EventPublisher receives bridge lifecycle events.
type EventPublisher interface {
	Publish(evt Event)
}

// noopPublisher drops all events. It is the default when no publisher is
// configured.
type noopPublisher struct{}

func (noopPublisher) Publish(Event) {}
