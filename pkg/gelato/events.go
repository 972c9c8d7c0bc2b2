package gelato

// EventArgs carries no data.
type EventArgs struct{}

// CancelEventArgs is passed by pointer so handlers can veto the operation.
type CancelEventArgs struct {
	Cancel bool
}

// ItemEventArgs identifies the item an event refers to.
type ItemEventArgs struct {
	Item  Item
	Index int
}

// IndexChangedEventArgs describes a selection move.
type IndexChangedEventArgs struct {
	OldIndex int
	NewIndex int
}

// Handler receives the object that raised the event and its arguments.
type Handler[T any] func(sender any, args T)

// Subscription identifies a handler for Unsubscribe.
type Subscription int

type subscriber[T any] struct {
	id      Subscription
	handler Handler[T]
}

// Event is a synchronous multicast notification. Handlers run inline on the
// triggering call, in the order they subscribed. The zero value is ready to use.
type Event[T any] struct {
	subscribers []subscriber[T]
	nextID      Subscription
}

// Subscribe adds a handler and returns its subscription.
func (e *Event[T]) Subscribe(handler Handler[T]) Subscription {
	e.nextID++
	e.subscribers = append(e.subscribers, subscriber[T]{id: e.nextID, handler: handler})
	return e.nextID
}

// Unsubscribe removes a handler. Unknown subscriptions are ignored.
func (e *Event[T]) Unsubscribe(id Subscription) {
	for i, s := range e.subscribers {
		if s.id == id {
			e.subscribers = append(e.subscribers[:i], e.subscribers[i+1:]...)
			return
		}
	}
}

// Len returns the number of subscribed handlers.
func (e *Event[T]) Len() int {
	return len(e.subscribers)
}

// Invoke calls every handler with sender and args.
func (e *Event[T]) Invoke(sender any, args T) {
	// Handlers may unsubscribe while we iterate
	subscribers := make([]subscriber[T], len(e.subscribers))
	copy(subscribers, e.subscribers)

	for _, s := range subscribers {
		s.handler(sender, args)
	}
}
