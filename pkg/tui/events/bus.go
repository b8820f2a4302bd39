package events

import tea "github.com/charmbracelet/bubbletea"

// Event wraps a message while it travels up the component tree.
type Event struct {
	Msg    tea.Msg
	Target ComponentID

	cancelable bool
	canceled   bool
	stopped    bool
}

// StopPropagation keeps the event from reaching ancestors of the node that is
// currently handling it. Remaining handlers on that node still run.
func (e *Event) StopPropagation() { e.stopped = true }

// Stopped reports whether propagation was stopped.
func (e *Event) Stopped() bool { return e.stopped }

// Cancel marks a cancelable event as canceled.
func (e *Event) Cancel() {
	if e.cancelable {
		e.canceled = true
	}
}

// Canceled reports whether a handler canceled the event.
func (e *Event) Canceled() bool { return e.canceled }

// Handler receives events dispatched on, or bubbling through, a bus node.
type Handler func(*Event)

// Bus is one node of the component tree. Events dispatched on a node are
// delivered synchronously to its handlers and then to every ancestor until a
// handler stops propagation.
type Bus struct {
	id       ComponentID
	parent   *Bus
	handlers []Handler
}

// NewBus creates a detached node for the given component.
func NewBus(id ComponentID) *Bus {
	return &Bus{id: id}
}

// ID returns the component the node belongs to.
func (b *Bus) ID() ComponentID {
	if b == nil {
		return ""
	}
	return b.id
}

// Mount attaches b below parent. A nil parent detaches it.
func (b *Bus) Mount(parent *Bus) {
	if b == nil || parent == b {
		return
	}
	b.parent = parent
}

// Parent returns the node b is mounted under.
func (b *Bus) Parent() *Bus {
	if b == nil {
		return nil
	}
	return b.parent
}

// Listen registers h on this node.
func (b *Bus) Listen(h Handler) {
	if b == nil || h == nil {
		return
	}
	b.handlers = append(b.handlers, h)
}

// Dispatch delivers msg to this node and bubbles it to the root. Delivery is
// complete when Dispatch returns. The returned event exposes whether a handler
// canceled it.
func (b *Bus) Dispatch(msg tea.Msg) *Event {
	e := &Event{Msg: msg, Target: b.ID(), cancelable: true}
	for node := b; node != nil; node = node.parent {
		handlers := append([]Handler(nil), node.handlers...)
		for _, h := range handlers {
			h(e)
		}
		if e.stopped {
			break
		}
	}
	return e
}
