package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Simulation lifecycle and per-tick event types
const (
	SimulationStarted Type = "simulation_started"
	StepCompleted     Type = "step_completed"
	BodyGrounded      Type = "body_grounded"
	SimulationEnded   Type = "simulation_ended"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, handler := range handlers {
		handler(event)
	}
}

// StepEvent carries the state of the body after one simulation tick.
type StepEvent struct {
	BaseEvent
	Tick    uint64
	Elapsed float64
	X       float64
	Y       float64
}

// NewStepEvent creates a per-tick event.
func NewStepEvent(source interface{}, tick uint64, elapsed, x, y float64) *StepEvent {
	return &StepEvent{
		BaseEvent: BaseEvent{
			EventType: StepCompleted,
			Source:    source,
		},
		Tick:    tick,
		Elapsed: elapsed,
		X:       x,
		Y:       y,
	}
}

// LifecycleEvent marks the start or end of a simulation run.
type LifecycleEvent struct {
	BaseEvent
	RunID   string
	Elapsed float64
}

// NewLifecycleEvent creates a simulation lifecycle event.
func NewLifecycleEvent(eventType Type, source interface{}, runID string, elapsed float64) *LifecycleEvent {
	return &LifecycleEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		RunID:   runID,
		Elapsed: elapsed,
	}
}
