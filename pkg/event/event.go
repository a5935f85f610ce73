// pkg/event/event.go

// Package event provides the subscription bus the simulation harness uses
// to announce agent lifecycle and steering milestones.
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Common event types
const (
	AgentSpawned      Type = "agent_spawned"
	AgentArrived      Type = "agent_arrived"
	AgentAligned      Type = "agent_aligned"
	TargetIntercepted Type = "target_intercepted"
	SimulationStarted Type = "simulation_started"
	SimulationStopped Type = "simulation_stopped"
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

// Subscription identifies a registered handler so it can be removed later.
type Subscription struct {
	eventType Type
	id        uint64
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[Type][]subscriber
	nextID   uint64
}

type subscriber struct {
	id      uint64
	handler Handler
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscriber),
	}
}

// Subscribe registers a handler for a specific event type and returns a
// subscription usable with Unsubscribe.
func (b *Bus) Subscribe(eventType Type, handler Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{
		id:      b.nextID,
		handler: handler,
	})
	return Subscription{eventType: eventType, id: b.nextID}
}

// Unsubscribe removes a previously registered handler.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subscribers := b.handlers[sub.eventType]
	for i, s := range subscribers {
		if s.id == sub.id {
			b.handlers[sub.eventType] = append(subscribers[:i], subscribers[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subscribers := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, s := range subscribers {
		s.handler(event)
	}
}

// Specific event implementations

// AgentEvent contains information about agent lifecycle and steering
// milestones.
type AgentEvent struct {
	BaseEvent
	AgentID  uint64
	Strategy string
}

// NewAgentEvent creates a new agent event
func NewAgentEvent(eventType Type, source interface{}, agentID uint64, strategy string) *AgentEvent {
	return &AgentEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		AgentID:  agentID,
		Strategy: strategy,
	}
}

// InterceptEvent announces that a pursuing agent closed within its stop
// radius of its target.
type InterceptEvent struct {
	BaseEvent
	AgentID  uint64
	TargetID uint64
}

// NewInterceptEvent creates a new intercept event
func NewInterceptEvent(source interface{}, agentID, targetID uint64) *InterceptEvent {
	return &InterceptEvent{
		BaseEvent: BaseEvent{
			EventType: TargetIntercepted,
			Source:    source,
		},
		AgentID:  agentID,
		TargetID: targetID,
	}
}
