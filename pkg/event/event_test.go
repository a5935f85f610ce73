// pkg/event/event_test.go
package event

import (
	"sync"
	"testing"
)

func TestBus_SubscribePublish(t *testing.T) {
	bus := NewEventBus()

	var received []Event
	bus.Subscribe(AgentSpawned, func(e Event) {
		received = append(received, e)
	})

	spawned := NewAgentEvent(AgentSpawned, nil, 7, "seek")
	bus.Publish(spawned)

	if len(received) != 1 {
		t.Fatalf("received %d events, expected 1", len(received))
	}
	agentEvent, ok := received[0].(*AgentEvent)
	if !ok {
		t.Fatalf("received %T, expected *AgentEvent", received[0])
	}
	if agentEvent.AgentID != 7 || agentEvent.Strategy != "seek" {
		t.Errorf("unexpected event payload: %+v", agentEvent)
	}
}

func TestBus_TypeIsolation(t *testing.T) {
	bus := NewEventBus()

	var spawnedCount, interceptCount int
	bus.Subscribe(AgentSpawned, func(Event) { spawnedCount++ })
	bus.Subscribe(TargetIntercepted, func(Event) { interceptCount++ })

	bus.Publish(NewAgentEvent(AgentSpawned, nil, 1, "wander"))
	bus.Publish(NewInterceptEvent(nil, 1, 2))
	bus.Publish(NewInterceptEvent(nil, 3, 4))

	if spawnedCount != 1 {
		t.Errorf("spawned handler ran %d times, expected 1", spawnedCount)
	}
	if interceptCount != 2 {
		t.Errorf("intercept handler ran %d times, expected 2", interceptCount)
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewEventBus()

	var first, second int
	sub := bus.Subscribe(AgentArrived, func(Event) { first++ })
	bus.Subscribe(AgentArrived, func(Event) { second++ })

	bus.Publish(NewAgentEvent(AgentArrived, nil, 1, "arrive"))
	bus.Unsubscribe(sub)
	bus.Publish(NewAgentEvent(AgentArrived, nil, 1, "arrive"))

	if first != 1 {
		t.Errorf("unsubscribed handler ran %d times, expected 1", first)
	}
	if second != 2 {
		t.Errorf("remaining handler ran %d times, expected 2", second)
	}
}

func TestBus_UnsubscribeUnknownIsNoop(t *testing.T) {
	bus := NewEventBus()
	bus.Unsubscribe(Subscription{eventType: AgentAligned, id: 42})
	bus.Publish(NewAgentEvent(AgentAligned, nil, 1, "align"))
}

func TestBus_ConcurrentPublish(t *testing.T) {
	bus := NewEventBus()

	var mu sync.Mutex
	count := 0
	bus.Subscribe(SimulationStarted, func(Event) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.Publish(&BaseEvent{EventType: SimulationStarted})
		}()
	}
	wg.Wait()

	if count != 10 {
		t.Errorf("handler ran %d times, expected 10", count)
	}
}
