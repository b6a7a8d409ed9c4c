package events

import (
	"reflect"
	"testing"
)

func TestHubPublishAndUnsubscribe(t *testing.T) {
	var hub Hub[int]
	var a, b []int
	stopA := hub.Subscribe(func(v int) { a = append(a, v) })
	hub.Subscribe(func(v int) { b = append(b, v) })

	hub.Publish(1)
	stopA()
	stopA()
	hub.Publish(2)

	if !reflect.DeepEqual(a, []int{1}) {
		t.Fatalf("a = %v, want [1]", a)
	}
	if !reflect.DeepEqual(b, []int{1, 2}) {
		t.Fatalf("b = %v, want [1 2]", b)
	}
	if hub.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", hub.Len())
	}
}

func TestHubUnsubscribeDuringPublish(t *testing.T) {
	var hub Hub[string]
	calls := 0
	var stop func()
	stop = hub.Subscribe(func(string) {
		calls++
		stop()
	})
	hub.Publish("x")
	hub.Publish("y")
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}
