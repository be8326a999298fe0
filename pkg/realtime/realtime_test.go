package realtime

import (
	"testing"
	"time"
)

func TestBroadcastScopedToSite(t *testing.T) {
	hub := NewPreviewHub(4)

	acmeID, acmeCh := hub.Register("acme")
	defer hub.Unregister(acmeID)
	globexID, globexCh := hub.Register("globex")
	defer hub.Unregister(globexID)

	hub.Broadcast(SectionUpdated("acme", "sec-1", map[string]any{"title": "Hello"}))

	select {
	case event := <-acmeCh:
		if event.Type != EventSectionUpdated || event.SectionID != "sec-1" {
			t.Errorf("Unexpected event: %+v", event)
		}
		if event.At.IsZero() {
			t.Error("Expected event timestamp to be stamped")
		}
	case <-time.After(time.Second):
		t.Fatal("Expected acme listener to receive the event")
	}

	select {
	case event := <-globexCh:
		t.Errorf("Expected no event for globex, got %+v", event)
	default:
	}
}

func TestSlowListenerDropsEvents(t *testing.T) {
	hub := NewPreviewHub(1)

	id, ch := hub.Register("acme")
	defer hub.Unregister(id)

	hub.Broadcast(PaletteApplied("acme", map[string]any{"primary": "#111111"}))
	hub.Broadcast(PaletteApplied("acme", map[string]any{"primary": "#222222"}))

	first := <-ch
	if first.Payload["primary"] != "#111111" {
		t.Errorf("Expected first event kept, got %+v", first)
	}
	select {
	case extra := <-ch:
		t.Errorf("Expected second event dropped, got %+v", extra)
	default:
	}
}

func TestUnregisterClosesChannel(t *testing.T) {
	hub := NewPreviewHub(4)

	id, ch := hub.Register("acme")
	hub.Unregister(id)
	hub.Unregister(id) // second call is a no-op

	if _, open := <-ch; open {
		t.Error("Expected channel closed after unregister")
	}
	if hub.Size() != 0 {
		t.Errorf("Expected no listeners, got %d", hub.Size())
	}
}
