package event

import "testing"

type recorder struct {
	got []EventType
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e.Type) }

func TestDispatcher(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(TowerPlaced, a)
	d.SubscribeAll(b, TowerPlaced, TowerSold)

	d.Dispatch(Event{Type: TowerPlaced})
	d.Dispatch(Event{Type: TowerSold})
	d.Dispatch(Event{Type: UnitLeaked})

	if len(a.got) != 1 || a.got[0] != TowerPlaced {
		t.Errorf("listener a: unexpected events %v", a.got)
	}
	if len(b.got) != 2 {
		t.Errorf("listener b: expected 2 events, got %v", b.got)
	}

	d.Unsubscribe(TowerPlaced, a)
	d.Dispatch(Event{Type: TowerPlaced})
	if len(a.got) != 1 {
		t.Errorf("unsubscribed listener still received %v", a.got)
	}
	if len(b.got) != 3 {
		t.Errorf("remaining listener missed an event: %v", b.got)
	}
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	var data interface{}
	d.Subscribe(UnitStalled, ListenerFunc(func(e Event) { data = e.Data }))
	d.Dispatch(Event{Type: UnitStalled, Data: 42})
	if data != 42 {
		t.Errorf("expected payload 42, got %v", data)
	}
}
