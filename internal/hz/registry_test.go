package hz

import "testing"

func TestRegistryLazyCreation(t *testing.T) {
	var r Registry
	if r.Tracker(Keyboard) != nil {
		t.Fatalf("expected no tracker before first event")
	}
	if _, ok := r.Record(Keyboard, 100); !ok {
		t.Fatalf("expected first keyboard event to be recorded")
	}
	if r.Tracker(Keyboard) == nil {
		t.Fatalf("expected tracker after first event")
	}
}

func TestRegistryCrossClassIndependence(t *testing.T) {
	var r Registry
	r.Record(Keyboard, 0)
	r.Record(Mouse, 5)
	r.Record(Keyboard, 100)
	r.Record(Mouse, 13)
	r.Record(Keyboard, 200)

	kb := r.Tracker(Keyboard)
	ms := r.Tracker(Mouse)
	if kb.Len() != 3 {
		t.Fatalf("expected 3 keyboard samples, got %d", kb.Len())
	}
	if ms.Len() != 2 {
		t.Fatalf("expected 2 mouse samples, got %d", ms.Len())
	}
	kbFreqs := kb.Frequencies()
	if kbFreqs[1] != 10.0 || kbFreqs[2] != 10.0 {
		t.Fatalf("mouse events leaked into keyboard window: %v", kbFreqs)
	}
	if got := ms.Frequencies()[1]; got != 125.0 {
		t.Fatalf("expected 125Hz for 8ms mouse delta, got %v", got)
	}
}

func TestRegistryIgnoresUnknownClass(t *testing.T) {
	var r Registry
	if _, ok := r.Record(DeviceClass(99), 10); ok {
		t.Fatalf("expected unknown class to be ignored")
	}
	if classes := r.Classes(); len(classes) != 0 {
		t.Fatalf("expected no classes, got %v", classes)
	}
}

func TestRegistryClassesOrder(t *testing.T) {
	var r Registry
	r.Record(Mouse, 1)
	r.Record(Keyboard, 1)
	classes := r.Classes()
	if len(classes) != 2 || classes[0] != Keyboard || classes[1] != Mouse {
		t.Fatalf("expected stable [Keyboard Mouse] order, got %v", classes)
	}
}
