package core

import (
	"testing"
	"time"
)

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first poll must tick")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, expected no tick")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a tick elapsed, expected no tick")
	}
	clock = clock.Add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full tick elapsed, expected tick")
	}
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("interval = %v", fs.Interval())
	}
}

func TestFixedStepDefaultsTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("interval = %v, want 1/60s", fs.Interval())
	}
}

func TestRegistry(t *testing.T) {
	called := false
	Register("test-sim", func(cfg map[string]string) (Sim, error) {
		called = true
		return nil, nil
	})
	defer delete(sims, "test-sim")

	if _, err := New("test-sim", nil); err != nil || !called {
		t.Fatalf("New(test-sim) err=%v called=%v", err, called)
	}
	if _, err := New("missing", nil); err == nil {
		t.Fatal("expected error for unknown sim")
	}
	Register("", nil)
	if _, ok := Sims()[""]; ok {
		t.Fatal("empty name must not register")
	}
}

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{IntParam("w", "Width", 8)}},
		{Name: "B", Params: []Parameter{BoolParam("perm", "Permutation", true)}},
	}}
	p, ok := snap.Lookup("perm")
	if !ok || p.Value != "true" || p.Type != ParamTypeBool {
		t.Fatalf("Lookup(perm) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("nope"); ok {
		t.Fatal("unexpected hit")
	}
	ctrl := ParameterControl{Min: 1, Max: 4, HasMin: true, HasMax: true}
	if ctrl.Clamp(0) != 1 || ctrl.Clamp(9) != 4 || ctrl.Clamp(3) != 3 {
		t.Fatal("Clamp out of bounds")
	}
}
