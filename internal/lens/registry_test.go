package lens

import "testing"

func TestRegistry_PutGeneratesKey(t *testing.T) {
	r := NewRegistry()
	w := newTestWidget(t, DefaultConfig())

	key := r.Put("", w)
	if key == "" {
		t.Fatal("Put should generate a key for an empty one")
	}
	if err := r.With(key, func(*Widget) error { return nil }); err != nil {
		t.Errorf("generated key not registered: %v", err)
	}
}

func TestRegistry_InstancesAreIsolated(t *testing.T) {
	r := NewRegistry()
	r.Put("a", newTestWidget(t, DefaultConfig()))
	r.Put("b", newTestWidget(t, DefaultConfig()))

	err := r.With("a", func(w *Widget) error {
		w.Apply(Move{X: 10, Y: 10})
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	_ = r.With("b", func(w *Widget) error {
		if w.Hovering() {
			t.Error("widget b should not see widget a's pointer state")
		}
		return nil
	})
}

func TestRegistry_ReplaceResetsState(t *testing.T) {
	r := NewRegistry()
	r.Put("w", newTestWidget(t, DefaultConfig()))
	_ = r.With("w", func(w *Widget) error {
		w.Apply(Move{X: 10, Y: 10})
		return nil
	})

	// Host re-mounts the widget with a new image: pointer state starts over.
	r.Put("w", newTestWidget(t, DefaultConfig()))
	_ = r.With("w", func(w *Widget) error {
		if w.Hovering() {
			t.Error("replaced widget should start with fresh pointer state")
		}
		return nil
	})
}

func TestRegistry_UnknownKey(t *testing.T) {
	r := NewRegistry()
	if err := r.With("missing", func(*Widget) error { return nil }); err == nil {
		t.Error("With should fail for an unknown key")
	}
}

func TestRegistry_DeleteAndKeys(t *testing.T) {
	r := NewRegistry()
	r.Put("b", newTestWidget(t, DefaultConfig()))
	r.Put("a", newTestWidget(t, DefaultConfig()))

	keys := r.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("Keys: got %v, want [a b]", keys)
	}

	r.Delete("a")
	r.Delete("a") // deleting twice is fine
	if r.Len() != 1 {
		t.Errorf("Len after delete: got %d, want 1", r.Len())
	}
}
