package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/lanerunner/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
		wantAlive    int
	}{
		{"single", 1, 0, 0},
		{"three_destroy_middle", 3, 1, 2},
		{"no_destroy", 2, -1, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("second DestroyEntity should return false")
				}
			}
			if got := len(Entities(w)); got != c.wantAlive {
				t.Fatalf("expected %d entities, got %d", c.wantAlive, got)
			}
		})
	}
}

func TestRecycledSlotRejectsStaleHandle(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatalf("recycled entity should carry a new generation")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle reported alive")
	}
	if Has(w, fresh, h.Kind()) {
		t.Fatalf("component leaked into recycled slot")
	}
	if err := Add(w, old, h.Kind(), intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestAddErrors(t *testing.T) {
	h := component.NewComponent[int]()

	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{"nil_world", func() error { return Add(nil, Entity(1), h.Kind(), intPtr(1)) }, component.ErrNilWorld},
		{"nil_value", func() error {
			w := NewWorld()
			return Add(w, CreateEntity(w), h.Kind(), nil)
		}, component.ErrNilComponent},
		{"zero_kind", func() error {
			w := NewWorld()
			return Add(w, CreateEntity(w), component.ComponentKind[int]{}, intPtr(1))
		}, component.ErrInvalidComponentKind},
		{"dead_entity", func() error {
			w := NewWorld()
			return Add(w, Entity(7), h.Kind(), intPtr(1))
		}, component.ErrEntityNotAlive},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.run(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestComponentsAndQueries(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	strs := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	_ = Add(w, e1, ints.Kind(), intPtr(10))
	_ = Add(w, e2, ints.Kind(), intPtr(20))
	_ = Add(w, e2, strs.Kind(), stringPtr("b"))
	_ = Add(w, e3, strs.Kind(), stringPtr("c"))

	if v, ok := Get(w, e1, ints.Kind()); !ok || *v != 10 {
		t.Fatalf("expected 10, got %v ok=%v", v, ok)
	}
	if Count(w, ints.Kind()) != 2 {
		t.Fatalf("expected 2 ints, got %d", Count(w, ints.Kind()))
	}

	var both []Entity
	ForEach2(w, ints.Kind(), strs.Kind(), func(e Entity, _ *int, _ *string) { both = append(both, e) })
	if len(both) != 1 || both[0] != e2 {
		t.Fatalf("expected only e2, got %v", both)
	}

	if !Remove(w, e2, ints.Kind()) {
		t.Fatalf("remove should succeed")
	}
	if Remove(w, e2, ints.Kind()) {
		t.Fatalf("second remove should fail")
	}
	// swap-remove keeps the remaining entry reachable
	if v, ok := Get(w, e1, ints.Kind()); !ok || *v != 10 {
		t.Fatalf("e1 lost its component after removing e2")
	}

	first, ok := First(w, strs.Kind())
	if !ok || (first != e2 && first != e3) {
		t.Fatalf("unexpected First result %v ok=%v", first, ok)
	}
}

func TestForEachAllowsMutation(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	for i := 0; i < 5; i++ {
		e := CreateEntity(w)
		_ = Add(w, e, h.Kind(), intPtr(i))
	}

	visited := 0
	ForEach(w, h.Kind(), func(e Entity, v *int) {
		visited++
		if *v%2 == 0 {
			DestroyEntity(w, e)
		}
	})
	if visited != 5 {
		t.Fatalf("expected 5 visits, got %d", visited)
	}
	if Count(w, h.Kind()) != 2 {
		t.Fatalf("expected 2 survivors, got %d", Count(w, h.Kind()))
	}
}

func TestForEach3(t *testing.T) {
	tests := []struct {
		name  string
		setup func(w *World, ka, kb, kc component.ComponentKind[int]) Entity
	}{
		{
			name: "intersection",
			setup: func(w *World, ka, kb, kc component.ComponentKind[int]) Entity {
				e1, e2, e3 := CreateEntity(w), CreateEntity(w), CreateEntity(w)
				_ = Add(w, e1, ka, intPtr(1))
				_ = Add(w, e2, ka, intPtr(2))
				_ = Add(w, e2, kb, intPtr(3))
				_ = Add(w, e2, kc, intPtr(4))
				_ = Add(w, e3, kc, intPtr(5))
				return e2
			},
		},
		{
			name: "ignores_dead_entities",
			setup: func(w *World, ka, kb, kc component.ComponentKind[int]) Entity {
				e := CreateEntity(w)
				_ = Add(w, e, ka, intPtr(1))
				_ = Add(w, e, kb, intPtr(2))
				_ = Add(w, e, kc, intPtr(3))
				DestroyEntity(w, e)
				return 0
			},
		},
		{
			name: "missing_store",
			setup: func(w *World, ka, _, _ component.ComponentKind[int]) Entity {
				_ = Add(w, CreateEntity(w), ka, intPtr(1))
				return 0
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld()
			ka := component.NewComponentKind[int]()
			kb := component.NewComponentKind[int]()
			kc := component.NewComponentKind[int]()
			want := tc.setup(w, ka, kb, kc)

			var res []Entity
			ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
			if want == 0 {
				if len(res) != 0 {
					t.Fatalf("expected empty result, got %v", res)
				}
				return
			}
			if len(res) != 1 || res[0] != want {
				t.Fatalf("expected only %v, got %v", want, res)
			}
		})
	}
}
