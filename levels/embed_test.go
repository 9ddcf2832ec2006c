package levels

import (
	"errors"
	"testing"
)

func TestEmbeddedCoursesParse(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("no embedded courses")
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			c, err := LoadCourse(name)
			if err != nil {
				t.Fatalf("load %s: %v", name, err)
			}
			for i := 1; i < len(c.Items); i++ {
				if c.Items[i].Z < c.Items[i-1].Z {
					t.Fatalf("items not sorted by z at %d", i)
				}
			}
		})
	}
}

func TestParseCourseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero_length", `{"name":"x","length":0,"items":[]}`},
		{"missing_prefab", `{"name":"x","length":10,"items":[{"z":1,"lanes":[1]}]}`},
		{"z_past_end", `{"name":"x","length":10,"items":[{"prefab":"coin.yaml","z":10,"lanes":[1]}]}`},
		{"no_lanes", `{"name":"x","length":10,"items":[{"prefab":"coin.yaml","z":1}]}`},
		{"bad_lane", `{"name":"x","length":10,"items":[{"prefab":"coin.yaml","z":1,"lanes":[3]}]}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCourse([]byte(tc.data))
			if !errors.Is(err, ErrInvalidCourse) {
				t.Fatalf("expected ErrInvalidCourse, got %v", err)
			}
		})
	}
}

func TestParseCourseSortsItems(t *testing.T) {
	c, err := ParseCourse([]byte(`{"name":"x","length":10,"items":[
		{"prefab":"b","z":7,"lanes":[0]},
		{"prefab":"a","z":2,"lanes":[2]}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	if c.Items[0].Prefab != "a" || c.Items[1].Prefab != "b" {
		t.Fatalf("unexpected order %+v", c.Items)
	}
}
