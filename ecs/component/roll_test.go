package component

import (
	"math"
	"testing"
)

func TestRollExpired(t *testing.T) {
	tests := []struct {
		name string
		roll Roll
		now  float64
		want bool
	}{
		{"inactive", Roll{Duration: 0.5}, 10, false},
		{"just_started", Roll{Active: true, StartedAt: 1, Duration: 0.5}, 1, false},
		{"before_duration", Roll{Active: true, StartedAt: 1, Duration: 0.5}, 1.25, false},
		{"at_duration", Roll{Active: true, StartedAt: 1, Duration: 0.5}, 1.5, true},
		{"past_duration", Roll{Active: true, StartedAt: 1, Duration: 0.5}, 3, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.roll.Expired(tc.now); got != tc.want {
				t.Fatalf("Expired(%v) = %v, want %v", tc.now, got, tc.want)
			}
		})
	}
}

func TestCapsuleHeights(t *testing.T) {
	standing := StandingCapsule(1.8, 0.4)
	rolling := RollingCapsule(1.6, 0.4)

	if got := standing.Height(); math.Abs(got-1.8) > 1e-9 {
		t.Fatalf("standing height = %v, want 1.8", got)
	}
	if got := rolling.Height(); math.Abs(got-0.8) > 1e-9 {
		t.Fatalf("rolling height = %v, want 0.8", got)
	}
	if rolling.Height() >= standing.Height() {
		t.Fatalf("rolling capsule should be lower than standing")
	}
	if standing.AY-standing.Radius != 0 || rolling.AY-rolling.Radius != 0 {
		t.Fatalf("capsules should rest on the base")
	}

	body := PhysicsBody{Capsules: [postureCount]Capsule{standing, rolling}}
	if body.Capsule(PostureRolling) != rolling {
		t.Fatalf("expected rolling capsule")
	}
	if body.Capsule(Posture(7)) != standing {
		t.Fatalf("unknown posture should fall back to standing")
	}
}
