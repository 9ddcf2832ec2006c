package component

import "testing"

func TestLaneShiftClamps(t *testing.T) {
	tests := []struct {
		name      string
		start     LaneIndex
		shifts    string
		want      LaneIndex
		wantMoves int
	}{
		{"right_right_from_middle", LaneMiddle, "RR", LaneRight, 1},
		{"left_left_from_middle", LaneMiddle, "LL", LaneLeft, 1},
		{"across_and_back", LaneLeft, "RRLL", LaneLeft, 4},
		{"press_against_right_edge", LaneRight, "RRR", LaneRight, 0},
		{"no_input", LaneMiddle, "", LaneMiddle, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lane := Lane{Index: tc.start, Spacing: 2.5}
			moves := 0
			for _, s := range tc.shifts {
				var moved bool
				if s == 'L' {
					moved = lane.ShiftLeft()
				} else {
					moved = lane.ShiftRight()
				}
				if moved {
					moves++
				}
				if !lane.Index.Valid() {
					t.Fatalf("lane index left range: %d", lane.Index)
				}
			}
			if lane.Index != tc.want {
				t.Fatalf("expected lane %s, got %s", tc.want, lane.Index)
			}
			if moves != tc.wantMoves {
				t.Fatalf("expected %d lane changes, got %d", tc.wantMoves, moves)
			}
		})
	}
}

func TestTargetLateralOffsetFollowsSpacing(t *testing.T) {
	lane := Lane{Index: LaneRight, Spacing: 2}
	if got := lane.TargetLateralOffset(); got != 2 {
		t.Fatalf("expected 2, got %v", got)
	}
	lane.Spacing = 3
	if got := lane.TargetLateralOffset(); got != 3 {
		t.Fatalf("expected offset to follow new spacing, got %v", got)
	}
	lane.Index = LaneLeft
	if got := lane.TargetLateralOffset(); got != -3 {
		t.Fatalf("expected -3, got %v", got)
	}
	lane.Index = LaneMiddle
	if got := lane.TargetLateralOffset(); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}
