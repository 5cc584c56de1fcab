package lifecycle

import "testing"

func TestNextStateExamples(t *testing.T) {
	cases := []struct {
		name   string
		state  State
		counts NeighborCounts
		want   State
	}{
		{"young eaten by two adults", Young, NeighborCounts{Adult: 2}, Off},
		{"young matures with one adult", Young, NeighborCounts{Adult: 1, Young: 5}, Adult},
		{"adult reproduces with two young", Adult, NeighborCounts{Young: 2}, Young},
		{"adult ages with one young", Adult, NeighborCounts{Young: 1, Adult: 7}, Elder},
		{"elder dies when crowded", Elder, NeighborCounts{Elder: 4}, Off},
		{"elder rejuvenates at three elders", Elder, NeighborCounts{Elder: 3}, Young},
		{"off regenerates at balance", Off, NeighborCounts{Adult: 1, Young: 1}, Young},
		{"off regenerates with two young", Off, NeighborCounts{Young: 2, Elder: 6}, Young},
		{"off stays off with one adult", Off, NeighborCounts{Adult: 1}, Off},
		{"off stays off above balance", Off, NeighborCounts{Adult: 2, Young: 1}, Off},
		{"unknown collapses to off", State(9), NeighborCounts{Young: 2}, Off},
	}
	for _, tc := range cases {
		if got := NextState(tc.state, tc.counts); got != tc.want {
			t.Fatalf("%s: NextState(%v, %+v) = %v, expected %v", tc.name, tc.state, tc.counts, got, tc.want)
		}
	}
}

func TestNextStateTotalOverNeighborhoods(t *testing.T) {
	for y := 0; y <= 8; y++ {
		for a := 0; a+y <= 8; a++ {
			for e := 0; e+a+y <= 8; e++ {
				counts := NeighborCounts{Young: y, Adult: a, Elder: e}

				want := Adult
				if a > 1 {
					want = Off
				}
				if got := NextState(Young, counts); got != want {
					t.Fatalf("young %+v: got %v, expected %v", counts, got, want)
				}

				want = Elder
				if y >= 2 {
					want = Young
				}
				if got := NextState(Adult, counts); got != want {
					t.Fatalf("adult %+v: got %v, expected %v", counts, got, want)
				}

				want = Young
				if e > 3 {
					want = Off
				}
				if got := NextState(Elder, counts); got != want {
					t.Fatalf("elder %+v: got %v, expected %v", counts, got, want)
				}

				want = Off
				if a+y == 2 {
					want = Young
				}
				if got := NextState(Off, counts); got != want {
					t.Fatalf("off %+v: got %v, expected %v", counts, got, want)
				}
			}
		}
	}
}
