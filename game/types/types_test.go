package types

import "testing"

func TestOppositeIsInvolution(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("%v.Opposite().Opposite() = %v, want %v", d, got, d)
		}
	}
}

func TestDeltaIsUnitStep(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		dl := d.Delta()
		if abs(dl.X)+abs(dl.Y) != 1 {
			t.Errorf("%v.Delta() = %v, not a unit step", d, dl)
		}
		if opp := d.Opposite().Delta(); opp.X != -dl.X || opp.Y != -dl.Y {
			t.Errorf("%v and its opposite do not cancel", d)
		}
	}
}

func TestGridContains(t *testing.T) {
	g := Grid{Width: 4, Height: 3}

	inside := []Point{{0, 0}, {3, 2}, {1, 1}}
	for _, p := range inside {
		if !g.Contains(p) {
			t.Errorf("Contains(%v) = false, want true", p)
		}
	}

	outside := []Point{{-1, 0}, {0, -1}, {4, 0}, {0, 3}}
	for _, p := range outside {
		if g.Contains(p) {
			t.Errorf("Contains(%v) = true, want false", p)
		}
	}

	if g.Cells() != 12 {
		t.Errorf("Cells() = %d, want 12", g.Cells())
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
