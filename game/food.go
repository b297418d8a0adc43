package game

import "crt-snake/game/types"

// spawnAttempts bounds random food placement before falling back to a
// scan; pure reject-and-resample would spin on a nearly full board.
const spawnAttempts = 128

// spawnFood places the food on a random cell not covered by the snake.
func (s *Session) spawnFood() {
	for i := 0; i < spawnAttempts; i++ {
		p := types.Point{
			X: s.rng.Intn(PlayField.Width),
			Y: s.rng.Intn(PlayField.Height),
		}
		if !s.occupied(p) {
			s.Food = p
			return
		}
	}

	// Board is nearly full: take the first free cell in row-major
	// order. With no free cell at all the food stays where it was.
	for y := 0; y < PlayField.Height; y++ {
		for x := 0; x < PlayField.Width; x++ {
			p := types.Point{X: x, Y: y}
			if !s.occupied(p) {
				s.Food = p
				return
			}
		}
	}
}
