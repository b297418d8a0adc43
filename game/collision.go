package game

import "crt-snake/game/types"

// hitWall reports whether p lies outside the playable bounds.
func (s *Session) hitWall(p types.Point) bool {
	return !PlayField.Contains(p)
}

// hitSelf reports whether the head overlaps any other segment.
func (s *Session) hitSelf() bool {
	head := s.Snake[0]
	for _, seg := range s.Snake[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// occupied reports whether any snake segment covers p.
func (s *Session) occupied(p types.Point) bool {
	for _, seg := range s.Snake {
		if seg == p {
			return true
		}
	}
	return false
}
