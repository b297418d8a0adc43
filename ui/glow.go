package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// glowLayers invokes draw for n expanding translucent copies of a
// shape, outermost first. Layer i (counting n down to 1) is inflated
// by i pixels and gets alpha (n-i)*step, so opacity rises toward the
// solid shape the caller draws afterwards. Food, snake segments and
// HUD text all share this routine.
func glowLayers(n, step int32, draw func(inflate int32, alpha uint8)) {
	for i := n; i > 0; i-- {
		a := (n - i) * step
		if a > 255 {
			a = 255
		}
		draw(i, uint8(a))
	}
}

// withAlpha returns c with its alpha channel replaced.
func withAlpha(c rl.Color, a uint8) rl.Color {
	c.A = a
	return c
}

// brighten lifts each color channel by amt, clamped.
func brighten(c rl.Color, amt int32) rl.Color {
	lift := func(v uint8) uint8 {
		n := int32(v) + amt
		if n > 255 {
			n = 255
		}
		return uint8(n)
	}
	return rl.NewColor(lift(c.R), lift(c.G), lift(c.B), c.A)
}
