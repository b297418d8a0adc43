package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Style is one immutable CRT theme: a palette plus effect
// intensities. A Session only carries an index into the style list,
// so themes never accumulate state between runs.
type Style struct {
	Name string

	ScanlineAlpha uint8
	GhostAlpha    uint8

	SnakeHead  rl.Color
	SnakeBody  rl.Color
	Background rl.Color
	Scanline   rl.Color
	Grid       rl.Color
	Bezel      rl.Color
	Border     rl.Color
	InnerGlow  rl.Color
	Text       rl.Color
	Food       rl.Color
	FoodGlow   rl.Color
	GameOver   rl.Color
	Restart    rl.Color

	FontFile string
	FontSize int32

	NoiseDensity  float32
	NoiseAlpha    uint8
	BandAlpha     uint8
	BandThickness int32
}

// LoadFont loads the style's font at the given size, falling back to
// the raylib built-in font when the file is unavailable.
func (s Style) LoadFont(size int32) rl.Font {
	font := rl.LoadFontEx(s.FontFile, size, nil)
	if !rl.IsFontReady(font) {
		return rl.GetFontDefault()
	}
	return font
}

// DefaultStyles returns the fixed theme rotation: green phosphor
// terminal, amber IBM mono, blue Commodore. The order is the order
// scores cycle through.
func DefaultStyles() []Style {
	return []Style{
		{
			Name:          "green-phosphor",
			ScanlineAlpha: 50,
			GhostAlpha:    20,
			SnakeHead:     rl.NewColor(0, 255, 0, 255),
			SnakeBody:     rl.NewColor(0, 180, 0, 255),
			Background:    rl.NewColor(8, 12, 8, 255),
			Scanline:      rl.NewColor(0, 0, 0, 255),
			Grid:          rl.NewColor(0, 40, 0, 255),
			Bezel:         rl.NewColor(20, 20, 20, 255),
			Border:        rl.NewColor(60, 60, 60, 255),
			InnerGlow:     rl.NewColor(0, 100, 0, 255),
			Text:          rl.NewColor(0, 255, 0, 255),
			Food:          rl.NewColor(255, 50, 50, 255),
			FoodGlow:      rl.NewColor(255, 100, 100, 255),
			GameOver:      rl.NewColor(255, 0, 0, 255),
			Restart:       rl.NewColor(255, 255, 0, 255),
			FontFile:      "fonts/courier_new.ttf",
			FontSize:      16,
		},
		{
			Name:          "amber-mono",
			ScanlineAlpha: 40,
			GhostAlpha:    30,
			SnakeHead:     rl.NewColor(255, 200, 0, 255),
			SnakeBody:     rl.NewColor(180, 120, 0, 255),
			Background:    rl.NewColor(20, 10, 0, 255),
			Scanline:      rl.NewColor(0, 0, 0, 255),
			Grid:          rl.NewColor(50, 20, 0, 255),
			Bezel:         rl.NewColor(30, 20, 10, 255),
			Border:        rl.NewColor(80, 50, 20, 255),
			InnerGlow:     rl.NewColor(200, 100, 0, 255),
			Text:          rl.NewColor(255, 200, 0, 255),
			Food:          rl.NewColor(255, 255, 0, 255),
			FoodGlow:      rl.NewColor(255, 255, 100, 255),
			GameOver:      rl.NewColor(255, 80, 0, 255),
			Restart:       rl.NewColor(255, 220, 0, 255),
			FontFile:      "fonts/courier_new.ttf",
			FontSize:      16,
			BandAlpha:     50,
			BandThickness: 2,
		},
		{
			Name:          "commodore-blue",
			ScanlineAlpha: 80,
			GhostAlpha:    15,
			SnakeHead:     rl.NewColor(100, 100, 255, 255),
			SnakeBody:     rl.NewColor(50, 50, 180, 255),
			Background:    rl.NewColor(0, 0, 50, 255),
			Scanline:      rl.NewColor(0, 0, 0, 255),
			Grid:          rl.NewColor(0, 0, 100, 255),
			Bezel:         rl.NewColor(10, 10, 30, 255),
			Border:        rl.NewColor(40, 40, 90, 255),
			InnerGlow:     rl.NewColor(0, 0, 200, 255),
			Text:          rl.NewColor(100, 100, 255, 255),
			Food:          rl.NewColor(255, 0, 255, 255),
			FoodGlow:      rl.NewColor(255, 100, 255, 255),
			GameOver:      rl.NewColor(255, 50, 50, 255),
			Restart:       rl.NewColor(200, 200, 255, 255),
			FontFile:      "fonts/courier_new.ttf",
			FontSize:      16,
			NoiseDensity:  0.005,
			NoiseAlpha:    50,
		},
	}
}
