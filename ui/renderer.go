// Package ui renders a game.Session as a simulated CRT monitor:
// glowing sprites composed into an offscreen frame, blended with a
// short history of past frames for phosphor ghosting, then covered
// with scanlines and a bezel.
package ui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"

	"crt-snake/game"
	"crt-snake/game/types"
)

const (
	fontSpacing   = 1
	titleFontSize = 48

	// Corner radius of the bezel and borders, in pixels.
	cornerRadius = 15

	// Rounded-segment equivalent of a UnitSize/4 corner radius.
	segmentRoundness = 0.5

	// The bright scanline sweeps the full screen height in about six
	// seconds: 100 px/s over 600 px.
	sweepSpeed = 100.0
)

// Renderer owns the GPU-side state of the compositor: per-style
// fonts and the ghost-frame arena. Draw never mutates game state.
type Renderer struct {
	styles     []Style
	fonts      []rl.Font
	titleFonts []rl.Font
	history    *frameHistory
	rng        *rand.Rand
}

// NewRenderer loads fonts and allocates the frame history. Must be
// called after the raylib window exists.
func NewRenderer(styles []Style, rng *rand.Rand) *Renderer {
	r := &Renderer{
		styles:  styles,
		rng:     rng,
		history: newFrameHistory(game.ScreenWidth, game.ScreenHeight),
	}
	for _, st := range styles {
		r.fonts = append(r.fonts, st.LoadFont(st.FontSize))
		r.titleFonts = append(r.titleFonts, st.LoadFont(titleFontSize))
	}
	return r
}

// ClearHistory drops the phosphor ghost frames, used on restart.
func (r *Renderer) ClearHistory() {
	r.history.clear()
}

// Unload frees GPU resources.
func (r *Renderer) Unload() {
	def := rl.GetFontDefault()
	for _, f := range r.fonts {
		if f.Texture.ID != def.Texture.ID {
			rl.UnloadFont(f)
		}
	}
	for _, f := range r.titleFonts {
		if f.Texture.ID != def.Texture.ID {
			rl.UnloadFont(f)
		}
	}
	r.history.unload()
}

// Draw composes and presents one frame of s.
//
// Order per frame, back to front: background artifacts, then either
// the running passes (grid, food, snake, HUD) or the game-over text,
// then ghost history under the current frame, scanlines, bezel.
func (r *Renderer) Draw(s *game.Session) {
	st := r.styles[s.StyleIndex]

	canvas := r.history.compose()
	rl.BeginTextureMode(canvas)
	rl.ClearBackground(st.Background)
	r.drawArtifacts(st)
	if s.Running {
		r.drawGrid(st)
		r.drawFood(s.Food, st)
		r.drawSnake(s.Snake, st)
		r.drawHUD(s, st)
	} else {
		r.drawGameOver(s, st)
	}
	rl.EndTextureMode()
	r.history.push()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	// Phosphor persistence: past frames fade linearly with age, the
	// most recent past frame closest to the style's ghost alpha.
	for age := r.history.pastCount() - 1; age >= 0; age-- {
		fade := float32(st.GhostAlpha) / 255 * (1 - float32(age)/ghostDepth)
		blitFrame(r.history.past(age), rl.Fade(rl.White, fade))
	}
	blitFrame(r.history.current(), rl.White)

	r.drawScanlines(st)
	r.drawBezel(st)
	rl.EndDrawing()
}

// blitFrame draws a composed frame to the backbuffer. The source
// height is negated because render textures are stored upside down.
func blitFrame(t rl.RenderTexture2D, tint rl.Color) {
	src := rl.NewRectangle(0, 0, float32(t.Texture.Width), -float32(t.Texture.Height))
	rl.DrawTextureRec(t.Texture, src, rl.NewVector2(0, 0), tint)
}

// cellOrigin maps a grid cell to its top-left pixel on screen.
func cellOrigin(p types.Point) (int32, int32) {
	return int32(game.BorderSize + p.X*game.UnitSize), int32(game.BorderSize + p.Y*game.UnitSize)
}

// drawArtifacts paints the per-style stochastic noise: translucent
// horizontal bands and chunky half-unit pixel noise. Driven by the
// shared RNG, not by game state.
func (r *Renderer) drawArtifacts(st Style) {
	if st.BandAlpha > 0 && st.BandThickness > 0 {
		col := withAlpha(st.Text, st.BandAlpha)
		for y := int32(game.BorderSize); y < game.ScreenHeight-game.BorderSize; y += game.UnitSize / 2 {
			if r.rng.Float64() < 0.1 {
				rl.DrawRectangle(game.BorderSize, y, game.ScreenWidth-2*game.BorderSize, st.BandThickness, col)
			}
		}
	}

	if st.NoiseDensity > 0 && st.NoiseAlpha > 0 {
		const px = game.UnitSize / 2
		col := withAlpha(st.Text, st.NoiseAlpha)
		for x := int32(game.BorderSize); x < game.ScreenWidth-game.BorderSize; x += px {
			for y := int32(game.BorderSize); y < game.ScreenHeight-game.BorderSize; y += px {
				if r.rng.Float64() < float64(st.NoiseDensity) {
					rl.DrawRectangle(x, y, px, px, col)
				}
			}
		}
	}
}

func (r *Renderer) drawGrid(st Style) {
	for x := int32(game.BorderSize); x < game.ScreenWidth-game.BorderSize; x += game.UnitSize {
		rl.DrawLine(x, game.BorderSize, x, game.ScreenHeight-game.BorderSize, st.Grid)
	}
	for y := int32(game.BorderSize); y < game.ScreenHeight-game.BorderSize; y += game.UnitSize {
		rl.DrawLine(game.BorderSize, y, game.ScreenWidth-game.BorderSize, y, st.Grid)
	}
}

func (r *Renderer) drawFood(food types.Point, st Style) {
	x, y := cellOrigin(food)
	cx, cy := x+game.UnitSize/2, y+game.UnitSize/2

	glowLayers(8, 25, func(inflate int32, alpha uint8) {
		rl.DrawCircle(cx, cy, float32(game.UnitSize+inflate*2)/2, withAlpha(st.FoodGlow, alpha))
	})
	rl.DrawCircle(cx, cy, game.UnitSize/2, st.Food)
	rl.DrawCircle(cx, cy, float32(game.UnitSize-8)/2, brighten(st.Food, 50))
}

func (r *Renderer) drawSnake(snake []types.Point, st Style) {
	for i, seg := range snake {
		x, y := cellOrigin(seg)
		if i == 0 {
			drawHead(x, y, st)
		} else {
			drawBody(x, y, st)
		}
	}
}

func drawHead(x, y int32, st Style) {
	glowLayers(6, 40, func(inflate int32, alpha uint8) {
		rec := rl.NewRectangle(float32(x-inflate), float32(y-inflate),
			float32(game.UnitSize+2*inflate), float32(game.UnitSize+2*inflate))
		rl.DrawRectangleRounded(rec, segmentRoundness, 6, withAlpha(st.SnakeHead, alpha))
	})
	rl.DrawRectangleRounded(rl.NewRectangle(float32(x), float32(y), game.UnitSize, game.UnitSize),
		segmentRoundness, 6, st.SnakeHead)

	// Eyes cut out in the background color.
	rl.DrawRectangle(x+3, y+3, 4, 4, st.Background)
	rl.DrawRectangle(x+13, y+3, 4, 4, st.Background)
}

func drawBody(x, y int32, st Style) {
	glowLayers(3, 60, func(inflate int32, alpha uint8) {
		rec := rl.NewRectangle(float32(x-inflate), float32(y-inflate),
			float32(game.UnitSize+2*inflate), float32(game.UnitSize+2*inflate))
		rl.DrawRectangleRounded(rec, segmentRoundness, 6, withAlpha(st.SnakeBody, alpha))
	})
	rl.DrawRectangleRounded(rl.NewRectangle(float32(x), float32(y), game.UnitSize, game.UnitSize),
		segmentRoundness, 6, st.SnakeBody)
	rl.DrawRectangle(x+2, y+2, game.UnitSize-4, game.UnitSize-4, withAlpha(st.SnakeBody, 100))
}

// drawGlowText renders text re-drawn at four diagonal offsets with
// rising opacity, then the solid glyphs, then a near-white core.
func drawGlowText(font rl.Font, text string, x, y, size float32, col rl.Color) {
	glowLayers(4, 50, func(off int32, alpha uint8) {
		ghost := withAlpha(col, alpha)
		o := float32(off)
		rl.DrawTextEx(font, text, rl.NewVector2(x-o, y-o), size, fontSpacing, ghost)
		rl.DrawTextEx(font, text, rl.NewVector2(x+o, y+o), size, fontSpacing, ghost)
		rl.DrawTextEx(font, text, rl.NewVector2(x-o, y+o), size, fontSpacing, ghost)
		rl.DrawTextEx(font, text, rl.NewVector2(x+o, y-o), size, fontSpacing, ghost)
	})
	rl.DrawTextEx(font, text, rl.NewVector2(x, y), size, fontSpacing, col)
	rl.DrawTextEx(font, text, rl.NewVector2(x, y), size, fontSpacing, rl.NewColor(255, 255, 255, 180))
}

// drawCenteredGlow draws glow text centered on (cx, cy).
func drawCenteredGlow(font rl.Font, text string, cx, cy, size float32, col rl.Color) {
	dim := rl.MeasureTextEx(font, text, size, fontSpacing)
	drawGlowText(font, text, cx-dim.X/2, cy-dim.Y/2, size, col)
}

func (r *Renderer) drawHUD(s *game.Session, st Style) {
	font := r.fonts[s.StyleIndex]
	size := float32(st.FontSize)

	score := fmt.Sprintf("SCORE: %d", s.Score)
	high := fmt.Sprintf("HIGH: %d", s.HighScore)
	elapsed := fmt.Sprintf("TIME: %ds", int(s.Elapsed().Seconds()))

	drawGlowText(font, score, game.BorderSize+10, game.BorderSize+30, size, st.Text)
	drawGlowText(font, high, game.BorderSize+10, game.BorderSize+60, size, st.Text)

	w := rl.MeasureTextEx(font, elapsed, size, fontSpacing).X
	drawGlowText(font, elapsed, game.ScreenWidth-game.BorderSize-w-10, game.BorderSize+30, size, st.Text)
}

func (r *Renderer) drawGameOver(s *game.Session, st Style) {
	font := r.fonts[s.StyleIndex]
	title := r.titleFonts[s.StyleIndex]
	size := float32(st.FontSize)

	const cx, cy = game.ScreenWidth / 2, game.ScreenHeight / 2

	drawCenteredGlow(title, "GAME OVER", cx, cy-100, titleFontSize, st.GameOver)
	drawCenteredGlow(font, fmt.Sprintf("FINAL SCORE: %d", s.Score), cx, cy+30, size, st.Text)
	drawCenteredGlow(font, fmt.Sprintf("HIGH SCORE: %d", s.HighScore), cx, cy+60, size, st.Text)

	// Restart prompt blinks at 1 Hz: visible on even half seconds of
	// the wall clock, independent of frame rate.
	if int(rl.GetTime()*2)%2 == 0 {
		drawCenteredGlow(font, "PRESS SPACE TO RESTART", cx, cy+120, size, st.Restart)
	}
}

// drawScanlines lays static lines over the final composition plus one
// brighter line sweeping the screen height on the wall clock.
func (r *Renderer) drawScanlines(st Style) {
	col := withAlpha(st.Scanline, st.ScanlineAlpha)
	for y := int32(0); y < game.ScreenHeight; y += 3 {
		rl.DrawLine(0, y, game.ScreenWidth, y, col)
	}

	sweepY := float32(math.Mod(rl.GetTime()*sweepSpeed, game.ScreenHeight))
	rl.DrawLineEx(rl.NewVector2(0, sweepY), rl.NewVector2(game.ScreenWidth, sweepY),
		2, withAlpha(st.Text, 30))
}

// drawBezel frames the playable area: rounded bezel bars on all four
// edges, an inner border outline, and a faint glow just inside the
// playable edge.
func (r *Renderer) drawBezel(st Style) {
	const w, h, b = game.ScreenWidth, game.ScreenHeight, game.BorderSize

	rl.DrawRectangleRounded(rl.NewRectangle(0, 0, w, b), roundness(cornerRadius, w, b), 8, st.Bezel)
	rl.DrawRectangleRounded(rl.NewRectangle(0, h-b, w, b), roundness(cornerRadius, w, b), 8, st.Bezel)
	rl.DrawRectangleRounded(rl.NewRectangle(0, 0, b, h), roundness(cornerRadius, b, h), 8, st.Bezel)
	rl.DrawRectangleRounded(rl.NewRectangle(w-b, 0, b, h), roundness(cornerRadius, b, h), 8, st.Bezel)

	inner := rl.NewRectangle(b-2, b-2, w-2*b+4, h-2*b+4)
	rl.DrawRectangleRoundedLines(inner, roundness(cornerRadius, inner.Width, inner.Height), 8, 4, st.Border)

	glow := rl.NewRectangle(b, b, w-2*b, h-2*b)
	rl.DrawRectangleRoundedLines(glow, roundness(10, glow.Width, glow.Height), 8, 2, withAlpha(st.InnerGlow, 30))
}

// roundness converts a pixel corner radius to raylib's relative
// roundness for a rectangle of the given size.
func roundness(radius, w, h float32) float32 {
	m := w
	if h < m {
		m = h
	}
	r := radius / (m / 2)
	if r > 1 {
		r = 1
	}
	return r
}
