// Retro snake on a simulated CRT monitor: scanlines, phosphor
// ghosting, glow, noise artifacts and score-driven color themes.
package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"

	"crt-snake/game"
	"crt-snake/game/types"
	"crt-snake/ui"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "crt-snake",
	})

	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))

	rl.InitWindow(game.ScreenWidth, game.ScreenHeight, "Retro Snake Game")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	styles := ui.DefaultStyles()
	session := game.NewSession(len(styles), rng)
	renderer := ui.NewRenderer(styles, rng)
	defer renderer.Unload()

	stats := game.NewRunStats()
	logger.Info("session started", "session", session.ID)

	lastTick := time.Now()
	for !rl.WindowShouldClose() {
		handleInput(session, renderer, logger)

		// Logic ticks on its own 100 ms schedule, independent of the
		// 60 FPS draw rate below.
		if time.Since(lastTick) >= game.TickInterval {
			wasRunning := session.Running
			session.Tick()
			if wasRunning && !session.Running {
				stats.Record(session.Score)
				logger.Info("game over", "session", session.ID,
					"score", session.Score, "high", session.HighScore)
			}
			lastTick = time.Now()
		}

		renderer.Draw(session)
	}

	logger.Info("exiting", "games", stats.Games, "best", stats.Best,
		"mean", stats.Mean(), "uptime", stats.Uptime().Round(time.Second))
}

func handleInput(s *game.Session, r *ui.Renderer, logger *log.Logger) {
	switch {
	case rl.IsKeyPressed(rl.KeyUp):
		s.SetDirection(types.DirUp)
	case rl.IsKeyPressed(rl.KeyDown):
		s.SetDirection(types.DirDown)
	case rl.IsKeyPressed(rl.KeyLeft):
		s.SetDirection(types.DirLeft)
	case rl.IsKeyPressed(rl.KeyRight):
		s.SetDirection(types.DirRight)
	case rl.IsKeyPressed(rl.KeySpace):
		if !s.Running {
			s.Reset()
			r.ClearHistory()
			logger.Info("session restarted", "session", s.ID, "high", s.HighScore)
		}
	}
}
