package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestDefaultStyles(t *testing.T) {
	styles := DefaultStyles()
	if len(styles) != 3 {
		t.Fatalf("style count = %d, want 3", len(styles))
	}

	seen := map[string]bool{}
	for _, st := range styles {
		if st.Name == "" {
			t.Error("style with empty name")
		}
		if seen[st.Name] {
			t.Errorf("duplicate style name %q", st.Name)
		}
		seen[st.Name] = true

		if st.FontSize <= 0 {
			t.Errorf("style %q: font size %d", st.Name, st.FontSize)
		}
		if st.GhostAlpha == 0 {
			t.Errorf("style %q has no phosphor persistence", st.Name)
		}
		if st.ScanlineAlpha == 0 {
			t.Errorf("style %q has no scanlines", st.Name)
		}
		if (st.NoiseDensity > 0) != (st.NoiseAlpha > 0) {
			t.Errorf("style %q: noise density and alpha disagree", st.Name)
		}
		if (st.BandAlpha > 0) != (st.BandThickness > 0) {
			t.Errorf("style %q: banding alpha and thickness disagree", st.Name)
		}
	}
}

func TestGlowLayersShape(t *testing.T) {
	var inflates []int32
	var alphas []uint8
	glowLayers(6, 40, func(inflate int32, alpha uint8) {
		inflates = append(inflates, inflate)
		alphas = append(alphas, alpha)
	})

	if len(inflates) != 6 {
		t.Fatalf("layer count = %d, want 6", len(inflates))
	}
	for i := 1; i < len(inflates); i++ {
		if inflates[i] >= inflates[i-1] {
			t.Errorf("inflate not shrinking: %v", inflates)
			break
		}
		if alphas[i] < alphas[i-1] {
			t.Errorf("alpha not rising toward the solid shape: %v", alphas)
			break
		}
	}
	if alphas[0] != 0 || alphas[len(alphas)-1] != 200 {
		t.Errorf("alpha ramp = %v, want 0..200", alphas)
	}
}

func TestGlowLayersClampsAlpha(t *testing.T) {
	var max uint8
	glowLayers(8, 60, func(_ int32, alpha uint8) {
		if alpha > max {
			max = alpha
		}
	})
	if max != 255 {
		t.Errorf("max alpha = %d, want clamped 255", max)
	}
}

func TestBrighten(t *testing.T) {
	c := brighten(rl.NewColor(200, 100, 0, 255), 50)
	if c.R != 250 || c.G != 150 || c.B != 50 {
		t.Errorf("brighten = %v", c)
	}
	c = brighten(rl.NewColor(240, 240, 240, 255), 50)
	if c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("brighten should clamp, got %v", c)
	}
}
