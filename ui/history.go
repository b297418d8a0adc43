package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// ghostDepth is how many past frames persist as phosphor ghosts.
const ghostDepth = 5

// frameHistory is a fixed arena of render textures addressed by age:
// one slot for the frame being composed plus ghostDepth past frames.
// Slots are recycled oldest-first; nothing is allocated after startup.
type frameHistory struct {
	slots  []rl.RenderTexture2D
	newest int
	count  int
}

// newFrameHistory allocates the arena. Requires a live window.
func newFrameHistory(w, h int32) *frameHistory {
	fh := &frameHistory{
		slots:  make([]rl.RenderTexture2D, ghostDepth+1),
		newest: -1,
	}
	for i := range fh.slots {
		fh.slots[i] = rl.LoadRenderTexture(w, h)
	}
	return fh
}

// compose returns the slot the next frame should be drawn into.
func (h *frameHistory) compose() rl.RenderTexture2D {
	return h.slots[(h.newest+1)%len(h.slots)]
}

// push marks the compose slot as the current frame, aging the rest.
func (h *frameHistory) push() {
	h.newest = (h.newest + 1) % len(h.slots)
	if h.count < len(h.slots) {
		h.count++
	}
}

// current returns the most recently pushed frame.
func (h *frameHistory) current() rl.RenderTexture2D {
	return h.slots[h.newest]
}

// past returns the frame age steps behind the current one, age 0
// being the most recent past frame.
func (h *frameHistory) past(age int) rl.RenderTexture2D {
	idx := h.newest - 1 - age
	idx = ((idx % len(h.slots)) + len(h.slots)) % len(h.slots)
	return h.slots[idx]
}

// pastCount is the number of ghost frames currently available.
func (h *frameHistory) pastCount() int {
	if h.count == 0 {
		return 0
	}
	n := h.count - 1
	if n > ghostDepth {
		n = ghostDepth
	}
	return n
}

// clear drops all history without freeing the textures, used on
// restart so the previous run does not ghost into the new one.
func (h *frameHistory) clear() {
	h.newest = -1
	h.count = 0
}

// unload frees the GPU textures.
func (h *frameHistory) unload() {
	for _, s := range h.slots {
		rl.UnloadRenderTexture(s)
	}
}
