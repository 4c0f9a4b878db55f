// Package presentation owns the SDL2 window the Saturn core's RGB888
// scanlines (internal/vdp2.Compositor's output) are presented through.
// Grounded on the teacher's gui/sdlimgui/platform.go (window/GL-context
// setup, SDL hints, display-mode query), adapted from an imgui-driven
// immediate-mode UI to a plain renderer+streaming-texture window: the core
// only needs to present a fixed-size pixel buffer per frame, not host a
// dockable tool UI, so sdl.Renderer/sdl.Texture replaces the teacher's raw
// GL + imgui-go stack (see DESIGN.md for why go-gl/gl and imgui-go/v4 are
// not wired here).
package presentation

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/saturncore/internal/logger"
)

// Window presents successive RGB888 frames of a fixed size.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	width    int
	height   int
}

// NewWindow opens an SDL window sized to width x height display pixels
// (independent of the emulated frame's own resolution, which is streamed
// and scaled into the window's renderer).
func NewWindow(title string, width, height int) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	sdl.SetHint(sdl.HINT_VIDEO_MINIMIZE_ON_FOCUS_LOSS, "0")

	mode, err := sdl.GetCurrentDisplayMode(0)
	if err == nil {
		logger.Logf("sdl", "refresh rate: %dHz", mode.RefreshRate)
	}

	win, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height), sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	ren, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	tex, err := ren.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, int32(width), int32(height))
	if err != nil {
		ren.Destroy()
		win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	return &Window{window: win, renderer: ren, texture: tex, width: width, height: height}, nil
}

// Present uploads one RGB888 (4-byte-per-pixel) frame and draws it to the
// window. frame must hold exactly width*height*4 bytes.
func (w *Window) Present(frame []byte) error {
	if len(frame) != w.width*w.height*4 {
		return fmt.Errorf("presentation: frame size %d does not match %dx%d window", len(frame), w.width, w.height)
	}
	if err := w.texture.Update(nil, frame, w.width*4); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	if err := w.renderer.Clear(); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	w.renderer.Present()
	return nil
}

// PollQuit reports whether an SDL quit event (window close, Ctrl-C from the
// window manager) has been posted since the last call.
func (w *Window) PollQuit() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			return true
		}
	}
	return false
}

// Close releases the window's SDL resources.
func (w *Window) Close() {
	w.texture.Destroy()
	w.renderer.Destroy()
	w.window.Destroy()
	sdl.Quit()
}
