package render

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Frame    uint64
	IsPaused bool

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Viewport is the globe area above the HUD rows
	ViewportWidth  int
	ViewportHeight int

	Projector *Projector
}
