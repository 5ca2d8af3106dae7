package renderers

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/flight-globe/parameter"
	"github.com/lixenwraith/flight-globe/render"
)

// Status is the HUD snapshot of application state
type Status struct {
	Mode     string
	Origin   string
	Dest     string
	Active   int
	Markers  int
	Launched uint64
	Arrived  uint64
	Zoom     float64
	Paused   bool
	Muted    bool

	PromptOpen  bool
	PromptLabel string
	PromptText  string

	Message string

	Help      bool
	HelpLines []string
}

// StatusSource supplies the HUD snapshot each frame
type StatusSource interface {
	Status() Status
}

const hudSeparator = " │ "

// HUDRenderer draws the status line and the prompt/message line below the globe
type HUDRenderer struct {
	source StatusSource
	fg     render.RGB
	accent render.RGB
	bg     render.RGB
}

// NewHUDRenderer creates the HUD layer
func NewHUDRenderer(source StatusSource) *HUDRenderer {
	return &HUDRenderer{
		source: source,
		fg:     render.Hex(parameter.ColorHUD),
		accent: render.Hex(parameter.ColorHUDAccent),
		bg:     render.RGB{R: 16, G: 18, B: 28},
	}
}

// StatusLine formats the first HUD row
func StatusLine(s Status) string {
	var b strings.Builder
	fmt.Fprintf(&b, " %s", strings.ToUpper(s.Mode))
	switch {
	case s.Origin != "" && s.Dest != "":
		fmt.Fprintf(&b, " %s → %s", s.Origin, s.Dest)
	case s.Origin != "":
		fmt.Fprintf(&b, " from %s", s.Origin)
	case s.Dest != "":
		fmt.Fprintf(&b, " to %s", s.Dest)
	}
	fmt.Fprintf(&b, "%sflights %d%smarkers %d%slaunched %d%sarrived %d%szoom %.2f",
		hudSeparator, s.Active,
		hudSeparator, s.Markers,
		hudSeparator, s.Launched,
		hudSeparator, s.Arrived,
		hudSeparator, s.Zoom)
	if s.Muted {
		b.WriteString(hudSeparator + "MUTED")
	}
	if s.Paused {
		b.WriteString(hudSeparator + "PAUSED")
	}
	return b.String()
}

// Render fills the bottom rows; nothing is drawn on screens shorter than the HUD
func (h *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.ScreenHeight < parameter.HUDRows {
		return
	}
	s := h.source.Status()
	row := ctx.ScreenHeight - parameter.HUDRows

	buf.FillRow(0, row, h.bg)
	buf.DrawText(0, row, StatusLine(s), h.fg, h.bg)

	row++
	buf.FillRow(0, row, h.bg)
	switch {
	case s.PromptOpen:
		x := buf.DrawText(0, row, " "+s.PromptLabel+" ", h.accent, h.bg)
		x = buf.DrawText(x, row, s.PromptText, h.fg, h.bg)
		buf.DrawText(x, row, "█", h.accent, h.bg)
	case s.Message != "":
		buf.DrawText(0, row, " "+s.Message, h.accent, h.bg)
	default:
		buf.DrawText(0, row, " ? help  q quit  space pause  0-4 mode  / search  f launch", h.fg, h.bg)
	}
}

// HelpRenderer draws the key binding overlay while help is on
type HelpRenderer struct {
	source StatusSource
	fg     render.RGB
	title  render.RGB
	bg     render.RGB
}

// NewHelpRenderer creates the help overlay
func NewHelpRenderer(source StatusSource) *HelpRenderer {
	return &HelpRenderer{
		source: source,
		fg:     render.Hex(parameter.ColorHUD),
		title:  render.Hex(parameter.ColorHUDAccent),
		bg:     render.RGB{R: 10, G: 12, B: 20},
	}
}

// IsVisible implements render.VisibilityToggle
func (h *HelpRenderer) IsVisible() bool {
	return h.source.Status().Help
}

// Render draws a centered box, lines that do not fit are cut
func (h *HelpRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	lines := h.source.Status().HelpLines
	const title = "Key bindings"
	width := runewidth.StringWidth(title)
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}
	width += 4
	height := len(lines) + 3

	maxH := ctx.ScreenHeight - parameter.HUDRows
	if width > ctx.ScreenWidth || maxH < 4 {
		return
	}
	height = min(height, maxH)
	x0 := (ctx.ScreenWidth - width) / 2
	y0 := (maxH - height) / 2

	for y := y0; y < y0+height; y++ {
		for x := x0; x < x0+width; x++ {
			buf.SetWithBg(x, y, ' ', h.fg, h.bg)
		}
	}
	buf.DrawText(x0+2, y0+1, title, h.title, h.bg)
	for i, l := range lines {
		y := y0 + 2 + i
		if y >= y0+height-1 {
			break
		}
		buf.DrawText(x0+2, y, l, h.fg, h.bg)
	}
}
