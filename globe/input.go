package globe

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flight-globe/flight"
	"github.com/lixenwraith/flight-globe/input"
	"github.com/lixenwraith/flight-globe/parameter"
)

// ErrBadRoute is returned for prompt text that is not a route
var ErrBadRoute = errors.New("route must be FROM TO, FROM, or > TO")

// HandleEvent applies one terminal event; it runs on the loop goroutine
func (c *Context) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		c.handleIntent(c.input.Process(ev))
	case *tcell.EventMouse:
		c.handleMouse(ev)
	case *tcell.EventResize:
		if c.orch != nil {
			w, h := ev.Size()
			c.resize(w, h)
		}
	}
}

// handleMouse rotates on left-button drag and zooms on the wheel
func (c *Context) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	fx, fy := float64(x), float64(y)
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		c.rig.WheelNotch(-1)
	case buttons&tcell.WheelDown != 0:
		c.rig.WheelNotch(1)
	case buttons&tcell.Button1 != 0:
		if !c.rig.Dragging() {
			c.rig.BeginDrag(fx, fy)
			return
		}
		c.rig.DragTo(fx, fy)
	default:
		c.rig.EndDrag()
	}
}

func (c *Context) handleIntent(it input.Intent) {
	switch it.Type {
	case input.IntentNone, input.IntentSearchOpen, input.IntentLaunchOpen, input.IntentPromptCancel:
		// Prompt state lives in the machine and is read back through Status
	case input.IntentQuit:
		if c.control != nil {
			c.control.RequestStop()
		}
	case input.IntentPause:
		if c.control != nil {
			c.control.TogglePause()
		}
	case input.IntentToggleMute:
		if c.sound != nil {
			if c.sound.ToggleMute() {
				c.notify("sound off")
			} else {
				c.notify("sound on")
			}
		}
	case input.IntentToggleDust:
		c.SetDustVisible(!c.DustVisible())
	case input.IntentToggleHelp:
		c.help = !c.help
	case input.IntentClear:
		n := c.registry.ClearAll()
		c.notify(fmt.Sprintf("cleared %d flights", n))
	case input.IntentModeNone:
		c.startMode(flight.ModeNone, "", "")
	case input.IntentModeRandom:
		c.startMode(flight.ModeRandomPair, "", "")
	case input.IntentModeOrigin:
		c.startMode(flight.ModeFixedOrigin, c.origin, "")
	case input.IntentModeDestination:
		c.startMode(flight.ModeFixedDestination, "", c.dest)
	case input.IntentModePair:
		c.startMode(flight.ModeFixedPair, c.origin, c.dest)
	case input.IntentPromptSubmit:
		c.submitPrompt(it.Prompt, it.Text)
	case input.IntentRotateLeft:
		c.rig.Rotate(-parameter.KeyRotateCells, 0)
	case input.IntentRotateRight:
		c.rig.Rotate(parameter.KeyRotateCells, 0)
	case input.IntentRotateUp:
		c.rig.Rotate(0, -parameter.KeyRotateCells)
	case input.IntentRotateDown:
		c.rig.Rotate(0, parameter.KeyRotateCells)
	case input.IntentZoomIn:
		c.rig.WheelNotch(-1)
	case input.IntentZoomOut:
		c.rig.WheelNotch(1)
	case input.IntentResetView:
		c.rig.Reset()
	}
}

// startMode switches the spawner, a rejected mode leaves the previous one running
func (c *Context) startMode(mode flight.Mode, origin, dest string) error {
	if err := c.scheduler.Start(mode, origin, dest); err != nil {
		c.reject(err)
		return err
	}
	o, d := c.scheduler.Endpoints()
	if o != "" {
		c.origin = o
	}
	if d != "" {
		c.dest = d
	}
	c.notify("mode " + mode.String())
	return nil
}

// submitPrompt routes a submitted prompt line
// The route prompt switches the schedule, the launch prompt sends one flight
func (c *Context) submitPrompt(kind input.PromptKind, text string) {
	if text == "" {
		return
	}
	mode, origin, dest, err := ParseRoute(text)
	if err != nil {
		c.reject(err)
		return
	}

	switch kind {
	case input.PromptSearch:
		c.startMode(mode, origin, dest)
	case input.PromptLaunch:
		if mode != flight.ModeFixedPair {
			c.reject(fmt.Errorf("launch needs FROM TO: %w", ErrBadRoute))
			return
		}
		p, err := c.scheduler.Launch(origin, dest)
		if err != nil {
			c.reject(err)
			return
		}
		c.notify(fmt.Sprintf("launched %s → %s", p.From, p.To))
	}
}

// ParseRoute reads "FROM TO" as a fixed pair, "FROM" as a fixed origin and "> TO" as a fixed destination
func ParseRoute(text string) (mode flight.Mode, origin, dest string, err error) {
	text = strings.TrimSpace(text)
	if rest, ok := strings.CutPrefix(text, ">"); ok {
		f := strings.Fields(rest)
		if len(f) != 1 {
			return flight.ModeNone, "", "", ErrBadRoute
		}
		return flight.ModeFixedDestination, "", strings.ToUpper(f[0]), nil
	}

	f := strings.Fields(text)
	switch len(f) {
	case 1:
		return flight.ModeFixedOrigin, strings.ToUpper(f[0]), "", nil
	case 2:
		return flight.ModeFixedPair, strings.ToUpper(f[0]), strings.ToUpper(f[1]), nil
	}
	return flight.ModeNone, "", "", ErrBadRoute
}
