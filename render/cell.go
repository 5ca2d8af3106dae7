package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs tcell.AttrMask
}

// Style converts the cell colors into a tcell style
func (c Cell) Style() tcell.Style {
	return tcell.StyleDefault.
		Foreground(c.Fg.TCell()).
		Background(c.Bg.TCell()).
		Attributes(c.Attrs)
}
