package device

import (
	"fmt"
	"io"
	"strings"

	"github.com/oshokin/screen-timer/internal/domain/countdown"
)

// brightCell is the brightness from which a cell is drawn as fully lit.
const brightCell = 5

// ConsoleDisplay prints frames as 5x5 character grids.
type ConsoleDisplay struct {
	// out receives rendered frames.
	out io.Writer
	// last is the most recently printed frame.
	last countdown.Frame
	// shown is set once a frame has been printed.
	shown bool
}

// NewConsoleDisplay returns a display writing to out.
func NewConsoleDisplay(out io.Writer) *ConsoleDisplay {
	return &ConsoleDisplay{out: out}
}

// Show prints the frame unless it equals the one already on screen.
func (d *ConsoleDisplay) Show(frame countdown.Frame) {
	if d.shown && frame == d.last {
		return
	}

	d.last = frame
	d.shown = true

	_, _ = io.WriteString(d.out, Draw(frame))
}

// Last returns the frame currently on screen.
func (d *ConsoleDisplay) Last() countdown.Frame {
	return d.last
}

// Draw renders a frame as text: '#' for bright cells, '+' for dim ones, '.' for dark ones.
func Draw(frame countdown.Frame) string {
	var b strings.Builder

	_, _ = fmt.Fprintf(&b, "[%s]\n", frame)

	for _, row := range frame.Grid() {
		for _, v := range row {
			switch {
			case v >= brightCell:
				b.WriteByte('#')
			case v > 0:
				b.WriteByte('+')
			default:
				b.WriteByte('.')
			}
		}

		b.WriteByte('\n')
	}

	return b.String()
}
