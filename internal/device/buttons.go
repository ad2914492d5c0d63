package device

import (
	"bufio"
	"io"
	"strings"
	"sync"
	"sync/atomic"
)

// LineButtons emulates buttons A and B from text lines.
//
// Each line "a" or "+" presses A, "b" or "-" presses B, and "q" closes Done.
// Presses are latched until the next Poll, like the was-pressed flags of
// the device buttons. The end of input only stops reading: a timer started
// without a terminal keeps counting down.
type LineButtons struct {
	// a is the latched press of button A.
	a atomic.Bool
	// b is the latched press of button B.
	b atomic.Bool
	// done is closed on "q".
	done chan struct{}
	// once guards closing done.
	once sync.Once
}

// NewLineButtons starts reading commands from r in a background goroutine.
func NewLineButtons(r io.Reader) *LineButtons {
	lb := &LineButtons{done: make(chan struct{})}

	go lb.read(r)

	return lb
}

// read consumes r until EOF or a quit command.
func (lb *LineButtons) read(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if !lb.Press(scanner.Text()) {
			lb.stop()

			return
		}
	}
}

// Press applies one command and reports whether input should continue.
// Unknown commands are ignored.
func (lb *LineButtons) Press(command string) bool {
	switch strings.ToLower(strings.TrimSpace(command)) {
	case "a", "+":
		lb.a.Store(true)
	case "b", "-":
		lb.b.Store(true)
	case "q", "quit":
		return false
	}

	return true
}

// Poll returns and clears the latched presses.
func (lb *LineButtons) Poll() (bool, bool) {
	return lb.a.Swap(false), lb.b.Swap(false)
}

// Done is closed when the input asks to quit.
func (lb *LineButtons) Done() <-chan struct{} {
	return lb.done
}

// stop closes done once.
func (lb *LineButtons) stop() {
	lb.once.Do(func() { close(lb.done) })
}
