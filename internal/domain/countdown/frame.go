package countdown

import (
	"strconv"
	"strings"
)

const (
	// MatrixSize is the width and height of the LED matrix.
	MatrixSize = 5
	// imageLength is the length of an encoded 5x5 image including row separators.
	imageLength = MatrixSize*MatrixSize + MatrixSize - 1
	// rowSeparator splits image rows.
	rowSeparator = ':'
	// ledOn is the brightness of a lit cell.
	ledOn = '9'
	// ledOff is the brightness of a dark cell.
	ledOff = '0'
	// minutesPerCell is how much time a single lit cell stands for.
	minutesPerCell = 3
	// maxDigit is the largest value rendered as a digit.
	maxDigit = 9
)

// Frame is what the display shows: a single digit or an encoded 5x5 image.
//
// Images use five rows of five brightness characters ('0'-'9') joined by ':'.
type Frame struct {
	// Text is either one digit or an encoded image.
	Text string
}

// digitFont holds 5x5 glyphs for the digits 0-9.
//
//nolint:gochecknoglobals // Static font table.
var digitFont = [10][MatrixSize]string{
	{"09990", "90009", "90009", "90009", "09990"},
	{"00900", "09900", "00900", "00900", "09990"},
	{"99900", "00090", "00900", "09000", "99990"},
	{"99990", "00090", "00900", "90090", "09900"},
	{"00990", "09090", "90090", "99999", "00090"},
	{"99999", "90000", "99990", "00009", "99990"},
	{"00090", "00900", "09990", "90009", "09990"},
	{"99999", "00090", "00900", "09000", "90000"},
	{"09990", "90009", "09990", "90009", "09990"},
	{"09990", "90009", "09990", "00900", "09000"},
}

// DigitFrame returns a frame showing d. Values outside 0-9 are clamped.
func DigitFrame(d int) Frame {
	d = min(max(d, 0), maxDigit)

	return Frame{Text: strconv.Itoa(d)}
}

// BarFrame returns the bar image for the given minutes: cells fill row by row,
// one lit cell per started three minutes.
func BarFrame(minutes int) Frame {
	var b strings.Builder

	b.Grow(imageLength)

	for i := 0; i < imageLength; i++ {
		switch {
		case i%(MatrixSize+1) == MatrixSize:
			b.WriteByte(rowSeparator)
		case minutes > 0:
			b.WriteByte(ledOn)

			minutes -= minutesPerCell
		default:
			b.WriteByte(ledOff)
		}
	}

	return Frame{Text: b.String()}
}

// IsDigit reports whether the frame is a single digit.
func (f Frame) IsDigit() bool {
	return len(f.Text) == 1 && f.Text[0] >= '0' && f.Text[0] <= '9'
}

// Grid rasterises the frame into per-cell brightness values (0-9).
// Malformed images produce dark cells where data is missing.
func (f Frame) Grid() [MatrixSize][MatrixSize]uint8 {
	var grid [MatrixSize][MatrixSize]uint8

	rows := strings.Split(f.Text, string(rowSeparator))
	if f.IsDigit() {
		glyph := digitFont[f.Text[0]-'0']
		rows = glyph[:]
	}

	for y := 0; y < MatrixSize && y < len(rows); y++ {
		for x := 0; x < MatrixSize && x < len(rows[y]); x++ {
			if c := rows[y][x]; c >= '0' && c <= '9' {
				grid[y][x] = c - '0'
			}
		}
	}

	return grid
}

// Lit returns the number of cells with non-zero brightness.
func (f Frame) Lit() int {
	lit := 0

	for _, row := range f.Grid() {
		for _, v := range row {
			if v > 0 {
				lit++
			}
		}
	}

	return lit
}

// String implements fmt.Stringer.
func (f Frame) String() string {
	return f.Text
}
