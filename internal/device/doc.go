// Package device adapts the countdown timer to host hardware.
//
// It provides the digital output pins (a logging pin, a speaker-backed pin
// that beeps through the sound card, and a fan-out pin), a console LED matrix
// that prints frames as 5x5 text grids, line-driven buttons reading from an
// io.Reader, and a wall clock.
package device
