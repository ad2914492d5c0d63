// Package timer runs the screen timer on host hardware.
//
// State owns the countdown state machine; Process applies one event to it.
// Loop is the poll loop adapter: every pass turns latched button presses
// and the current time into events. Run wires configuration, logging and
// the device adapters together.
package timer
