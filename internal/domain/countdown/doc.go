// Package countdown implements the screen timer state machine.
//
// A Timer counts minutes down on a one-minute virtual clock, arms its alarms
// at half-time, on each of the last five minutes and when the time is up, and
// redraws its display after every change. Buttons move the remaining time in
// 15-minute steps. The package is pure: time is passed in by the caller and
// all hardware is reached through the Pin and Display interfaces.
package countdown
