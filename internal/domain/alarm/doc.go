// Package alarm clocks fixed on/off bit patterns out to a digital pin.
//
// An Alarm owns a ticker running at a short sub-interval (100 ms by default).
// Once armed, every tick writes the next bit of its pattern to the pin until
// the pattern is exhausted; repeating alarms then start over from the first bit.
package alarm
