// Package config defines the screen timer settings and provides helpers to
// load, validate and save them in YAML format.
//
// Settings cover the start duration, the poll and alarm intervals, the log
// level and the optional host speaker used as a buzzer.
package config
