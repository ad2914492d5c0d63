package device

import (
	"go.uber.org/zap"
)

// Pin is a digital output.
type Pin interface {
	Write(high bool)
}

// LogPin logs every level change of a virtual pin.
type LogPin struct {
	// name is the pin label in log records.
	name string
	// log receives level changes.
	log *zap.SugaredLogger
	// high is the current level.
	high bool
}

// NewLogPin returns a pin that logs level changes at debug level.
func NewLogPin(name string, log *zap.SugaredLogger) *LogPin {
	return &LogPin{
		name: name,
		log:  log,
	}
}

// Write sets the pin level. Repeated writes of the same level are not logged.
func (p *LogPin) Write(high bool) {
	if p.high == high {
		return
	}

	p.high = high
	p.log.Debugw("Pin level changed", "pin", p.name, "high", high)
}

// High returns the current level.
func (p *LogPin) High() bool {
	return p.high
}

// MultiPin writes the same level to several pins.
type MultiPin []Pin

// Write forwards the level to every pin.
func (m MultiPin) Write(high bool) {
	for _, p := range m {
		p.Write(high)
	}
}
