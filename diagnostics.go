// diagnostics.go - Non-fatal observational logging for the RogEm core

/*
 ██▀███   ▒█████    ▄████ ▓█████  ███▄ ▄███▓
▓██ ▒ ██▒▒██▒  ██▒ ██▒ ▀█▒▓█   ▀ ▓██▒▀█▀ ██▒
▓██ ░▄█ ▒▒██░  ██▒▒██░▄▄▄░▒███   ▓██    ▓██░
▒██▀▀█▄  ▒██   ██░░▓█  ██▓▒▓█  ▄ ▒██    ▒██
░██▓ ▒██▒░ ████▓▒░░▒▓███▀▒░▒████▒▒██▒   ░██▒

(c) 2026 rogem contributors
https://github.com/rogem-emu/rogem

License: GPLv3 or later
*/

package rogem

import "log"

// Diagnostics is the narrow logging surface every device holds. Devices
// never fail on an unsupported width or an out-of-range offset, but they
// still want somewhere to say so. A nil *Diagnostics, which is what you get
// from constructing a device directly the way a unit test would, drops
// everything silently instead of panicking.
type Diagnostics struct {
	logger *log.Logger
}

// NewDiagnostics wraps the standard logger. Passing nil for logger falls
// back to log.Default().
func NewDiagnostics(logger *log.Logger) *Diagnostics {
	if logger == nil {
		logger = log.Default()
	}
	return &Diagnostics{logger: logger}
}

func (d *Diagnostics) Warnf(format string, args ...any) {
	if d == nil {
		return
	}
	d.logger.Printf("WARN "+format, args...)
}

func (d *Diagnostics) Errorf(format string, args ...any) {
	if d == nil {
		return
	}
	d.logger.Printf("ERROR "+format, args...)
}
