// Package diag collects diagnostics across the preprocessor and both
// assembly passes so that a single run reports every problem instead of
// stopping at the first one.
package diag

import "fmt"

// Severity distinguishes a fatal problem from an advisory one.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Diagnostic is one reported problem, always attributed to the original
// source file and line (macro expansions report the use-site line).
type Diagnostic struct {
	File     string
	Line     int
	Severity Severity
	Kind     string
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d: %s: %s", d.File, d.Line, d.Severity, d.Message)
}

// Collector accumulates diagnostics in the order they were reported.
type Collector struct {
	items []Diagnostic
}

// New returns an empty Collector.
func New() *Collector {
	return &Collector{}
}

func (c *Collector) add(file string, line int, sev Severity, kind, msg string) {
	c.items = append(c.items, Diagnostic{File: file, Line: line, Severity: sev, Kind: kind, Message: msg})
}

// Errorf records a fatal diagnostic.
func (c *Collector) Errorf(file string, line int, kind, format string, args ...any) {
	c.add(file, line, Error, kind, fmt.Sprintf(format, args...))
}

// Warnf records an advisory diagnostic.
func (c *Collector) Warnf(file string, line int, kind, format string, args ...any) {
	c.add(file, line, Warning, kind, fmt.Sprintf(format, args...))
}

// HasErrors reports whether any Error-severity diagnostic was recorded.
// This gates whether pass2 runs and whether output files are emitted;
// warnings never gate anything.
func (c *Collector) HasErrors() bool {
	for _, d := range c.items {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Items returns the diagnostics in report order.
func (c *Collector) Items() []Diagnostic {
	return c.items
}
