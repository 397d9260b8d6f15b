package ptplog

import "testing"

type countingProvider struct {
	critical, error, warn, debug int
}

func (sf *countingProvider) Critical(format string, v ...interface{}) { sf.critical++ }
func (sf *countingProvider) Error(format string, v ...interface{})    { sf.error++ }
func (sf *countingProvider) Warn(format string, v ...interface{})     { sf.warn++ }
func (sf *countingProvider) Debug(format string, v ...interface{})    { sf.debug++ }

func TestLoggerGatedByMode(t *testing.T) {
	p := &countingProvider{}
	l := New("test")
	l.SetProvider(p)

	l.Debug("disabled by default")
	if p.debug != 0 {
		t.Fatalf("debug count = %d, want 0 before SetMode(true)", p.debug)
	}

	l.SetMode(true)
	l.Debug("now enabled")
	l.Warn("now enabled")
	l.Error("now enabled")
	l.Critical("now enabled")
	if p.debug != 1 || p.warn != 1 || p.error != 1 || p.critical != 1 {
		t.Fatalf("counts = %+v, want all 1", p)
	}

	l.SetMode(false)
	l.Debug("disabled again")
	if p.debug != 1 {
		t.Fatalf("debug count = %d, want still 1 after SetMode(false)", p.debug)
	}
}

func TestSetProviderIgnoresNil(t *testing.T) {
	p := &countingProvider{}
	l := New("test")
	l.SetProvider(p)
	l.SetProvider(nil)
	l.SetMode(true)
	l.Debug("still routed to p")
	if p.debug != 1 {
		t.Fatalf("debug count = %d, want 1; SetProvider(nil) should be a no-op", p.debug)
	}
}
