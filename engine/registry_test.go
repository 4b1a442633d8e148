package engine

import (
	"strings"
	"testing"
)

// stubDriver is the minimal Driver for registry tests.
type stubDriver struct{ Driver }

func resetRegistry() {
	driversMu.Lock()
	drivers = make(map[string]Driver)
	driversMu.Unlock()
}

func TestRegisterAndOpen(t *testing.T) {
	resetRegistry()
	t.Cleanup(resetRegistry)

	d := &stubDriver{}
	Register("stub", d)

	got, err := Open("stub")
	if err != nil {
		t.Fatalf("Open(stub): %v", err)
	}
	if got != d {
		t.Fatalf("Open(stub) returned a different driver")
	}
}

func TestOpenDefaultsToSoleDriver(t *testing.T) {
	resetRegistry()
	t.Cleanup(resetRegistry)

	d := &stubDriver{}
	Register("only", d)

	got, err := Open("")
	if err != nil {
		t.Fatalf("Open(\"\"): %v", err)
	}
	if got != d {
		t.Fatalf("Open(\"\") did not return the sole driver")
	}
}

func TestOpenErrors(t *testing.T) {
	resetRegistry()
	t.Cleanup(resetRegistry)

	if _, err := Open(""); err == nil {
		t.Fatal("Open with no drivers registered should fail")
	}

	Register("a", &stubDriver{})
	Register("b", &stubDriver{})

	if _, err := Open(""); err == nil {
		t.Fatal("Open(\"\") with two drivers should fail")
	}
	_, err := Open("c")
	if err == nil {
		t.Fatal("Open(c) should fail")
	}
	if !strings.Contains(err.Error(), `"c"`) {
		t.Errorf("error should name the missing driver: %v", err)
	}
}

func TestRegisterPanics(t *testing.T) {
	resetRegistry()
	t.Cleanup(resetRegistry)

	mustPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		fn()
	}

	mustPanic("nil driver", func() { Register("nil", nil) })
	Register("dup", &stubDriver{})
	mustPanic("duplicate name", func() { Register("dup", &stubDriver{}) })
}

func TestDriversSorted(t *testing.T) {
	resetRegistry()
	t.Cleanup(resetRegistry)

	Register("zeta", &stubDriver{})
	Register("alpha", &stubDriver{})

	got := Drivers()
	if len(got) != 2 || got[0] != "alpha" || got[1] != "zeta" {
		t.Errorf("Drivers() = %v, want [alpha zeta]", got)
	}
}
