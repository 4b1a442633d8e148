package engine

import (
	"fmt"
	"sort"
	"sync"
)

// The driver registry follows the database/sql pattern: engine bindings
// register themselves in an init function, tools open them by name.

var (
	driversMu sync.RWMutex
	drivers   = make(map[string]Driver)
)

// Register makes an engine driver available under the given name.
// It panics if the driver is nil or the name is already registered.
func Register(name string, d Driver) {
	driversMu.Lock()
	defer driversMu.Unlock()
	if d == nil {
		panic("engine: Register driver is nil")
	}
	if _, dup := drivers[name]; dup {
		panic("engine: Register called twice for driver " + name)
	}
	drivers[name] = d
}

// Open returns the driver registered under name. An empty name selects the
// sole registered driver; it is an error when zero or several drivers are
// registered.
func Open(name string) (Driver, error) {
	driversMu.RLock()
	defer driversMu.RUnlock()
	if name != "" {
		d, ok := drivers[name]
		if !ok {
			return nil, fmt.Errorf("engine: unknown driver %q (registered: %v)", name, driverNamesLocked())
		}
		return d, nil
	}
	switch len(drivers) {
	case 0:
		return nil, fmt.Errorf("engine: no driver registered")
	case 1:
		for _, d := range drivers {
			return d, nil
		}
		panic("unreachable")
	default:
		return nil, fmt.Errorf("engine: several drivers registered %v, select one explicitly", driverNamesLocked())
	}
}

// Drivers returns the sorted names of the registered drivers.
func Drivers() []string {
	driversMu.RLock()
	defer driversMu.RUnlock()
	return driverNamesLocked()
}

func driverNamesLocked() []string {
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
