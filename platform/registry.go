package platform

import (
	"errors"
	"sync"
)

// ErrDriverNotAvailable is returned when no usable driver is registered.
var ErrDriverNotAvailable = errors.New("platform: no driver available")

// DriverFactory creates a new driver instance.
type DriverFactory func() Driver

var (
	registryMu sync.RWMutex
	drivers    = make(map[string]DriverFactory)
	// Priority order for driver selection (first available wins). A real
	// window-system driver registers as "window" and takes precedence over
	// the headless software fallback.
	driverPriority = []string{"window", DriverSoftware}
)

// Register registers a driver factory with the given name. This is
// typically called from init() functions in driver packages. Registering
// the same name again replaces the previous factory.
func Register(name string, factory DriverFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	drivers[name] = factory
}

// Unregister removes a driver from the registry. Useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(drivers, name)
}

// Available returns the registered driver names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	return names
}

// Get returns a new driver instance by name, or nil if the name is not
// registered.
func Get(name string) Driver {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := drivers[name]
	if !ok {
		return nil
	}
	return factory()
}

// Default returns the best available driver based on priority, falling
// back to any registered driver. Returns nil if none are registered.
func Default() Driver {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range driverPriority {
		if factory, ok := drivers[name]; ok {
			if d := factory(); d != nil {
				return d
			}
		}
	}
	for _, factory := range drivers {
		if d := factory(); d != nil {
			return d
		}
	}
	return nil
}

// MustDefault returns the default driver or panics.
func MustDefault() Driver {
	d := Default()
	if d == nil {
		panic("platform: no driver available")
	}
	return d
}
