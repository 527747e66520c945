// Package input wraps the OS-level pointer and keyboard injection
// primitives behind a small interface so the engine can run against a fake
// in tests and against robotgo in production.
package input

// Injector is the capability boundary for input injection and screen
// geometry queries.
type Injector interface {
	// ScreenSize reports the primary display dimensions in pixels.
	ScreenSize() (width, height int)

	// Position reports the current pointer location.
	Position() (x, y int)

	// Move places the pointer at the given screen coordinates.
	Move(x, y int) error

	// KeyTap presses and releases the named key.
	KeyTap(key string) error
}
