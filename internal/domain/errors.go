package domain

import "errors"

var (
	// ErrUnsupported is returned by platform backends on systems other than macOS
	ErrUnsupported = errors.New("not supported on this platform")

	// ErrUnknownProvider is returned when a backend name is not registered
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrNilInjector is returned when a translator is built without an injector
	ErrNilInjector = errors.New("key injector is required")

	// ErrEventCreate is returned when the OS refuses to create a synthetic event
	ErrEventCreate = errors.New("failed to create synthetic event")
)
