package world

import "errors"

var (
	// ErrUnknownTileKind is returned when a tile key is not in the catalog.
	ErrUnknownTileKind = errors.New("unknown tile kind")

	// ErrInvalidGenerationParams is returned for malformed archetype parameters.
	ErrInvalidGenerationParams = errors.New("invalid generation parameters")

	// ErrMapGenerationFailed is returned when generation produced no usable layout.
	ErrMapGenerationFailed = errors.New("map generation failed")

	// ErrOutOfBounds is returned for coordinates outside the map.
	ErrOutOfBounds = errors.New("coordinates out of bounds")

	// ErrNotImplemented is returned by declared but unbuilt shapes and archetypes.
	ErrNotImplemented = errors.New("not implemented")
)
