// Package codec defines the Codec interface every sprite compression
// scheme implements, a registry for looking them up by name or on-wire
// comp-type byte, and the wire assembly (container byte + sprite header +
// body) that ties a Codec's output into a complete sprite (spec.md §6).
package codec

import "errors"

var (
	// ErrCodecNotFound is returned when a codec is not found in the registry.
	ErrCodecNotFound = errors.New("codec not found")

	// ErrInvalidCompType is returned when a wire container byte names a
	// comp-type no registered codec implements.
	ErrInvalidCompType = errors.New("codec: invalid compression type")

	// ErrShortSprite is returned when a byte slice is too short to contain
	// even the container byte and sprite header.
	ErrShortSprite = errors.New("codec: sprite data too short")
)
