package fmv

import "errors"

var (
	// ErrTruncatedHeader is returned when the input is shorter than the
	// fixed 0x90-byte FMV header.
	ErrTruncatedHeader = errors.New("header too small")

	// ErrBadSignature is returned when the first four bytes are not the
	// FMV magic.
	ErrBadSignature = errors.New("bad FMV signature")

	// ErrSavestateRecording is returned for movies that begin from a
	// savestate rather than power-on. Converting those would need the
	// savestate itself, which the FMV file does not carry.
	ErrSavestateRecording = errors.New("movie starts from a savestate")

	// ErrNoControllers is returned when frame data is present but the
	// input-mode byte selects no controller ports.
	ErrNoControllers = errors.New("no controller(s) specified")

	// ErrCorruptFrameData is returned when the frame-data region is not an
	// exact multiple of the per-frame byte count.
	ErrCorruptFrameData = errors.New("corrupted frame data")
)
