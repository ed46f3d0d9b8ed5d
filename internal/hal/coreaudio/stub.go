//go:build !darwin || !cgo

// Package coreaudio compiles as a no-op stub off macOS or without CGo;
// hal.NewService then reports the platform as unsupported.
package coreaudio
