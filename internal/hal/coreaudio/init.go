//go:build darwin && cgo

// Package coreaudio provides the macOS implementation of the hal service
// boundary over the CoreAudio and CoreFoundation frameworks. All
// functionality requires CGo. When CGo is disabled, the package compiles as
// a no-op stub and hal.NewService reports the platform as unsupported.
package coreaudio

import "github.com/audiohw/audiotree/internal/hal"

func init() {
	hal.NewServiceFunc = func() (hal.Service, error) {
		return NewService(), nil
	}
	hal.NewProvisionerFunc = func() (hal.StreamProvisioner, error) {
		return NewProvisioner(), nil
	}
}
