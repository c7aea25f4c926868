//go:build windows

package winapi

import (
	"golang.org/x/sys/windows"
)

// IsElevated returns true if the current process token is elevated.
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
