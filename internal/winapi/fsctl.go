//go:build windows

package winapi

import "golang.org/x/sys/windows"

// Reparse point control codes, from winioctl.h.
const (
	FSCTL_SET_REPARSE_POINT    = 0x000900A4 //nolint:revive,stylecheck
	FSCTL_GET_REPARSE_POINT    = 0x000900A8 //nolint:revive,stylecheck
	FSCTL_DELETE_REPARSE_POINT = 0x000900AC //nolint:revive,stylecheck
)

// DeviceIoControl issues a synchronous control request against h using byte
// slices for the input and output buffers. Either slice may be empty.
func DeviceIoControl(h windows.Handle, code uint32, in, out []byte) (uint32, error) {
	var (
		inPtr, outPtr *byte
		returned      uint32
	)
	if len(in) > 0 {
		inPtr = &in[0]
	}
	if len(out) > 0 {
		outPtr = &out[0]
	}
	err := windows.DeviceIoControl(h, code, inPtr, uint32(len(in)), outPtr, uint32(len(out)), &returned, nil)
	return returned, err
}
