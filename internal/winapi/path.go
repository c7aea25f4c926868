//go:build windows

package winapi

import (
	"math"

	"golang.org/x/sys/windows"
)

// GetFullPathNameW reports an incorrect size hint for some short paths, so
// start with a buffer large enough to never rely on it.
const initialPathBufferSize = 512

// GetFullPathName returns the absolute form of path as UTF-16, without a
// terminating NUL. Forward slashes are converted to backslashes.
//
// GetFullPathNameW signals a short buffer by returning the size it needs,
// including the NUL, rather than by failing. The buffer then doubles, or grows
// straight to the reported size if that is larger, until the result fits.
func GetFullPathName(path string) ([]uint16, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, err
	}

	n := uint32(initialPathBufferSize)
	for {
		b := make([]uint16, n)
		l, err := windows.GetFullPathName(p, n, &b[0], nil)
		if err != nil {
			return nil, err
		}
		if l < n {
			return b[:l], nil
		}
		if n == math.MaxUint32 {
			return nil, windows.ERROR_INSUFFICIENT_BUFFER
		}
		n = max(l, growPathBuffer(n))
	}
}

// growPathBuffer doubles n, saturating at [math.MaxUint32].
func growPathBuffer(n uint32) uint32 {
	if n > math.MaxUint32/2 {
		return math.MaxUint32
	}
	return n * 2
}
