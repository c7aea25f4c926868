// Package reparse encodes and decodes the REPARSE_DATA_BUFFER structure used
// by mount point (junction) reparse points.
//
// The layout, all fields little-endian:
//
//	0  ReparseTag           uint32
//	4  ReparseDataLength    uint16  // bytes following Reserved
//	6  Reserved             uint16
//	8  SubstituteNameOffset uint16  // bytes, relative to PathBuffer
//	10 SubstituteNameLength uint16  // bytes, excluding UNICODE_NULL
//	12 PrintNameOffset      uint16
//	14 PrintNameLength      uint16
//	16 PathBuffer           []uint16
//
// Every offset and length in the buffer is a byte count; indexes into the
// UTF-16 path buffer are those counts divided by [WCHARSize].
package reparse

import (
	"encoding/binary"
	"fmt"
	"unicode/utf16"

	"github.com/Microsoft/go-junction/internal/errdefs"
)

const (
	// TagMountPoint is IO_REPARSE_TAG_MOUNT_POINT.
	TagMountPoint uint32 = 0xA0000003

	// MaxBufferSize is MAXIMUM_REPARSE_DATA_BUFFER_SIZE.
	MaxBufferSize = 16 * 1024

	// HeaderSize is the size of ReparseTag, ReparseDataLength and Reserved.
	HeaderSize = 8
	// MountPointHeaderSize is the size of the name offsets and lengths preceding PathBuffer.
	MountPointHeaderSize = 8
	// GUIDHeaderSize is the size of a REPARSE_GUID_DATA_BUFFER without data.
	GUIDHeaderSize = 24

	// WCHARSize is the size in bytes of one UTF-16 code unit.
	WCHARSize = 2

	unicodeNullSize = WCHARSize

	// MaxPathBufferSize is the largest substitute name, in bytes, that fits in a
	// buffer alongside both headers and the two reserved UNICODE_NULLs.
	MaxPathBufferSize = MaxBufferSize - HeaderSize - MountPointHeaderSize - 2*unicodeNullSize
)

// NonInterpretedPathPrefix tells NTFS to treat the rest of the substitute name
// as a literal path in the object manager namespace.
const NonInterpretedPathPrefix = `\??\`

var nonInterpretedPathPrefix = utf16.Encode([]rune(NonInterpretedPathPrefix))

// header field offsets
const (
	offTag                  = 0
	offReparseDataLength    = 4
	offReserved             = 6
	offSubstituteNameOffset = 8
	offSubstituteNameLength = 10
	offPrintNameOffset      = 12
	offPrintNameLength      = 14
	offPathBuffer           = HeaderSize + MountPointHeaderSize
)

// UnsupportedTagError is returned when decoding reparse data that is not a
// mount point.
type UnsupportedTagError struct {
	Tag uint32
}

func (e *UnsupportedTagError) Error() string {
	return fmt.Sprintf("unsupported reparse tag 0x%x: %s", e.Tag, errdefs.ErrNotMountPoint)
}

func (e *UnsupportedTagError) Is(target error) bool {
	return target == errdefs.ErrNotMountPoint
}

// MountPoint is a decoded mount point reparse buffer.
type MountPoint struct {
	// SubstituteName is the path the OS resolves the junction to, usually
	// prefixed with [NonInterpretedPathPrefix].
	SubstituteName []uint16
	// PrintName is the display-only name, empty for junctions created here.
	PrintName []uint16
}

// Target returns the substitute name with [NonInterpretedPathPrefix] removed,
// if present.
func (mp *MountPoint) Target() string {
	return string(utf16.Decode(trimNonInterpretedPrefix(mp.SubstituteName)))
}

func trimNonInterpretedPrefix(s []uint16) []uint16 {
	if len(s) < len(nonInterpretedPathPrefix) {
		return s
	}
	for i, c := range nonInterpretedPathPrefix {
		if s[i] != c {
			return s
		}
	}
	return s[len(nonInterpretedPathPrefix):]
}

// EncodeMountPoint builds the reparse buffer for a junction to target, which
// must already be an absolute path without a trailing NUL. The returned slice
// is exactly as long as the size to pass to FSCTL_SET_REPARSE_POINT.
func EncodeMountPoint(target []uint16) ([]byte, error) {
	n := len(nonInterpretedPathPrefix) + len(target)
	if n > MaxPathBufferSize/WCHARSize {
		return nil, fmt.Errorf("%d code units exceeds %d: %w", n, MaxPathBufferSize/WCHARSize, errdefs.ErrTargetTooLong)
	}
	nameLength := uint16(n * WCHARSize)
	dataLength := MountPointHeaderSize + nameLength + 2*unicodeNullSize

	// both UNICODE_NULLs stay zeroed
	b := make([]byte, HeaderSize+int(dataLength))
	le := binary.LittleEndian
	le.PutUint32(b[offTag:], TagMountPoint)
	le.PutUint16(b[offReparseDataLength:], dataLength)
	le.PutUint16(b[offReserved:], 0)
	le.PutUint16(b[offSubstituteNameOffset:], 0)
	le.PutUint16(b[offSubstituteNameLength:], nameLength)
	le.PutUint16(b[offPrintNameOffset:], nameLength+unicodeNullSize)
	le.PutUint16(b[offPrintNameLength:], 0)

	p := b[offPathBuffer:]
	for _, c := range nonInterpretedPathPrefix {
		le.PutUint16(p, c)
		p = p[WCHARSize:]
	}
	for _, c := range target {
		le.PutUint16(p, c)
		p = p[WCHARSize:]
	}
	return b, nil
}

// EncodeDelete builds the REPARSE_GUID_DATA_BUFFER header passed to
// FSCTL_DELETE_REPARSE_POINT to remove mount point reparse data.
func EncodeDelete() []byte {
	b := make([]byte, GUIDHeaderSize)
	binary.LittleEndian.PutUint32(b[offTag:], TagMountPoint)
	return b
}

// Tag returns the reparse tag of b.
func Tag(b []byte) (uint32, error) {
	if len(b) < HeaderSize {
		return 0, fmt.Errorf("buffer of %d bytes has no reparse header: %w", len(b), errdefs.ErrMalformedBuffer)
	}
	return binary.LittleEndian.Uint32(b[offTag:]), nil
}

// Decode parses a mount point reparse buffer as returned by
// FSCTL_GET_REPARSE_POINT. Buffers with any other tag fail with an
// [*UnsupportedTagError].
func Decode(b []byte) (*MountPoint, error) {
	tag, err := Tag(b)
	if err != nil {
		return nil, err
	}
	if tag != TagMountPoint {
		return nil, &UnsupportedTagError{Tag: tag}
	}
	if len(b) < offPathBuffer {
		return nil, fmt.Errorf("buffer of %d bytes has no mount point header: %w", len(b), errdefs.ErrMalformedBuffer)
	}

	le := binary.LittleEndian
	end := HeaderSize + int(le.Uint16(b[offReparseDataLength:]))
	if end < offPathBuffer || end > len(b) {
		return nil, fmt.Errorf("reparse data length %d out of range: %w", end-HeaderSize, errdefs.ErrMalformedBuffer)
	}
	pathBuffer := b[offPathBuffer:end]

	sub, err := name(pathBuffer, le.Uint16(b[offSubstituteNameOffset:]), le.Uint16(b[offSubstituteNameLength:]))
	if err != nil {
		return nil, fmt.Errorf("substitute name: %w", err)
	}
	printName, err := name(pathBuffer, le.Uint16(b[offPrintNameOffset:]), le.Uint16(b[offPrintNameLength:]))
	if err != nil {
		return nil, fmt.Errorf("print name: %w", err)
	}
	return &MountPoint{SubstituteName: sub, PrintName: printName}, nil
}

// name copies the UTF-16 string at byte offset off with byte length n out of
// the path buffer.
func name(pathBuffer []byte, off, n uint16) ([]uint16, error) {
	if off%WCHARSize != 0 || n%WCHARSize != 0 {
		return nil, fmt.Errorf("unaligned offset %d or length %d: %w", off, n, errdefs.ErrMalformedBuffer)
	}
	if int(off)+int(n) > len(pathBuffer) {
		return nil, fmt.Errorf("offset %d length %d exceeds %d byte path buffer: %w", off, n, len(pathBuffer), errdefs.ErrMalformedBuffer)
	}
	s := make([]uint16, n/WCHARSize)
	for i := range s {
		s[i] = binary.LittleEndian.Uint16(pathBuffer[int(off)+i*WCHARSize:])
	}
	return s, nil
}
