package reparse

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/google/go-cmp/cmp"

	"github.com/Microsoft/go-junction/internal/errdefs"
)

func u16(s string) []uint16 { return utf16.Encode([]rune(s)) }

func TestEncodeMountPointLayout(t *testing.T) {
	target := `C:\real\dir`
	b, err := EncodeMountPoint(u16(target))
	if err != nil {
		t.Fatalf("encode %q: %v", target, err)
	}

	nameLength := (len(NonInterpretedPathPrefix) + len(target)) * WCHARSize
	if want := HeaderSize + MountPointHeaderSize + nameLength + 2*WCHARSize; len(b) != want {
		t.Fatalf("expected buffer of %d bytes, got %d", want, len(b))
	}

	le := binary.LittleEndian
	got := []uint32{
		le.Uint32(b[0:]),
		uint32(le.Uint16(b[4:])),
		uint32(le.Uint16(b[6:])),
		uint32(le.Uint16(b[8:])),
		uint32(le.Uint16(b[10:])),
		uint32(le.Uint16(b[12:])),
		uint32(le.Uint16(b[14:])),
	}
	want := []uint32{
		TagMountPoint,
		uint32(MountPointHeaderSize + nameLength + 2*WCHARSize),
		0,
		0,
		uint32(nameLength),
		uint32(nameLength + WCHARSize),
		0,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}

	path := make([]uint16, nameLength/WCHARSize)
	for i := range path {
		path[i] = le.Uint16(b[16+i*WCHARSize:])
	}
	if diff := cmp.Diff(u16(`\??\`+target), path); diff != "" {
		t.Errorf("path buffer mismatch (-want +got):\n%s", diff)
	}
	for _, c := range b[16+nameLength:] {
		if c != 0 {
			t.Fatalf("expected trailing UNICODE_NULLs, got % x", b[16+nameLength:])
		}
	}
}

func TestEncodeDecode(t *testing.T) {
	for _, target := range []string{
		`C:\real\dir`,
		`D:\`,
		`C:\Users\Default`,
		`C:\données\日本語\🙂`,
		`\\?\Volume{3f3e3f4a-0000-0000-0000-100000000000}\dir`,
	} {
		t.Run(target, func(t *testing.T) {
			b, err := EncodeMountPoint(u16(target))
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			mp, err := Decode(b)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got := mp.Target(); got != target {
				t.Errorf("expected target %q, got %q", target, got)
			}
			if len(mp.PrintName) != 0 {
				t.Errorf("expected empty print name, got %q", string(utf16.Decode(mp.PrintName)))
			}
		})
	}
}

func TestEncodeMountPointLengthBoundary(t *testing.T) {
	maxUnits := MaxPathBufferSize/WCHARSize - len(NonInterpretedPathPrefix)

	longest := u16(`C:\` + strings.Repeat("a", maxUnits-3))
	b, err := EncodeMountPoint(longest)
	if err != nil {
		t.Fatalf("expected longest target to encode, got %v", err)
	}
	if len(b) != MaxBufferSize {
		t.Errorf("expected a full %d byte buffer, got %d", MaxBufferSize, len(b))
	}
	mp, err := Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(longest, trimNonInterpretedPrefix(mp.SubstituteName)); diff != "" {
		t.Errorf("target mismatch (-want +got):\n%s", diff)
	}

	for _, n := range []int{maxUnits + 1, 1 << 15, 1<<16 + 7} {
		_, err := EncodeMountPoint(u16(`C:\` + strings.Repeat("a", n-3)))
		if !errors.Is(err, errdefs.ErrTargetTooLong) {
			t.Errorf("expected %v for %d code units, got %v", errdefs.ErrTargetTooLong, n, err)
		}
	}
}

func TestDecodeUnsupportedTag(t *testing.T) {
	const tagSymlink = 0xA000000C

	b, err := EncodeMountPoint(u16(`C:\x`))
	if err != nil {
		t.Fatal(err)
	}
	binary.LittleEndian.PutUint32(b, tagSymlink)

	_, err = Decode(b)
	if !errors.Is(err, errdefs.ErrNotMountPoint) {
		t.Fatalf("expected %v, got %v", errdefs.ErrNotMountPoint, err)
	}
	var terr *UnsupportedTagError
	if !errors.As(err, &terr) || terr.Tag != tagSymlink {
		t.Fatalf("expected UnsupportedTagError with tag 0x%x, got %v", tagSymlink, err)
	}
	if !errdefs.IsNotMountPoint(err) {
		t.Errorf("expected IsNotMountPoint for %v", err)
	}
}

// Buffers written by other tools may omit the \??\ marker and place the print
// name first.
func TestDecodeForeignLayout(t *testing.T) {
	printName := u16(`C:\print`)
	subName := u16(`C:\target`)
	path := append(append(append([]uint16{}, printName...), 0), subName...)
	path = append(path, 0)

	data := make([]byte, MountPointHeaderSize+len(path)*WCHARSize)
	le := binary.LittleEndian
	le.PutUint16(data[0:], uint16((len(printName)+1)*WCHARSize))
	le.PutUint16(data[2:], uint16(len(subName)*WCHARSize))
	le.PutUint16(data[4:], 0)
	le.PutUint16(data[6:], uint16(len(printName)*WCHARSize))
	for i, c := range path {
		le.PutUint16(data[MountPointHeaderSize+i*WCHARSize:], c)
	}
	b := make([]byte, HeaderSize, HeaderSize+len(data))
	le.PutUint32(b[0:], TagMountPoint)
	le.PutUint16(b[4:], uint16(len(data)))
	b = append(b, data...)

	mp, err := Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := mp.Target(); got != `C:\target` {
		t.Errorf("expected target %q, got %q", `C:\target`, got)
	}
	if diff := cmp.Diff(printName, mp.PrintName); diff != "" {
		t.Errorf("print name mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeMalformed(t *testing.T) {
	valid, err := EncodeMountPoint(u16(`C:\real\dir`))
	if err != nil {
		t.Fatal(err)
	}
	clone := func(f func(b []byte)) []byte {
		b := append([]byte{}, valid...)
		f(b)
		return b
	}
	le := binary.LittleEndian

	for _, tc := range []struct {
		name string
		b    []byte
	}{
		{"empty", nil},
		{"tag only", valid[:4]},
		{"no mount point header", valid[:HeaderSize+4]},
		{"truncated", valid[:len(valid)-6]},
		{"data length too small", clone(func(b []byte) { le.PutUint16(b[4:], 2) })},
		{"substitute name out of range", clone(func(b []byte) { le.PutUint16(b[10:], 0x4000) })},
		{"odd substitute name offset", clone(func(b []byte) { le.PutUint16(b[8:], 1) })},
		{"print name out of range", clone(func(b []byte) { le.PutUint16(b[12:], 0x2000) })},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Decode(tc.b); !errors.Is(err, errdefs.ErrMalformedBuffer) {
				t.Fatalf("expected %v, got %v", errdefs.ErrMalformedBuffer, err)
			}
		})
	}
}

func TestTag(t *testing.T) {
	b, err := EncodeMountPoint(u16(`C:\x`))
	if err != nil {
		t.Fatal(err)
	}
	tag, err := Tag(b)
	if err != nil {
		t.Fatal(err)
	}
	if tag != TagMountPoint {
		t.Errorf("expected tag 0x%x, got 0x%x", TagMountPoint, tag)
	}
	if _, err := Tag(b[:3]); !errors.Is(err, errdefs.ErrMalformedBuffer) {
		t.Errorf("expected %v, got %v", errdefs.ErrMalformedBuffer, err)
	}
}

func TestEncodeDelete(t *testing.T) {
	b := EncodeDelete()
	want := make([]byte, GUIDHeaderSize)
	binary.LittleEndian.PutUint32(want, TagMountPoint)
	if diff := cmp.Diff(want, b); diff != "" {
		t.Errorf("delete buffer mismatch (-want +got):\n%s", diff)
	}
}

func TestTarget(t *testing.T) {
	for _, tc := range []struct {
		sub  string
		want string
	}{
		{`\??\C:\foo\bar`, `C:\foo\bar`},
		{`C:\foo\bar`, `C:\foo\bar`},
		{`\??`, `\??`},
		{`\??\`, ``},
		{`\\?\C:\foo`, `\\?\C:\foo`},
	} {
		mp := &MountPoint{SubstituteName: u16(tc.sub)}
		if got := mp.Target(); got != tc.want {
			t.Errorf("Target() of %q = %q, want %q", tc.sub, got, tc.want)
		}
	}
}
