// Package types defines the compact hardware type descriptor and its parser.
//
// A type string has the shape base[.width][::mode], e.g. "int",
// "signed.16", "int.32::concurrent". The base type is an uninterpreted
// string; only "signed" is treated specially by the code generator.
package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultWidth is used when a type string omits the width suffix.
const DefaultWidth = 32

// SyncMode describes the hardware execution semantics a function or a
// parameter requests from the generated circuit: combinational inlining
// (concurrent) or a clocked, separately instantiated block (sequential).
// It says nothing about the compiler's own execution.
type SyncMode uint8

const (
	// SyncUnspecified means the type string carried no ::mode suffix.
	SyncUnspecified SyncMode = iota
	// SyncConcurrent resolves calls to an inline combinational reference.
	SyncConcurrent
	// SyncSequential resolves calls to a clocked hardware instance.
	SyncSequential
)

func (m SyncMode) String() string {
	switch m {
	case SyncUnspecified:
		return "unspecified"
	case SyncConcurrent:
		return "concurrent"
	case SyncSequential:
		return "sequential"
	}
	return "unknown"
}

// ErrFormat is the root of all type-string format failures: an
// unrecognized sync-mode literal or a non-integer width.
var ErrFormat = errors.New("malformed type string")

// Descriptor is the parsed form of a compact type string. Immutable
// once created.
type Descriptor struct {
	Base  string
	Width int
	Sync  SyncMode
}

// Signed reports whether the generator must add the signed qualifier.
func (d Descriptor) Signed() bool {
	return d.Base == "signed"
}

func (d Descriptor) String() string {
	s := fmt.Sprintf("%s.%d", d.Base, d.Width)
	if d.Sync != SyncUnspecified {
		s += "::" + d.Sync.String()
	}
	return s
}

// ParseSyncMode maps a sync-mode literal onto its SyncMode.
func ParseSyncMode(s string) (SyncMode, error) {
	switch s {
	case "concurrent":
		return SyncConcurrent, nil
	case "sequential":
		return SyncSequential, nil
	}
	return SyncUnspecified, fmt.Errorf("%w: unknown sync mode %q", ErrFormat, s)
}

// Parse parses a compact type string. Splits on "::" first (sync mode
// suffix), then on "." (width suffix). An omitted width defaults to
// DefaultWidth. No range check is applied to the width: 0 and negative
// values pass through to the generator.
func Parse(typeStr string) (Descriptor, error) {
	typePart := typeStr
	sync := SyncUnspecified

	if base, modeStr, ok := strings.Cut(typeStr, "::"); ok {
		typePart = base
		mode, err := ParseSyncMode(modeStr)
		if err != nil {
			return Descriptor{}, err
		}
		sync = mode
	}

	base := typePart
	width := DefaultWidth
	if basePart, widthStr, ok := strings.Cut(typePart, "."); ok {
		w, err := strconv.Atoi(widthStr)
		if err != nil {
			return Descriptor{}, fmt.Errorf("%w: bad width %q: %v", ErrFormat, widthStr, err)
		}
		base = basePart
		width = w
	}

	return Descriptor{Base: base, Width: width, Sync: sync}, nil
}
