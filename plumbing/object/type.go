// Package object defines the three object kinds the store understands
// and the header token each kind writes into an object's framed
// header.
package object

import "fmt"

// Type identifies the kind of payload an object holds.
type Type int8

const (
	InvalidObject Type = iota
	BlobObject
	TreeObject
	CommitObject
)

func (t Type) String() string {
	switch t {
	case BlobObject:
		return "blob"
	case TreeObject:
		return "tree"
	case CommitObject:
		return "commit"
	default:
		return "invalid"
	}
}

// Bytes returns the textual header token for this type, as written
// into an object's framed header.
func (t Type) Bytes() []byte {
	return []byte(t.String())
}

// Valid reports whether t is one of the three concrete kinds.
func (t Type) Valid() bool {
	return t == BlobObject || t == TreeObject || t == CommitObject
}

// ParseType parses the textual header token produced by Bytes back
// into a Type. An unrecognized token yields InvalidObject.
func ParseType(s string) Type {
	switch s {
	case "blob":
		return BlobObject
	case "tree":
		return TreeObject
	case "commit":
		return CommitObject
	default:
		return InvalidObject
	}
}

// ErrUnsupportedType is returned when decoding logic receives an
// object whose type does not match what it expects.
type ErrUnsupportedType struct {
	Got Type
}

func (e *ErrUnsupportedType) Error() string {
	return fmt.Sprintf("object: unsupported type %q", e.Got)
}
