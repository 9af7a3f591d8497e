package objfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/jacobchin/jacobgit/plumbing/object"
)

// ErrCorrupt is returned when an object file's header is missing its
// NUL terminator or does not parse as "<type> <decimal-length>".
var ErrCorrupt = fmt.Errorf("objfile: corrupt object header")

// Reader parses the framed header off of r and then exposes the
// payload as the remainder of the stream.
type Reader struct {
	r    *bufio.Reader
	typ  object.Type
	size int64
}

// NewReader reads and validates the header from r, returning a Reader
// positioned at the start of the payload.
func NewReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReader(r)

	header, err := br.ReadString(0)
	if err != nil {
		if err == io.EOF {
			return nil, ErrCorrupt
		}
		return nil, err
	}
	header = header[:len(header)-1] // drop the NUL

	typ, size, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	return &Reader{r: br, typ: typ, size: size}, nil
}

func parseHeader(header string) (object.Type, int64, error) {
	var i int
	for i = 0; i < len(header); i++ {
		if header[i] == ' ' {
			break
		}
	}
	if i == 0 || i == len(header) {
		return object.InvalidObject, 0, ErrCorrupt
	}

	typ := object.ParseType(header[:i])
	if !typ.Valid() {
		return object.InvalidObject, 0, ErrCorrupt
	}

	size, err := strconv.ParseInt(header[i+1:], 10, 64)
	if err != nil {
		return object.InvalidObject, 0, ErrCorrupt
	}

	return typ, size, nil
}

// Type returns the object's declared type.
func (r *Reader) Type() object.Type { return r.typ }

// Size returns the object's declared payload length. It is not
// validated against the actual number of bytes available; callers
// that need the exact payload should read until EOF.
func (r *Reader) Size() int64 { return r.size }

// Read reads payload bytes.
func (r *Reader) Read(p []byte) (int, error) {
	return r.r.Read(p)
}

// Payload reads the entire remaining payload into memory.
func (r *Reader) Payload() ([]byte, error) {
	return io.ReadAll(r.r)
}
