// Package object implements commit objects: encoding a commit's
// payload exactly per the core format and decoding it back (the
// parent-chain walk for history display is repository.Log). Adapted
// from the teacher's
// commit.go Decode method, whose ReadSlice('\n')-based header/message
// split is the same shape this format calls for.
package object

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/jacobchin/jacobgit/plumbing/hash"
)

// Commit is a single snapshot pointer plus metadata. This system's
// commit graph has at most one parent per commit; there are no
// merges.
type Commit struct {
	Tree      hash.ObjectID
	Parent    *hash.ObjectID
	Author    Signature
	Committer Signature
	Message   string
}

// Encode renders the commit exactly per the core wire format:
//
//	tree <sha>\n
//	[parent <sha>\n]
//	author <identity> <unix-ts> +0000\n
//	committer <identity> <unix-ts> +0000\n
//	\n
//	<message>
//
// with no trailing newline after the message — the commit SHA depends
// on this being exact.
func (c *Commit) Encode() []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "tree %s\n", c.Tree)
	if c.Parent != nil {
		fmt.Fprintf(&buf, "parent %s\n", c.Parent)
	}
	fmt.Fprintf(&buf, "author %s\n", c.Author)
	fmt.Fprintf(&buf, "committer %s\n", c.Committer)
	buf.WriteByte('\n')
	buf.WriteString(c.Message)

	return buf.Bytes()
}

// ErrMalformed is returned by Decode when a commit payload does not
// parse as a well-formed commit.
var ErrMalformed = fmt.Errorf("object: malformed commit")

// Decode parses a commit payload produced by Encode (or an equivalent
// producer) back into a Commit.
func Decode(payload []byte) (*Commit, error) {
	c := &Commit{}
	r := bufio.NewReader(bytes.NewReader(payload))

	var inMessage bool
	var message bytes.Buffer
	var sawTree bool

	for {
		line, err := r.ReadString('\n')
		atEOF := err == io.EOF

		if !atEOF && err != nil {
			return nil, err
		}

		if !inMessage {
			trimmed := strings.TrimSuffix(line, "\n")
			if trimmed == "" {
				inMessage = true
				if atEOF {
					break
				}
				continue
			}

			parts := strings.SplitN(trimmed, " ", 2)
			if len(parts) != 2 {
				return nil, ErrMalformed
			}

			switch parts[0] {
			case "tree":
				id, err := hash.FromHex(parts[1])
				if err != nil {
					return nil, ErrMalformed
				}
				c.Tree = id
				sawTree = true
			case "parent":
				id, err := hash.FromHex(parts[1])
				if err != nil {
					return nil, ErrMalformed
				}
				c.Parent = &id
			case "author":
				sig, err := parseSignature(parts[1])
				if err != nil {
					return nil, err
				}
				c.Author = sig
			case "committer":
				sig, err := parseSignature(parts[1])
				if err != nil {
					return nil, err
				}
				c.Committer = sig
			}
		} else {
			message.WriteString(line)
		}

		if atEOF {
			break
		}
	}

	if !sawTree {
		return nil, ErrMalformed
	}

	c.Message = message.String()
	return c, nil
}

func parseSignature(s string) (Signature, error) {
	open := strings.LastIndex(s, "<")
	close := strings.LastIndex(s, ">")
	if open < 0 || close < open {
		return Signature{}, ErrMalformed
	}

	name := strings.TrimSpace(s[:open])
	email := s[open+1 : close]

	rest := strings.TrimSpace(s[close+1:])
	fields := strings.Fields(rest)
	if len(fields) < 1 {
		return Signature{}, ErrMalformed
	}

	var when int64
	if _, err := fmt.Sscanf(fields[0], "%d", &when); err != nil {
		return Signature{}, ErrMalformed
	}

	return Signature{Name: name, Email: email, When: when}, nil
}
