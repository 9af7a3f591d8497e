package object

import "fmt"

// Signature identifies the author or committer of a commit, grounded
// on the teacher's object/signature.go shape but reduced to the
// name/email/timestamp fields this system's author lines carry (no
// timezone beyond the literal +0000 the commit format always writes).
type Signature struct {
	Name  string
	Email string
	When  int64 // unix seconds
}

// String renders the signature exactly as it appears in a commit
// payload: "Name <email> <unix-ts> +0000".
func (s Signature) String() string {
	return fmt.Sprintf("%s <%s> %d +0000", s.Name, s.Email, s.When)
}
