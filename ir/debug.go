package ir

import "github.com/google/uuid"

// NewDebugTag returns a short random tag (the first 8 characters of a
// random UUID) for telling apart debug output, such as raw (pre-resolve) IR
// dumps from separate runs written to one log: Unique identifiers print as
// "$<n>" tokens whose numbers are only distinct within one process. Not
// used on any compile/parse/generate hot path.
func NewDebugTag() string {
	return uuid.New().String()[:8]
}
