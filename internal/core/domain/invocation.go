package domain

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Invocation is an ordered build system command line. Args[0] is the program.
type Invocation struct {
	Args []string
}

// Program returns the executable name, or "" for an empty invocation.
func (i Invocation) Program() string {
	if len(i.Args) == 0 {
		return ""
	}
	return i.Args[0]
}

// String renders the invocation the way a shell user would type it.
func (i Invocation) String() string {
	return strings.Join(i.Args, " ")
}

// Digest returns a stable fingerprint of the argument list.
// Identical invocations share a digest, which groups install history entries.
func (i Invocation) Digest() string {
	h := xxhash.New()
	for _, arg := range i.Args {
		_, _ = h.WriteString(arg)
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
