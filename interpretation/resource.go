package interpretation

import (
	"fmt"
	"hash/maphash"

	"github.com/c360/semterms/term"
)

// Resource is a dense index denoting one interpreted entity. Resources
// are only meaningful to the interpretation that issued them.
type Resource uint64

// Compare orders resources numerically.
func (r Resource) Compare(other Resource) int {
	switch {
	case r < other:
		return -1
	case r > other:
		return 1
	default:
		return 0
	}
}

// Hash returns a seed-keyed hash of the index.
func (r Resource) Hash(seed maphash.Seed) uint64 {
	return term.HashUint64(seed, uint64(r))
}

// String returns the index in debug form.
func (r Resource) String() string {
	return fmt.Sprintf("resource(%d)", uint64(r))
}

// Statement instantiations over resources. Once interpreted, every
// position of a statement is a resource; the identifier versus
// literal split disappears.

// Triple is a fully interpreted statement.
type Triple = term.Triple[Resource, Resource, Resource]

// Quad is a fully interpreted statement with an optional resource
// graph label.
type Quad = term.Quad[Resource, Resource, Resource, Resource]
