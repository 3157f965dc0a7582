package component

import (
	"fmt"
	"strings"
)

const DefaultNamespace = "minecraft"

// Identifier is a namespaced resource location such as "minecraft:uniform".
// An empty Namespace is kept empty so that partial identifiers round-trip.
type Identifier struct {
	Namespace string
	Path      string
}

func NewIdentifier(namespace, path string) Identifier {
	return Identifier{Namespace: namespace, Path: path}
}

func ParseIdentifier(s string) (Identifier, error) {
	ns, path, found := strings.Cut(s, ":")
	if !found {
		return Identifier{Path: s}, nil
	}
	if strings.Contains(path, ":") {
		return Identifier{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, s)
	}
	return Identifier{Namespace: ns, Path: path}, nil
}

func (id Identifier) String() string {
	if id.Namespace == "" {
		return id.Path
	}
	return id.Namespace + ":" + id.Path
}

// Full returns the identifier with the default namespace filled in.
func (id Identifier) Full() string {
	if id.Namespace == "" {
		return DefaultNamespace + ":" + id.Path
	}
	return id.String()
}

// Same reports whether both identifiers resolve to the same resource.
func (id Identifier) Same(other Identifier) bool {
	return id.Full() == other.Full()
}
