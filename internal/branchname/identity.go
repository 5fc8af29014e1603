package branchname

// Identity is the structured form of a managed branch.
type Identity struct {
	// Prefix is the namespace tag. It is only meaningful when HasPrefix is true.
	Prefix    string
	HasPrefix bool
	// Base is the feature name shared by every branch of a stack.
	Base     string
	Position Position
}

// IsSibling reports whether both identities belong to the same stack.
func (id Identity) IsSibling(other Identity) bool {
	return id.Base == other.Base
}

// WithPosition returns a copy of the identity at another stack position.
func (id Identity) WithPosition(p Position) Identity {
	id.Position = p
	return id
}

// WithBase returns a copy of the identity renamed to base.
func (id Identity) WithBase(base string) Identity {
	id.Base = base
	return id
}

// WithPrefix returns a copy of the identity in the given namespace.
func (id Identity) WithPrefix(prefix string) Identity {
	id.Prefix = prefix
	id.HasPrefix = true
	return id
}
