package graph

// Symbol is a unique, named token usable as a Parameter key or cache
// key, distinct from a plain string even when the names collide.
// Equality is pointer identity, never name equality — two Symbols
// created with the same name are different keys, mirroring the
// source's use of JavaScript Symbols for collision-free identifiers.
type Symbol struct {
	name string
}

// NewSymbol creates a fresh, uniquely-identified Symbol labeled name.
func NewSymbol(name string) *Symbol {
	return &Symbol{name: name}
}

// String returns the Symbol's human-readable label.
func (s *Symbol) String() string {
	return s.name
}
