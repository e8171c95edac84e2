package vocab

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

// Definition declares the members of a vocabulary.
type Definition[T ~string] struct {
	// Name identifies the vocabulary in the registry and in errors.
	Name string

	// Namespace is prepended to every member symbol to form its URI.
	Namespace string

	// Members lists the declared symbols in declaration order.
	Members []T

	// Namespaces overrides the namespace of individual members.
	Namespaces map[T]string

	// Unknown is the sentinel member returned for unmapped URIs.
	// The zero value means the vocabulary has no sentinel.
	Unknown T
}

// Vocabulary is an immutable bidirectional symbol <-> URI table.
type Vocabulary[T ~string] struct {
	name      string
	namespace string
	members   []T
	unknown   T
	toURI     map[T]string
	fromURI   map[string]T
}

// New builds a vocabulary from its definition. It fails when the definition
// is empty, declares a symbol or URI twice, or names an undeclared sentinel.
func New[T ~string](def Definition[T]) (*Vocabulary[T], error) {
	if def.Name == "" {
		return nil, fmt.Errorf("vocabulary name is required")
	}
	if len(def.Members) == 0 {
		return nil, fmt.Errorf("vocabulary %s declares no members", def.Name)
	}

	v := &Vocabulary[T]{
		name:      def.Name,
		namespace: def.Namespace,
		members:   make([]T, 0, len(def.Members)),
		unknown:   def.Unknown,
		toURI:     make(map[T]string, len(def.Members)),
		fromURI:   make(map[string]T, len(def.Members)),
	}

	for _, m := range def.Members {
		if m == "" {
			return nil, fmt.Errorf("vocabulary %s declares an empty member", def.Name)
		}
		if _, dup := v.toURI[m]; dup {
			return nil, fmt.Errorf("vocabulary %s declares %q twice", def.Name, m)
		}

		ns := def.Namespace
		if override, ok := def.Namespaces[m]; ok {
			ns = override
		}
		uri := ns + string(m)
		if other, dup := v.fromURI[uri]; dup {
			return nil, fmt.Errorf("vocabulary %s binds %s to both %q and %q", def.Name, uri, other, m)
		}

		v.members = append(v.members, m)
		v.toURI[m] = uri
		v.fromURI[uri] = m
	}

	for m := range def.Namespaces {
		if _, ok := v.toURI[m]; !ok {
			return nil, fmt.Errorf("vocabulary %s overrides the namespace of undeclared member %q", def.Name, m)
		}
	}

	if def.Unknown != "" {
		if _, ok := v.toURI[def.Unknown]; !ok {
			return nil, fmt.Errorf("vocabulary %s sentinel %q is not a declared member", def.Name, def.Unknown)
		}
	}

	return v, nil
}

// MustNew is like New but panics on an invalid definition. It is intended
// for package-level vocabulary declarations.
func MustNew[T ~string](def Definition[T]) *Vocabulary[T] {
	v, err := New(def)
	if err != nil {
		panic(err)
	}
	return v
}

// Define builds a vocabulary and adds it to the global registry.
func Define[T ~string](def Definition[T]) *Vocabulary[T] {
	v := MustNew(def)
	MustRegister(v)
	return v
}

// Name returns the vocabulary name.
func (v *Vocabulary[T]) Name() string {
	return v.name
}

// Namespace returns the default namespace of the vocabulary.
func (v *Vocabulary[T]) Namespace() string {
	return v.namespace
}

// Members returns the declared members in declaration order.
func (v *Vocabulary[T]) Members() []T {
	out := make([]T, len(v.members))
	copy(out, v.members)
	return out
}

// Unknown returns the sentinel member, if the vocabulary declares one.
func (v *Vocabulary[T]) Unknown() (T, bool) {
	return v.unknown, v.unknown != ""
}

// Contains reports whether m is a declared member.
func (v *Vocabulary[T]) Contains(m T) bool {
	_, ok := v.toURI[m]
	return ok
}

// ToURI returns the URI bound to m.
func (v *Vocabulary[T]) ToURI(m T) (string, error) {
	uri, ok := v.toURI[m]
	if !ok {
		return "", &LookupError{Vocabulary: v.name, Value: string(m), Err: ErrUndeclaredMember}
	}
	return uri, nil
}

// FromURI returns the member bound to uri. Unmapped URIs resolve to the
// unknown sentinel when there is one.
func (v *Vocabulary[T]) FromURI(uri string) (T, error) {
	if m, ok := v.fromURI[uri]; ok {
		return m, nil
	}
	if v.unknown != "" {
		return v.unknown, nil
	}
	var zero T
	return zero, &LookupError{Vocabulary: v.name, Value: uri, Err: ErrUnmappedURI}
}

// ParseName resolves a symbol leniently: "ReservedPrinted",
// "reserved-printed" and "reserved_printed" all name the same member.
func (v *Vocabulary[T]) ParseName(name string) (T, error) {
	if m := T(name); v.Contains(m) {
		return m, nil
	}

	normalized := strcase.ToCamel(name)
	for _, m := range v.members {
		if strings.EqualFold(string(m), normalized) {
			return m, nil
		}
	}

	var zero T
	return zero, &LookupError{Vocabulary: v.name, Value: name, Err: ErrUnknownName}
}

// Symbols implements Entry.
func (v *Vocabulary[T]) Symbols() []string {
	out := make([]string, len(v.members))
	for i, m := range v.members {
		out[i] = string(m)
	}
	return out
}

// SymbolURI implements Entry.
func (v *Vocabulary[T]) SymbolURI(symbol string) (string, bool) {
	uri, ok := v.toURI[T(symbol)]
	return uri, ok
}

// URISymbol implements Entry. Unlike FromURI it never falls back to the
// unknown sentinel.
func (v *Vocabulary[T]) URISymbol(uri string) (string, bool) {
	m, ok := v.fromURI[uri]
	return string(m), ok
}

// UnknownSymbol implements Entry.
func (v *Vocabulary[T]) UnknownSymbol() (string, bool) {
	return string(v.unknown), v.unknown != ""
}
