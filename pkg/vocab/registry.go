package vocab

import (
	"fmt"
	"sort"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// Entry is the type-erased view of a vocabulary held by the registry.
type Entry interface {
	Name() string
	Namespace() string
	Symbols() []string
	SymbolURI(symbol string) (string, bool)
	URISymbol(uri string) (string, bool)
	UnknownSymbol() (string, bool)
}

// Match is a registry hit for a URI.
type Match struct {
	Vocabulary string `json:"vocabulary" yaml:"vocabulary"`
	Symbol     string `json:"symbol" yaml:"symbol"`
	URI        string `json:"uri" yaml:"uri"`
}

// Global vocabulary registry
var (
	registryMu sync.RWMutex
	registry   = make(map[string]Entry)
)

// Register adds a vocabulary to the global registry. Names are unique.
func Register(e Entry) error {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[e.Name()]; exists {
		return fmt.Errorf("vocabulary %s is already registered", e.Name())
	}
	registry[e.Name()] = e
	return nil
}

// MustRegister is like Register but panics on a duplicate name.
func MustRegister(e Entry) {
	if err := Register(e); err != nil {
		panic(err)
	}
}

// Get returns the registered vocabulary with the given name.
func Get(name string) (Entry, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	e, ok := registry[name]
	return e, ok
}

// Names returns the sorted names of all registered vocabularies.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns every registered member bound to uri, ordered by
// vocabulary name. The same URI may legitimately belong to several
// vocabularies (http://gedcomx.org/Couple is both a relationship type and a
// change object modifier).
func Lookup(uri string) []Match {
	var matches []Match
	for _, name := range Names() {
		e, _ := Get(name)
		if symbol, ok := e.URISymbol(uri); ok {
			matches = append(matches, Match{Vocabulary: name, Symbol: symbol, URI: uri})
		}
	}
	return matches
}

// Validate checks that every registered vocabulary is a bijection between
// its symbols and URIs. All violations are reported together.
func Validate() error {
	var result *multierror.Error

	for _, name := range Names() {
		e, _ := Get(name)
		if err := ValidateEntry(e); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}

// ValidateEntry checks a single vocabulary.
func ValidateEntry(e Entry) error {
	var result *multierror.Error

	seen := make(map[string]string)
	for _, symbol := range e.Symbols() {
		uri, ok := e.SymbolURI(symbol)
		if !ok {
			result = multierror.Append(result,
				fmt.Errorf("%s: member %q has no uri", e.Name(), symbol))
			continue
		}
		if other, dup := seen[uri]; dup {
			result = multierror.Append(result,
				fmt.Errorf("%s: %s is bound to %q and %q", e.Name(), uri, other, symbol))
		}
		seen[uri] = symbol

		back, ok := e.URISymbol(uri)
		if !ok || back != symbol {
			result = multierror.Append(result,
				fmt.Errorf("%s: %s resolves to %q, want %q", e.Name(), uri, back, symbol))
		}
	}

	if unknown, ok := e.UnknownSymbol(); ok {
		if _, declared := e.SymbolURI(unknown); !declared {
			result = multierror.Append(result,
				fmt.Errorf("%s: sentinel %q is not declared", e.Name(), unknown))
		}
	}

	return result.ErrorOrNil()
}
