// Package dialect holds the keyword tables that give a SQL dialect its
// vocabulary.
//
// A dialect only decides which words are keywords (and so get re-cased and act
// as clause anchors) and which keywords behave like functions (and so hug their
// opening bracket). It never changes the grammar the parser understands.
//
// Dialects register themselves from init functions and are looked up by name,
// case-insensitively:
//
//	d, ok := dialect.Get("Oracle")
//	if !ok {
//		return errors.New("unknown dialect")
//	}
//
//	d.IsKeyword("select")  // true
//	d.IsFunction("nvl")    // true
//
// New dialects are usually built on top of an existing one:
//
//	var Custom = dialect.New("custom").
//		Extends(dialect.ANSI).
//		Keywords("QUALIFY").
//		Functions("IFF").
//		Build()
package dialect

import (
	"sort"
	"strings"
	"sync"
)

type (
	// Dialect is an immutable keyword table.
	Dialect struct {
		name      string
		keywords  map[string]struct{}
		functions map[string]struct{}
	}

	// Builder assembles a Dialect. The zero value is not usable; call New.
	Builder struct {
		d *Dialect
	}
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]*Dialect)
)

// New starts building a dialect with the given name.
func New(name string) *Builder {
	return &Builder{d: &Dialect{
		name:      name,
		keywords:  make(map[string]struct{}),
		functions: make(map[string]struct{}),
	}}
}

// Extends copies every keyword and function of base into the dialect.
func (b *Builder) Extends(base *Dialect) *Builder {
	for kw := range base.keywords {
		b.d.keywords[kw] = struct{}{}
	}
	for fn := range base.functions {
		b.d.functions[fn] = struct{}{}
	}

	return b
}

// Keywords adds words to the keyword set.
func (b *Builder) Keywords(words ...string) *Builder {
	for _, w := range words {
		b.d.keywords[strings.ToUpper(w)] = struct{}{}
	}

	return b
}

// Functions adds keywords that are called like functions, e.g. COUNT(*) or
// VARCHAR2(30). Functions are keywords too.
func (b *Builder) Functions(words ...string) *Builder {
	for _, w := range words {
		upper := strings.ToUpper(w)
		b.d.keywords[upper] = struct{}{}
		b.d.functions[upper] = struct{}{}
	}

	return b
}

// Build returns the finished dialect. The builder must not be used afterwards.
func (b *Builder) Build() *Dialect {
	d := b.d
	b.d = nil
	return d
}

// Name returns the dialect's registered name.
func (d *Dialect) Name() string {
	return d.name
}

// IsKeyword reports whether word (in any case) is a keyword of the dialect.
func (d *Dialect) IsKeyword(word string) bool {
	_, ok := d.keywords[strings.ToUpper(word)]
	return ok
}

// IsFunction reports whether word (in any case) is a keyword that takes a
// bracketed argument list directly, without a space before the bracket.
func (d *Dialect) IsFunction(word string) bool {
	_, ok := d.functions[strings.ToUpper(word)]
	return ok
}

// Register makes d available through Get. Registering a second dialect with the
// same name (ignoring case) replaces the first.
func Register(d *Dialect) {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry[strings.ToLower(d.name)] = d
}

// Get looks up a registered dialect by name, ignoring case.
func Get(name string) (*Dialect, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	d, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}

// Names returns the names of all registered dialects in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for _, d := range registry {
		names = append(names, d.name)
	}
	sort.Strings(names)

	return names
}
