package adapter

import (
	"regexp"

	"github.com/ianlancetaylor/demangle"
)

// Demangler turns linker symbol names back into source-level paths.
type Demangler interface {
	Demangle(name string) string
}

var rustHashSuffix = regexp.MustCompile(`::h[0-9a-f]{16}$`)

// SymbolDemangler demangles Rust (legacy and v0) and Itanium C++ symbols.
// Names that are not mangled are returned unchanged.
type SymbolDemangler struct{}

// NewSymbolDemangler constructs a SymbolDemangler.
func NewSymbolDemangler() *SymbolDemangler {
	return &SymbolDemangler{}
}

// Demangle returns the demangled form of name without the Rust hash suffix.
func (d *SymbolDemangler) Demangle(name string) string {
	return rustHashSuffix.ReplaceAllString(demangle.Filter(name), "")
}
