package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolDemangler_Demangle(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		want   string
	}{
		{"plain name", "main", "main"},
		{"already demangled path", "lib::is_big", "lib::is_big"},
		{"rust legacy", "_ZN3lib6is_big17h0123456789abcdefE", "lib::is_big"},
		{"itanium", "_Z3addii", "add(int, int)"},
		{"not a symbol", "_Zfoo", "_Zfoo"},
	}

	d := NewSymbolDemangler()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Demangle(tt.symbol))
		})
	}
}

func TestSymbolDemangler_RustV0(t *testing.T) {
	got := NewSymbolDemangler().Demangle("_RNvCs1234_3lib6is_big")

	assert.Contains(t, got, "lib")
	assert.Contains(t, got, "is_big")
	assert.NotContains(t, got, "_R")
}
