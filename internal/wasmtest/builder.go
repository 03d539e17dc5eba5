// Package wasmtest assembles small binary modules for tests.
package wasmtest

import (
	"bytes"

	m "gooze.dev/pkg/wasmut/internal/model"
	"gooze.dev/pkg/wasmut/pkg"
)

// ValType is a numeric value type.
type ValType byte

// Value types.
const (
	I32 ValType = 0x7F
	I64 ValType = 0x7E
	F32 ValType = 0x7D
	F64 ValType = 0x7C
)

// Func describes a defined function. Body must not include the final end.
type Func struct {
	Name    string
	Params  []ValType
	Results []ValType
	Locals  []ValType
	Body    []m.Instruction
	Export  string
}

// Import describes an imported function.
type Import struct {
	Module  string
	Name    string
	Params  []ValType
	Results []ValType
}

// Builder collects functions and emits a module.
type Builder struct {
	types   [][]byte
	imports []Import
	funcs   []Func
	memory  bool
	noNames bool
	custom  [][]byte
}

// New returns an empty builder.
func New() *Builder {
	return &Builder{}
}

// Import adds an imported function and returns its function index.
func (b *Builder) Import(imp Import) uint32 {
	b.imports = append(b.imports, imp)
	return uint32(len(b.imports) - 1)
}

// Func adds a defined function and returns its index in the function index
// space (imports first). Imports must be added before functions.
func (b *Builder) Func(fn Func) uint32 {
	b.funcs = append(b.funcs, fn)
	return uint32(len(b.imports) + len(b.funcs) - 1)
}

// Memory declares one page of linear memory.
func (b *Builder) Memory() *Builder {
	b.memory = true
	return b
}

// WithoutNames omits the name section.
func (b *Builder) WithoutNames() *Builder {
	b.noNames = true
	return b
}

// Custom appends a custom section with the given name and content.
func (b *Builder) Custom(name string, content []byte) *Builder {
	payload := appendName(nil, name)
	b.custom = append(b.custom, append(payload, content...))

	return b
}

// Bytes encodes the module.
func (b *Builder) Bytes() []byte {
	out := []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}

	importTypes := make([]uint32, len(b.imports))
	for i, imp := range b.imports {
		importTypes[i] = b.typeIndex(imp.Params, imp.Results)
	}

	funcTypes := make([]uint32, len(b.funcs))
	for i, fn := range b.funcs {
		funcTypes[i] = b.typeIndex(fn.Params, fn.Results)
	}

	out = appendSection(out, 1, vector(len(b.types), func(dst []byte, i int) []byte {
		return append(dst, b.types[i]...)
	}))

	if len(b.imports) > 0 {
		out = appendSection(out, 2, vector(len(b.imports), func(dst []byte, i int) []byte {
			dst = appendName(dst, b.imports[i].Module)
			dst = appendName(dst, b.imports[i].Name)
			dst = append(dst, 0x00)

			return pkg.AppendULEB128(dst, uint64(importTypes[i]))
		}))
	}

	out = appendSection(out, 3, vector(len(b.funcs), func(dst []byte, i int) []byte {
		return pkg.AppendULEB128(dst, uint64(funcTypes[i]))
	}))

	if b.memory {
		out = appendSection(out, 5, []byte{0x01, 0x00, 0x01})
	}

	exports := 0
	exportSection := []byte{}

	for i, fn := range b.funcs {
		if fn.Export == "" {
			continue
		}

		exports++
		exportSection = appendName(exportSection, fn.Export)
		exportSection = append(exportSection, 0x00)
		exportSection = pkg.AppendULEB128(exportSection, uint64(len(b.imports)+i))
	}

	if exports > 0 {
		out = appendSection(out, 7, append(pkg.AppendULEB128(nil, uint64(exports)), exportSection...))
	}

	out = appendSection(out, 10, vector(len(b.funcs), func(dst []byte, i int) []byte {
		body := encodeBody(b.funcs[i])
		dst = pkg.AppendULEB128(dst, uint64(len(body)))

		return append(dst, body...)
	}))

	for _, custom := range b.custom {
		out = appendSection(out, 0, custom)
	}

	if !b.noNames {
		out = appendSection(out, 0, b.nameSection())
	}

	return out
}

func (b *Builder) typeIndex(params, results []ValType) uint32 {
	sig := []byte{0x60}
	sig = appendValTypes(sig, params)
	sig = appendValTypes(sig, results)

	for i, existing := range b.types {
		if bytes.Equal(existing, sig) {
			return uint32(i)
		}
	}

	b.types = append(b.types, sig)

	return uint32(len(b.types) - 1)
}

func (b *Builder) nameSection() []byte {
	var entries []byte

	count := 0

	for i, imp := range b.imports {
		count++
		entries = pkg.AppendULEB128(entries, uint64(i))
		entries = appendName(entries, imp.Name)
	}

	for i, fn := range b.funcs {
		if fn.Name == "" {
			continue
		}

		count++
		entries = pkg.AppendULEB128(entries, uint64(len(b.imports)+i))
		entries = appendName(entries, fn.Name)
	}

	subsection := append(pkg.AppendULEB128(nil, uint64(count)), entries...)

	payload := appendName(nil, "name")
	payload = append(payload, 0x01)
	payload = pkg.AppendULEB128(payload, uint64(len(subsection)))

	return append(payload, subsection...)
}

func encodeBody(fn Func) []byte {
	body := pkg.AppendULEB128(nil, uint64(len(fn.Locals)))
	for _, local := range fn.Locals {
		body = append(body, 0x01, byte(local))
	}

	for _, ins := range fn.Body {
		body = AppendInstruction(body, ins)
	}

	return append(body, byte(m.OpEnd))
}

// AppendInstruction appends the binary encoding of ins.
func AppendInstruction(dst []byte, ins m.Instruction) []byte {
	if ins.Opcode.IsPrefixed() {
		dst = append(dst, ins.Opcode.Prefix())
		dst = pkg.AppendULEB128(dst, uint64(ins.Opcode.Sub()))
	} else {
		dst = append(dst, byte(ins.Opcode))
	}

	return append(dst, ins.Immediate...)
}

func appendSection(dst []byte, id byte, payload []byte) []byte {
	dst = append(dst, id)
	dst = pkg.AppendULEB128(dst, uint64(len(payload)))

	return append(dst, payload...)
}

func vector(n int, item func(dst []byte, i int) []byte) []byte {
	out := pkg.AppendULEB128(nil, uint64(n))
	for i := range n {
		out = item(out, i)
	}

	return out
}

func appendName(dst []byte, name string) []byte {
	dst = pkg.AppendULEB128(dst, uint64(len(name)))
	return append(dst, name...)
}

func appendValTypes(dst []byte, types []ValType) []byte {
	dst = pkg.AppendULEB128(dst, uint64(len(types)))
	for _, t := range types {
		dst = append(dst, byte(t))
	}

	return dst
}
