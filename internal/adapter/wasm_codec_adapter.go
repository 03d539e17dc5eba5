// Package adapter contains the infrastructure adapters of the wasmut CLI:
// the binary module codec, the execution oracle, symbol demangling and
// file-system backed stores.
package adapter

import (
	"bytes"
	"errors"
	"fmt"

	m "gooze.dev/pkg/wasmut/internal/model"
	"gooze.dev/pkg/wasmut/pkg"
)

var (
	// ErrInvalidModule is returned when the input is not a well-formed binary module.
	ErrInvalidModule = errors.New("invalid wasm module")
	// ErrUnsupportedInstruction is returned for instructions the codec cannot size.
	ErrUnsupportedInstruction = errors.New("unsupported instruction")
)

const (
	sectionCustom byte = 0
	sectionImport byte = 2
	sectionCode   byte = 10

	importKindFunc   byte = 0
	importKindTable  byte = 1
	importKindMemory byte = 2
	importKindGlobal byte = 3
	importKindTag    byte = 4

	nameSubsectionFunctions byte = 1
)

var wasmHeader = []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}

// ModuleCodec converts between the binary encoding and the decoded module.
// Decode followed by Encode preserves function indices, bodies and every
// section other than the code section byte for byte.
type ModuleCodec interface {
	Decode(data []byte) (*m.Module, error)
	Encode(module *m.Module) ([]byte, error)
}

// WasmCodecAdapter is the ModuleCodec for the WebAssembly binary format.
type WasmCodecAdapter struct{}

// NewWasmCodecAdapter constructs a WasmCodecAdapter.
func NewWasmCodecAdapter() *WasmCodecAdapter {
	return &WasmCodecAdapter{}
}

// Decode parses data. The returned module does not alias data.
func (a *WasmCodecAdapter) Decode(data []byte) (*m.Module, error) {
	if len(data) < len(wasmHeader) || !bytes.Equal(data[:len(wasmHeader)], wasmHeader) {
		return nil, fmt.Errorf("%w: bad magic or version", ErrInvalidModule)
	}

	module := &m.Module{CodeSection: -1}
	r := newByteReader(data[len(wasmHeader):])

	var names []byte

	for !r.done() {
		id, err := r.readByte()
		if err != nil {
			return nil, err
		}

		size, err := r.u32()
		if err != nil {
			return nil, err
		}

		payload, err := r.readBytes(int(size))
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", id, err)
		}

		payload = append([]byte(nil), payload...)

		switch id {
		case sectionImport:
			module.ImportedFunctions, err = countImportedFunctions(payload)
		case sectionCode:
			module.CodeSection = len(module.Sections)
			module.Functions, err = decodeCodeSection(payload)
		case sectionCustom:
			if isNameSection(payload) {
				names = payload
			}
		}

		if err != nil {
			return nil, fmt.Errorf("section %d: %w", id, err)
		}

		module.Sections = append(module.Sections, m.Section{ID: id, Payload: payload})
	}

	if names != nil {
		var err error

		module.Names, err = decodeFunctionNames(names, module.ImportedFunctions)
		if err != nil {
			return nil, fmt.Errorf("name section: %w", err)
		}
	}

	return module, nil
}

// Encode serialises module. Only the code section is rebuilt from Functions.
func (a *WasmCodecAdapter) Encode(module *m.Module) ([]byte, error) {
	if module == nil {
		return nil, fmt.Errorf("%w: nil module", ErrInvalidModule)
	}

	if module.CodeSection >= len(module.Sections) {
		return nil, fmt.Errorf("%w: code section index %d out of range", ErrInvalidModule, module.CodeSection)
	}

	if module.CodeSection < 0 && len(module.Functions) > 0 {
		return nil, fmt.Errorf("%w: functions without a code section", ErrInvalidModule)
	}

	out := append([]byte(nil), wasmHeader...)

	for i, section := range module.Sections {
		payload := section.Payload
		if i == module.CodeSection {
			payload = encodeCodeSection(module.Functions)
		}

		out = append(out, section.ID)
		out = pkg.AppendULEB128(out, uint64(len(payload)))
		out = append(out, payload...)
	}

	return out, nil
}

func countImportedFunctions(payload []byte) (uint32, error) {
	r := newByteReader(payload)

	count, err := r.u32()
	if err != nil {
		return 0, err
	}

	var funcs uint32

	for range count {
		if _, err := r.name(); err != nil {
			return 0, err
		}

		if _, err := r.name(); err != nil {
			return 0, err
		}

		kind, err := r.readByte()
		if err != nil {
			return 0, err
		}

		switch kind {
		case importKindFunc:
			funcs++
			_, err = r.u32()
		case importKindTable:
			if err = r.valType(); err == nil {
				err = r.limits()
			}
		case importKindMemory:
			err = r.limits()
		case importKindGlobal:
			if err = r.valType(); err == nil {
				_, err = r.readByte()
			}
		case importKindTag:
			if _, err = r.readByte(); err == nil {
				_, err = r.u32()
			}
		default:
			err = fmt.Errorf("%w: import kind 0x%02x", ErrInvalidModule, kind)
		}

		if err != nil {
			return 0, err
		}
	}

	return funcs, nil
}

func decodeCodeSection(payload []byte) ([]m.Function, error) {
	r := newByteReader(payload)

	count, err := r.u32()
	if err != nil {
		return nil, err
	}

	functions := make([]m.Function, 0, count)

	for i := range int(count) {
		size, err := r.u32()
		if err != nil {
			return nil, fmt.Errorf("function %d: %w", i, err)
		}

		code, err := r.readBytes(int(size))
		if err != nil {
			return nil, fmt.Errorf("function %d: %w", i, err)
		}

		body, err := decodeBody(code)
		if err != nil {
			return nil, fmt.Errorf("function %d: %w", i, err)
		}

		functions = append(functions, m.Function{Index: i, Body: body})
	}

	if !r.done() {
		return nil, fmt.Errorf("%w: %d trailing bytes in code section", ErrInvalidModule, r.remaining())
	}

	return functions, nil
}

func decodeBody(code []byte) (m.Body, error) {
	r := newByteReader(code)

	groups, err := r.u32()
	if err != nil {
		return m.Body{}, err
	}

	for range groups {
		if _, err := r.u32(); err != nil {
			return m.Body{}, err
		}

		if err := r.valType(); err != nil {
			return m.Body{}, err
		}
	}

	instructions, err := decodeInstructions(code[r.pos:])
	if err != nil {
		return m.Body{}, err
	}

	if len(instructions) == 0 || instructions[len(instructions)-1].Opcode != m.OpEnd {
		return m.Body{}, fmt.Errorf("%w: function body does not end with end", ErrInvalidModule)
	}

	return m.Body{
		Locals:       append([]byte(nil), code[:r.pos]...),
		Instructions: instructions,
	}, nil
}

func encodeCodeSection(functions []m.Function) []byte {
	out := pkg.AppendULEB128(nil, uint64(len(functions)))

	for _, fn := range functions {
		body := append([]byte(nil), fn.Body.Locals...)
		body = appendInstructions(body, fn.Body.Instructions)

		out = pkg.AppendULEB128(out, uint64(len(body)))
		out = append(out, body...)
	}

	return out
}

func isNameSection(payload []byte) bool {
	name, err := newByteReader(payload).name()
	return err == nil && name == "name"
}

// decodeFunctionNames reads the function-names subsection and rebases the
// indices onto defined functions. Imported functions are not mutable and are
// left out. A name section without that subsection yields an empty map.
func decodeFunctionNames(payload []byte, imported uint32) (map[int]string, error) {
	r := newByteReader(payload)
	if _, err := r.name(); err != nil {
		return nil, err
	}

	names := map[int]string{}

	for !r.done() {
		id, err := r.readByte()
		if err != nil {
			return nil, err
		}

		size, err := r.u32()
		if err != nil {
			return nil, err
		}

		content, err := r.readBytes(int(size))
		if err != nil {
			return nil, err
		}

		if id != nameSubsectionFunctions {
			continue
		}

		sub := newByteReader(content)

		count, err := sub.u32()
		if err != nil {
			return nil, err
		}

		for range count {
			idx, err := sub.u32()
			if err != nil {
				return nil, err
			}

			name, err := sub.name()
			if err != nil {
				return nil, err
			}

			if idx >= imported {
				names[int(idx-imported)] = name
			}
		}
	}

	return names, nil
}
