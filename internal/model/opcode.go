package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Opcode identifies a WebAssembly instruction. Single-byte opcodes use their
// byte value; prefixed opcodes (0xFB-0xFE) keep the prefix in the top byte and
// the LEB128 sub-opcode in the low 24 bits.
type Opcode uint32

// Prefix bytes of multi-byte opcodes.
const (
	PrefixGC     byte = 0xFB
	PrefixMisc   byte = 0xFC
	PrefixSIMD   byte = 0xFD
	PrefixAtomic byte = 0xFE
)

// Prefixed memory stores. Each pops an address and a value like the scalar
// stores.
const (
	OpV128Store        Opcode = 0xFD<<24 | 0x0B
	OpV128Store8Lane   Opcode = 0xFD<<24 | 0x58
	OpV128Store16Lane  Opcode = 0xFD<<24 | 0x59
	OpV128Store32Lane  Opcode = 0xFD<<24 | 0x5A
	OpV128Store64Lane  Opcode = 0xFD<<24 | 0x5B
	OpI32AtomicStore   Opcode = 0xFE<<24 | 0x17
	OpI64AtomicStore   Opcode = 0xFE<<24 | 0x18
	OpI32AtomicStore8  Opcode = 0xFE<<24 | 0x19
	OpI32AtomicStore16 Opcode = 0xFE<<24 | 0x1A
	OpI64AtomicStore8  Opcode = 0xFE<<24 | 0x1B
	OpI64AtomicStore16 Opcode = 0xFE<<24 | 0x1C
	OpI64AtomicStore32 Opcode = 0xFE<<24 | 0x1D
)

// Prefixed builds the opcode for a prefixed instruction.
func Prefixed(prefix byte, sub uint32) Opcode {
	return Opcode(uint32(prefix)<<24 | sub&0xFFFFFF)
}

// IsPrefixed reports whether the opcode is encoded with a prefix byte.
func (o Opcode) IsPrefixed() bool {
	return o > 0xFF
}

// Prefix returns the prefix byte, or the opcode byte itself when unprefixed.
func (o Opcode) Prefix() byte {
	if o.IsPrefixed() {
		return byte(o >> 24)
	}

	return byte(o)
}

// Sub returns the sub-opcode of a prefixed opcode.
func (o Opcode) Sub() uint32 {
	return uint32(o) & 0xFFFFFF
}

// Control and parametric instructions.
const (
	OpUnreachable  Opcode = 0x00
	OpNop          Opcode = 0x01
	OpBlock        Opcode = 0x02
	OpLoop         Opcode = 0x03
	OpIf           Opcode = 0x04
	OpElse         Opcode = 0x05
	OpTry          Opcode = 0x06
	OpCatch        Opcode = 0x07
	OpThrow        Opcode = 0x08
	OpRethrow      Opcode = 0x09
	OpThrowRef     Opcode = 0x0A
	OpEnd          Opcode = 0x0B
	OpBr           Opcode = 0x0C
	OpBrIf         Opcode = 0x0D
	OpBrTable      Opcode = 0x0E
	OpReturn       Opcode = 0x0F
	OpCall         Opcode = 0x10
	OpCallIndirect Opcode = 0x11
	OpReturnCall   Opcode = 0x12
	OpReturnCallIn Opcode = 0x13
	OpCallRef      Opcode = 0x14
	OpReturnCallRf Opcode = 0x15
	OpDelegate     Opcode = 0x18
	OpCatchAll     Opcode = 0x19
	OpDrop         Opcode = 0x1A
	OpSelect       Opcode = 0x1B
	OpSelectTyped  Opcode = 0x1C
	OpTryTable     Opcode = 0x1F
)

// Variable, table and memory instructions.
const (
	OpLocalGet    Opcode = 0x20
	OpLocalSet    Opcode = 0x21
	OpLocalTee    Opcode = 0x22
	OpGlobalGet   Opcode = 0x23
	OpGlobalSet   Opcode = 0x24
	OpTableGet    Opcode = 0x25
	OpTableSet    Opcode = 0x26
	OpI32Load     Opcode = 0x28
	OpI64Load     Opcode = 0x29
	OpF32Load     Opcode = 0x2A
	OpF64Load     Opcode = 0x2B
	OpI32Load8S   Opcode = 0x2C
	OpI32Load8U   Opcode = 0x2D
	OpI32Load16S  Opcode = 0x2E
	OpI32Load16U  Opcode = 0x2F
	OpI64Load8S   Opcode = 0x30
	OpI64Load8U   Opcode = 0x31
	OpI64Load16S  Opcode = 0x32
	OpI64Load16U  Opcode = 0x33
	OpI64Load32S  Opcode = 0x34
	OpI64Load32U  Opcode = 0x35
	OpI32Store    Opcode = 0x36
	OpI64Store    Opcode = 0x37
	OpF32Store    Opcode = 0x38
	OpF64Store    Opcode = 0x39
	OpI32Store8   Opcode = 0x3A
	OpI32Store16  Opcode = 0x3B
	OpI64Store8   Opcode = 0x3C
	OpI64Store16  Opcode = 0x3D
	OpI64Store32  Opcode = 0x3E
	OpMemorySize  Opcode = 0x3F
	OpMemoryGrow  Opcode = 0x40
	OpI32Const    Opcode = 0x41
	OpI64Const    Opcode = 0x42
	OpF32Const    Opcode = 0x43
	OpF64Const    Opcode = 0x44
	OpRefNull     Opcode = 0xD0
	OpRefIsNull   Opcode = 0xD1
	OpRefFunc     Opcode = 0xD2
	OpRefAsNonNil Opcode = 0xD3
	OpRefEq       Opcode = 0xD4
	OpBrOnNull    Opcode = 0xD5
	OpBrOnNonNull Opcode = 0xD6
)

// Comparison instructions.
const (
	OpI32Eqz Opcode = 0x45
	OpI32Eq  Opcode = 0x46
	OpI32Ne  Opcode = 0x47
	OpI32LtS Opcode = 0x48
	OpI32LtU Opcode = 0x49
	OpI32GtS Opcode = 0x4A
	OpI32GtU Opcode = 0x4B
	OpI32LeS Opcode = 0x4C
	OpI32LeU Opcode = 0x4D
	OpI32GeS Opcode = 0x4E
	OpI32GeU Opcode = 0x4F
	OpI64Eqz Opcode = 0x50
	OpI64Eq  Opcode = 0x51
	OpI64Ne  Opcode = 0x52
	OpI64LtS Opcode = 0x53
	OpI64LtU Opcode = 0x54
	OpI64GtS Opcode = 0x55
	OpI64GtU Opcode = 0x56
	OpI64LeS Opcode = 0x57
	OpI64LeU Opcode = 0x58
	OpI64GeS Opcode = 0x59
	OpI64GeU Opcode = 0x5A
	OpF32Eq  Opcode = 0x5B
	OpF32Ne  Opcode = 0x5C
	OpF32Lt  Opcode = 0x5D
	OpF32Gt  Opcode = 0x5E
	OpF32Le  Opcode = 0x5F
	OpF32Ge  Opcode = 0x60
	OpF64Eq  Opcode = 0x61
	OpF64Ne  Opcode = 0x62
	OpF64Lt  Opcode = 0x63
	OpF64Gt  Opcode = 0x64
	OpF64Le  Opcode = 0x65
	OpF64Ge  Opcode = 0x66
)

// Numeric instructions used by the mutation catalog.
const (
	OpI32Add   Opcode = 0x6A
	OpI32Sub   Opcode = 0x6B
	OpI32Mul   Opcode = 0x6C
	OpI32And   Opcode = 0x71
	OpI32Or    Opcode = 0x72
	OpI64Add   Opcode = 0x7C
	OpI64Sub   Opcode = 0x7D
	OpI64Mul   Opcode = 0x7E
	OpI64And   Opcode = 0x83
	OpI64Or    Opcode = 0x84
	OpF32Ceil  Opcode = 0x8D
	OpF32Floor Opcode = 0x8E
	OpF64Ceil  Opcode = 0x9B
	OpF64Floor Opcode = 0x9C
)

var mnemonics = map[Opcode]string{
	OpUnreachable: "unreachable", OpNop: "nop", OpBlock: "block", OpLoop: "loop",
	OpIf: "if", OpElse: "else", OpTry: "try", OpCatch: "catch", OpThrow: "throw",
	OpRethrow: "rethrow", OpThrowRef: "throw_ref", OpEnd: "end", OpBr: "br",
	OpBrIf: "br_if", OpBrTable: "br_table", OpReturn: "return", OpCall: "call",
	OpCallIndirect: "call_indirect", OpReturnCall: "return_call",
	OpReturnCallIn: "return_call_indirect", OpCallRef: "call_ref",
	OpReturnCallRf: "return_call_ref", OpDelegate: "delegate", OpCatchAll: "catch_all",
	OpDrop: "drop", OpSelect: "select", OpSelectTyped: "select", OpTryTable: "try_table",

	OpLocalGet: "local.get", OpLocalSet: "local.set", OpLocalTee: "local.tee",
	OpGlobalGet: "global.get", OpGlobalSet: "global.set",
	OpTableGet: "table.get", OpTableSet: "table.set",

	OpI32Load: "i32.load", OpI64Load: "i64.load", OpF32Load: "f32.load", OpF64Load: "f64.load",
	OpI32Load8S: "i32.load8_s", OpI32Load8U: "i32.load8_u", OpI32Load16S: "i32.load16_s",
	OpI32Load16U: "i32.load16_u", OpI64Load8S: "i64.load8_s", OpI64Load8U: "i64.load8_u",
	OpI64Load16S: "i64.load16_s", OpI64Load16U: "i64.load16_u", OpI64Load32S: "i64.load32_s",
	OpI64Load32U: "i64.load32_u",
	OpI32Store:   "i32.store", OpI64Store: "i64.store", OpF32Store: "f32.store", OpF64Store: "f64.store",
	OpI32Store8: "i32.store8", OpI32Store16: "i32.store16", OpI64Store8: "i64.store8",
	OpI64Store16: "i64.store16", OpI64Store32: "i64.store32",
	OpMemorySize: "memory.size", OpMemoryGrow: "memory.grow",

	OpI32Const: "i32.const", OpI64Const: "i64.const", OpF32Const: "f32.const", OpF64Const: "f64.const",

	OpI32Eqz: "i32.eqz", OpI32Eq: "i32.eq", OpI32Ne: "i32.ne", OpI32LtS: "i32.lt_s",
	OpI32LtU: "i32.lt_u", OpI32GtS: "i32.gt_s", OpI32GtU: "i32.gt_u", OpI32LeS: "i32.le_s",
	OpI32LeU: "i32.le_u", OpI32GeS: "i32.ge_s", OpI32GeU: "i32.ge_u",
	OpI64Eqz: "i64.eqz", OpI64Eq: "i64.eq", OpI64Ne: "i64.ne", OpI64LtS: "i64.lt_s",
	OpI64LtU: "i64.lt_u", OpI64GtS: "i64.gt_s", OpI64GtU: "i64.gt_u", OpI64LeS: "i64.le_s",
	OpI64LeU: "i64.le_u", OpI64GeS: "i64.ge_s", OpI64GeU: "i64.ge_u",
	OpF32Eq: "f32.eq", OpF32Ne: "f32.ne", OpF32Lt: "f32.lt", OpF32Gt: "f32.gt",
	OpF32Le: "f32.le", OpF32Ge: "f32.ge",
	OpF64Eq: "f64.eq", OpF64Ne: "f64.ne", OpF64Lt: "f64.lt", OpF64Gt: "f64.gt",
	OpF64Le: "f64.le", OpF64Ge: "f64.ge",

	0x67: "i32.clz", 0x68: "i32.ctz", 0x69: "i32.popcnt", OpI32Add: "i32.add",
	OpI32Sub: "i32.sub", OpI32Mul: "i32.mul", 0x6D: "i32.div_s", 0x6E: "i32.div_u",
	0x6F: "i32.rem_s", 0x70: "i32.rem_u", OpI32And: "i32.and", OpI32Or: "i32.or",
	0x73: "i32.xor", 0x74: "i32.shl", 0x75: "i32.shr_s", 0x76: "i32.shr_u",
	0x77: "i32.rotl", 0x78: "i32.rotr",
	0x79: "i64.clz", 0x7A: "i64.ctz", 0x7B: "i64.popcnt", OpI64Add: "i64.add",
	OpI64Sub: "i64.sub", OpI64Mul: "i64.mul", 0x7F: "i64.div_s", 0x80: "i64.div_u",
	0x81: "i64.rem_s", 0x82: "i64.rem_u", OpI64And: "i64.and", OpI64Or: "i64.or",
	0x85: "i64.xor", 0x86: "i64.shl", 0x87: "i64.shr_s", 0x88: "i64.shr_u",
	0x89: "i64.rotl", 0x8A: "i64.rotr",
	0x8B: "f32.abs", 0x8C: "f32.neg", OpF32Ceil: "f32.ceil", OpF32Floor: "f32.floor",
	0x8F: "f32.trunc", 0x90: "f32.nearest", 0x91: "f32.sqrt", 0x92: "f32.add",
	0x93: "f32.sub", 0x94: "f32.mul", 0x95: "f32.div", 0x96: "f32.min",
	0x97: "f32.max", 0x98: "f32.copysign",
	0x99: "f64.abs", 0x9A: "f64.neg", OpF64Ceil: "f64.ceil", OpF64Floor: "f64.floor",
	0x9D: "f64.trunc", 0x9E: "f64.nearest", 0x9F: "f64.sqrt", 0xA0: "f64.add",
	0xA1: "f64.sub", 0xA2: "f64.mul", 0xA3: "f64.div", 0xA4: "f64.min",
	0xA5: "f64.max", 0xA6: "f64.copysign",

	0xA7: "i32.wrap_i64", 0xA8: "i32.trunc_f32_s", 0xA9: "i32.trunc_f32_u",
	0xAA: "i32.trunc_f64_s", 0xAB: "i32.trunc_f64_u", 0xAC: "i64.extend_i32_s",
	0xAD: "i64.extend_i32_u", 0xAE: "i64.trunc_f32_s", 0xAF: "i64.trunc_f32_u",
	0xB0: "i64.trunc_f64_s", 0xB1: "i64.trunc_f64_u", 0xB2: "f32.convert_i32_s",
	0xB3: "f32.convert_i32_u", 0xB4: "f32.convert_i64_s", 0xB5: "f32.convert_i64_u",
	0xB6: "f32.demote_f64", 0xB7: "f64.convert_i32_s", 0xB8: "f64.convert_i32_u",
	0xB9: "f64.convert_i64_s", 0xBA: "f64.convert_i64_u", 0xBB: "f64.promote_f32",
	0xBC: "i32.reinterpret_f32", 0xBD: "i64.reinterpret_f64",
	0xBE: "f32.reinterpret_i32", 0xBF: "f64.reinterpret_i64",
	0xC0: "i32.extend8_s", 0xC1: "i32.extend16_s", 0xC2: "i64.extend8_s",
	0xC3: "i64.extend16_s", 0xC4: "i64.extend32_s",

	OpRefNull: "ref.null", OpRefIsNull: "ref.is_null", OpRefFunc: "ref.func",
	OpRefAsNonNil: "ref.as_non_null", OpRefEq: "ref.eq", OpBrOnNull: "br_on_null",
	OpBrOnNonNull: "br_on_non_null",

	Prefixed(PrefixMisc, 0x00): "i32.trunc_sat_f32_s", Prefixed(PrefixMisc, 0x01): "i32.trunc_sat_f32_u",
	Prefixed(PrefixMisc, 0x02): "i32.trunc_sat_f64_s", Prefixed(PrefixMisc, 0x03): "i32.trunc_sat_f64_u",
	Prefixed(PrefixMisc, 0x04): "i64.trunc_sat_f32_s", Prefixed(PrefixMisc, 0x05): "i64.trunc_sat_f32_u",
	Prefixed(PrefixMisc, 0x06): "i64.trunc_sat_f64_s", Prefixed(PrefixMisc, 0x07): "i64.trunc_sat_f64_u",
	Prefixed(PrefixMisc, 0x08): "memory.init", Prefixed(PrefixMisc, 0x09): "data.drop",
	Prefixed(PrefixMisc, 0x0A): "memory.copy", Prefixed(PrefixMisc, 0x0B): "memory.fill",
	Prefixed(PrefixMisc, 0x0C): "table.init", Prefixed(PrefixMisc, 0x0D): "elem.drop",
	Prefixed(PrefixMisc, 0x0E): "table.copy", Prefixed(PrefixMisc, 0x0F): "table.grow",
	Prefixed(PrefixMisc, 0x10): "table.size", Prefixed(PrefixMisc, 0x11): "table.fill",
	Prefixed(PrefixMisc, 0x12):   "memory.discard",
	Prefixed(PrefixAtomic, 0x03): "atomic.fence",

	OpV128Store: "v128.store", OpV128Store8Lane: "v128.store8_lane",
	OpV128Store16Lane: "v128.store16_lane", OpV128Store32Lane: "v128.store32_lane",
	OpV128Store64Lane: "v128.store64_lane",
	OpI32AtomicStore:  "i32.atomic.store", OpI64AtomicStore: "i64.atomic.store",
	OpI32AtomicStore8: "i32.atomic.store8", OpI32AtomicStore16: "i32.atomic.store16",
	OpI64AtomicStore8: "i64.atomic.store8", OpI64AtomicStore16: "i64.atomic.store16",
	OpI64AtomicStore32: "i64.atomic.store32",
}

var opcodesByMnemonic = func() map[string]Opcode {
	byName := make(map[string]Opcode, len(mnemonics))
	for op, name := range mnemonics {
		if op == OpSelectTyped {
			continue
		}

		byName[name] = op
	}

	return byName
}()

// Known reports whether the opcode has a mnemonic.
func (o Opcode) Known() bool {
	_, ok := mnemonics[o]
	return ok
}

// String returns the text-format mnemonic of the opcode.
func (o Opcode) String() string {
	if name, ok := mnemonics[o]; ok {
		return name
	}

	if o.IsPrefixed() {
		return fmt.Sprintf("0x%02x.0x%x", o.Prefix(), o.Sub())
	}

	return fmt.Sprintf("0x%02x", byte(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o Opcode) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Opcode) UnmarshalText(text []byte) error {
	op, err := ParseOpcode(string(text))
	if err != nil {
		return err
	}

	*o = op

	return nil
}

// ParseOpcode resolves a mnemonic (or a hex form produced by String) to an opcode.
func ParseOpcode(s string) (Opcode, error) {
	if op, ok := opcodesByMnemonic[s]; ok {
		return op, nil
	}

	if prefix, sub, ok := strings.Cut(s, "."); ok && strings.HasPrefix(prefix, "0x") {
		p, err := strconv.ParseUint(prefix[2:], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid opcode %q: %w", s, err)
		}

		v, err := strconv.ParseUint(strings.TrimPrefix(sub, "0x"), 16, 24)
		if err != nil {
			return 0, fmt.Errorf("invalid opcode %q: %w", s, err)
		}

		return Prefixed(byte(p), uint32(v)), nil
	}

	if strings.HasPrefix(s, "0x") {
		v, err := strconv.ParseUint(s[2:], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid opcode %q: %w", s, err)
		}

		return Opcode(v), nil
	}

	return 0, fmt.Errorf("unknown opcode %q", s)
}
