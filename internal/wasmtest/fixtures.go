package wasmtest

import (
	m "gooze.dev/pkg/wasmut/internal/model"
)

func ifTrap() []m.Instruction {
	return []m.Instruction{m.Block(m.OpIf), m.Plain(m.OpUnreachable), m.Plain(m.OpEnd)}
}

// Harness returns a module with two library functions and a main that
// asserts on them:
//
//	lib::is_big(x)  = x >= 10   (main checks 11 and 5, never the boundary)
//	lib::add(a, b)  = a + b     (main checks 2 + 3 == 5)
//
// The ge_s -> gt_s mutant of lib::is_big survives; both arithmetic mutants of
// lib::add are killed.
func Harness() []byte {
	b := New()

	isBig := b.Func(Func{
		Name:    "lib::is_big",
		Params:  []ValType{I32},
		Results: []ValType{I32},
		Body:    []m.Instruction{m.LocalGet(0), m.I32Const(10), m.Plain(m.OpI32GeS)},
	})
	add := b.Func(Func{
		Name:    "lib::add",
		Params:  []ValType{I32, I32},
		Results: []ValType{I32},
		Body:    []m.Instruction{m.LocalGet(0), m.LocalGet(1), m.Plain(m.OpI32Add)},
	})

	body := []m.Instruction{m.I32Const(11), m.Call(isBig), m.Plain(m.OpI32Eqz)}
	body = append(body, ifTrap()...)
	body = append(body, m.I32Const(5), m.Call(isBig))
	body = append(body, ifTrap()...)
	body = append(body, m.I32Const(2), m.I32Const(3), m.Call(add), m.I32Const(5), m.Plain(m.OpI32Ne))
	body = append(body, ifTrap()...)

	b.Func(Func{Name: "main", Body: body, Export: "main"})

	return b.Bytes()
}

// Inert returns a module whose library function contains no instruction
// the mutation catalog matches.
func Inert() []byte {
	b := New()

	id := b.Func(Func{
		Name:    "lib::id",
		Params:  []ValType{I32},
		Results: []ValType{I32},
		Body:    []m.Instruction{m.LocalGet(0)},
	})
	b.Func(Func{
		Name:   "main",
		Body:   []m.Instruction{m.I32Const(1), m.Call(id), m.Drop()},
		Export: "main",
	})

	return b.Bytes()
}

// Countdown returns a module whose library loop only terminates through its
// br_if; cancelling the branch or the counter update makes it spin forever.
func Countdown() []byte {
	b := New()

	countdown := b.Func(Func{
		Name:   "lib::countdown",
		Params: []ValType{I32},
		Body: []m.Instruction{
			m.Block(m.OpBlock),
			m.Block(m.OpLoop),
			m.LocalGet(0), m.Plain(m.OpI32Eqz), m.BrIf(1),
			m.LocalGet(0), m.I32Const(1), m.Plain(m.OpI32Sub), m.LocalSet(0),
			{Opcode: m.OpBr, Immediate: []byte{0x00}},
			m.Plain(m.OpEnd),
			m.Plain(m.OpEnd),
		},
	})
	b.Func(Func{
		Name:   "main",
		Body:   []m.Instruction{m.I32Const(3), m.Call(countdown)},
		Export: "main",
	})

	return b.Bytes()
}

// Failing returns a module whose harness traps on the unmutated code.
func Failing() []byte {
	b := New()

	b.Func(Func{
		Name:    "lib::one",
		Results: []ValType{I32},
		Body:    []m.Instruction{m.I32Const(1), m.I32Const(1), m.Plain(m.OpI32Add)},
	})
	b.Func(Func{Name: "main", Body: []m.Instruction{m.Plain(m.OpUnreachable)}, Export: "main"})

	return b.Bytes()
}

// Exiting returns a module that imports WASI proc_exit and calls it with code.
func Exiting(code int32) []byte {
	b := New()

	exit := b.Import(Import{Module: "wasi_snapshot_preview1", Name: "proc_exit", Params: []ValType{I32}})
	b.Func(Func{
		Name:   "main",
		Body:   []m.Instruction{m.I32Const(code), m.Call(exit)},
		Export: "main",
	})

	return b.Memory().Bytes()
}
