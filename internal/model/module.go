package model

// Section is a raw top-level section of a binary module.
type Section struct {
	ID      byte
	Payload []byte
}

// Body is the mutable part of a function: its local declarations (kept in
// encoded form) and its instruction stream, including the final end.
type Body struct {
	Locals       []byte
	Instructions []Instruction
}

// Len returns the number of instructions.
func (b *Body) Len() int {
	return len(b.Instructions)
}

// Clone returns a deep copy of the body.
func (b Body) Clone() Body {
	instructions := make([]Instruction, len(b.Instructions))
	for i, instruction := range b.Instructions {
		instructions[i] = instruction.Clone()
	}

	return Body{
		Locals:       append([]byte(nil), b.Locals...),
		Instructions: instructions,
	}
}

// Function is a function defined (not imported) by the module. Index is the
// zero-based position in the code section.
type Function struct {
	Index int
	Body  Body
}

// Module is a decoded binary module. Sections other than the code section are
// preserved verbatim; CodeSection is the position of the code section in
// Sections, or -1 when the module defines no functions.
//
// Names maps defined-function indices to their raw (possibly mangled) names.
// It is nil when the module carries no name section at all.
type Module struct {
	Sections          []Section
	CodeSection       int
	ImportedFunctions uint32
	Functions         []Function
	Names             map[int]string
}

// HasNames reports whether the module carries name metadata.
func (mod *Module) HasNames() bool {
	return mod.Names != nil
}

// Function returns the function at the defined-function index.
func (mod *Module) Function(index int) (*Function, bool) {
	if index < 0 || index >= len(mod.Functions) {
		return nil, false
	}

	return &mod.Functions[index], true
}

// Candidate is a function eligible for mutation, identified by its
// defined-function index and demangled name.
type Candidate struct {
	Index int
	Name  string
}
