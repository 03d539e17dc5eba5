package domain

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	m "gooze.dev/pkg/wasmut/internal/model"
)

// listing renders a body one instruction per line, indented by block depth.
func listing(body m.Body) []string {
	lines := make([]string, 0, len(body.Instructions))
	depth := 1

	for _, ins := range body.Instructions {
		switch ins.Opcode {
		case m.OpEnd, m.OpDelegate:
			depth--
		case m.OpElse, m.OpCatch, m.OpCatchAll:
			depth--
			lines = append(lines, strings.Repeat("  ", max(depth, 0))+ins.String()+"\n")
			depth++

			continue
		}

		lines = append(lines, strings.Repeat("  ", max(depth, 0))+ins.String()+"\n")

		switch ins.Opcode {
		case m.OpBlock, m.OpLoop, m.OpIf, m.OpTry, m.OpTryTable:
			depth++
		}
	}

	return lines
}

// diffBodies returns a unified diff between two listings of the same function.
func diffBodies(name string, before, after m.Body) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        listing(before),
		B:        listing(after),
		FromFile: fmt.Sprintf("%s (original)", name),
		ToFile:   fmt.Sprintf("%s (mutated)", name),
		Context:  2,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff %s: %w", name, err)
	}

	return text, nil
}
