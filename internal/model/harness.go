package model

import "time"

// DefaultEntry is the export that runs the embedded tests when none is configured.
const DefaultEntry = "main"

// DefaultMutationTimeout bounds one harness execution when none is configured.
const DefaultMutationTimeout = 2 * time.Minute

// Harness describes how a module's embedded tests are invoked.
type Harness struct {
	// Entry is the exported function that runs the tests.
	Entry string
	// WASI links wasi_snapshot_preview1 host functions.
	WASI bool
	// Timeout bounds a single run; zero means DefaultMutationTimeout.
	Timeout time.Duration
}

// Normalized fills unset fields with their defaults.
func (h Harness) Normalized() Harness {
	if h.Entry == "" {
		h.Entry = DefaultEntry
	}

	if h.Timeout <= 0 {
		h.Timeout = DefaultMutationTimeout
	}

	return h
}
