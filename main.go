// Package main is the entry point for the wasmut CLI.
package main

import "gooze.dev/pkg/wasmut/cmd"

func main() {
	cmd.Execute()
}
