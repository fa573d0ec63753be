// Command sudokuctl is the CLI front-end over the solve/generate core
// and the HTTP transport, grounded on eng618-parable-bloom's
// level-builder tool layout (a thin main.go delegating to cmd.Execute).
package main

import "sudokucore/cmd/sudokuctl/cmd"

func main() {
	cmd.Execute()
}
