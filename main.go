// Package main is the entry point for the apkrepack CLI.
package main

import "apkrepack.dev/pkg/apkrepack/cmd"

func main() {
	cmd.Execute()
}
