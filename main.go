// Package main is the entry point for the synver CLI.
package main

import "synver.dev/pkg/synver/cmd"

func main() {
	cmd.Execute()
}
