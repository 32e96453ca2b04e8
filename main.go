package main

import (
	"runtime"

	cmd "github.com/zoomctl/zoomctl/cmd"
)

func init() {
	// The menu bar event loop must own the main OS thread on macOS.
	runtime.LockOSThread()
}

func main() {
	cmd.Execute()
}
