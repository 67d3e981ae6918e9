package main

import "github.com/andbhavyaa/skeldir/cmd/skeldir/cmd"

// version is overridden at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cmd.Execute(version)
}
