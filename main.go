package main

import (
	"fmt"
	"os"

	"github.com/agentforge-labs/agentforge/internal/cli"
	"github.com/agentforge-labs/agentforge/internal/logger"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	logger.Init()
	if err := cli.Execute(version, commit, date); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
