package blocksctl

import (
	"fmt"
	"os"
)

// Config carries the settings shared by every subcommand.
type Config struct {
	Server string
	LogLvl string
}

func defaultConfig() *Config {
	return &Config{
		Server: envStr("BLOCKSD_SERVER", "http://127.0.0.1:8080"),
		LogLvl: envStr("BLOCKSCTL_LOG_LEVEL", "info"),
	}
}

// MainWithArgs is a testable variant of Main that accepts args explicitly.
// It returns an exit code (0 for success, non-zero on error).
func MainWithArgs(args []string) int {
	cfg := defaultConfig()
	root := buildRootCmdWith(cfg)
	if len(args) == 0 {
		_ = root.Help()
		return 2
	}
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	return 0
}

// Main returns an exit code (0 for success, non-zero on error) for use by cmd/blocksctl.
func Main() int { return MainWithArgs(os.Args[1:]) }
