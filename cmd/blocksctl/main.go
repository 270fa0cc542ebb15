package main

// The implementation lives in internal/blocksctl:
// - cli.go        (Config, MainWithArgs, Main)
// - cobra_root.go (command tree, persistent flags)
// - actions.go    (fn* indirection points for tests)
// - client.go     (HTTP client actions against a running blocksd)
// - logenv.go     (leveled logging, env helpers)

import (
	"os"

	"blocksd/internal/blocksctl"
)

func main() {
	os.Exit(blocksctl.Main())
}
