package blocksctl

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// buildRootCmd is a convenience for help-only fallbacks.
func buildRootCmd() *cobra.Command { return buildRootCmdWith(defaultConfig()) }

// buildRootCmdWith constructs a Cobra command tree wired to the fn* actions.
func buildRootCmdWith(cfg *Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "blocksctl",
		Short:         "Inspect a running blocksd daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags -> Config
	root.PersistentFlags().String("server", cfg.Server, "Base URL of the blocksd API (defaults BLOCKSD_SERVER or http://127.0.0.1:8080)")
	root.PersistentFlags().String("log-level", cfg.LogLvl, "Log level: debug|info|warn|error (defaults BLOCKSCTL_LOG_LEVEL or info)")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if f := cmd.InheritedFlags().Lookup("server"); f != nil {
			if v := f.Value.String(); v != "" {
				cfg.Server = v
			}
		}
		if f := cmd.InheritedFlags().Lookup("log-level"); f != nil {
			if v := f.Value.String(); v != "" {
				cfg.LogLvl = v
			}
		}
		SetLogLevel(cfg.LogLvl)
	}

	statusCmd := &cobra.Command{Use: "status", Short: "Show daemon status and per-form readiness", Example: "  blocksctl status", RunE: func(cmd *cobra.Command, args []string) error { return fnShowStatus(cfg) }}
	formsCmd := &cobra.Command{Use: "forms", Short: "List registered forms", Example: "  blocksctl forms", RunE: func(cmd *cobra.Command, args []string) error { return fnListForms(cfg) }}
	readyCmd := &cobra.Command{Use: "ready <form>", Short: "Exit 0 when the form's editor is ready, non-zero while it loads", Example: "  blocksctl ready Screen1", Args: cobra.MinimumNArgs(1), RunE: func(cmd *cobra.Command, args []string) error { return fnCheckReady(cfg, args[0]) }}
	yailCmd := &cobra.Command{Use: "yail <form>", Short: "Print the Yail generated for a form", Example: "  blocksctl yail Screen1", Args: cobra.MinimumNArgs(1), RunE: func(cmd *cobra.Command, args []string) error { return fnFetchYail(cfg, args[0]) }}

	// catalog group
	catalogCmd := &cobra.Command{Use: "catalog", Short: "Component catalog helpers", RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("catalog requires a subcommand: validate")
	}}
	catalogValidate := &cobra.Command{Use: "validate <dir>", Short: "Load a descriptor directory and report problems", Example: "  blocksctl catalog validate ./catalog", Args: cobra.MinimumNArgs(1), RunE: func(cmd *cobra.Command, args []string) error { return fnValidateCatalog(args[0]) }}
	catalogCmd.AddCommand(catalogValidate)

	root.AddCommand(statusCmd, formsCmd, readyCmd, yailCmd, catalogCmd)

	// completion command
	completionCmd := &cobra.Command{Use: "completion", Short: "Generate the autocompletion script for the specified shell"}
	completionCmd.AddCommand(&cobra.Command{Use: "bash", Short: "Bash completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenBashCompletion(os.Stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "zsh", Short: "Zsh completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenZshCompletion(os.Stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "fish", Short: "Fish completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenFishCompletion(os.Stdout, true) }})
	completionCmd.AddCommand(&cobra.Command{Use: "powershell", Short: "PowerShell completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenPowerShellCompletionWithDesc(os.Stdout) }})
	root.AddCommand(completionCmd)

	return root
}
