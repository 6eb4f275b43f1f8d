package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"library-catalog/internal/config"
	"library-catalog/internal/logger"
	"library-catalog/library"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries what every command needs once flags are resolved.
type app struct {
	flags config.Config
	log   zerolog.Logger
	mgr   *library.LibraryManager
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "library",
		Short:        "In-memory library catalog",
		Long:         "Interactive library catalog. Books and users live only for the current session.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := cmd.InOrStdin()
			return runShell(in, cmd.OutOrStdout(), a.mgr, isTerminal(in))
		},
	}
	root.PersistentFlags().BoolVar(&a.flags.Debug, "debug", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.flags.SeedPath, "seed", "", "JSON file of books to load at startup")

	root.AddCommand(newDemoCmd(a), newListCmd(a))
	return root
}

func (a *app) setup(stderr io.Writer) error {
	cfg, err := config.Resolve(a.flags)
	if err != nil {
		return err
	}
	a.log = logger.New(stderr, cfg.Debug)
	a.mgr = library.NewLibraryManager(a.log)
	a.log.Debug().Bool("debug", cfg.Debug).Str("seed", cfg.SeedPath).Msg("config resolved")

	if cfg.SeedPath == "" {
		return nil
	}
	f, err := os.Open(cfg.SeedPath)
	if err != nil {
		return fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()
	if _, err := a.mgr.ImportBooks(f); err != nil {
		return fmt.Errorf("seed %s: %w", cfg.SeedPath, err)
	}
	return nil
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a short borrow/return demonstration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout(), a.log)
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the books loaded with --seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if asJSON {
				return a.mgr.ExportBooks(out)
			}
			listBooks(out, a.mgr)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print books as JSON")
	return cmd
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
