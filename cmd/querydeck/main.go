// Package main is the entry point for the QueryDeck CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/chart"
	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/config"
	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/dataset"
	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/export"
)

// version is set at build time via -ldflags.
var version = "dev"

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	verbose    bool
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:     "querydeck",
		Short:   "Explore the products dataset from the terminal",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(flags)
		},
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to querydeck.toml (default: search upward from the working directory)")
	root.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "log at debug level")

	root.AddCommand(
		queryCmd(flags),
		savedCmd(flags),
		historyCmd(flags),
		chartCmd(flags),
		schemaCmd(),
		exportCmd(flags),
		initCmd(),
	)
	return root
}

func queryCmd(flags *globalFlags) *cobra.Command {
	var format string
	var limit int
	cmd := &cobra.Command{
		Use:   "query <text>",
		Short: "Run a query once and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			rs := a.store.Execute(args[0])
			rows := rs.Rows
			if limit > 0 && len(rows) > limit {
				rows = rs.Head(limit)
			}
			return renderRows(cmd.OutOrStdout(), dataset.Products, rows, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table, json, csv or md")
	cmd.Flags().IntVar(&limit, "limit", 100, "maximum rows to print (0 = all)")
	return cmd
}

func savedCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saved",
		Short: "Manage saved queries",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List saved queries",
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := openApp(flags, cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				defer a.Close()
				renderSaved(cmd.OutOrStdout(), a.store.Saved())
				return nil
			},
		},
		&cobra.Command{
			Use:   "toggle <text>",
			Short: "Save a query, or remove it if already saved",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := openApp(flags, cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				defer a.Close()

				a.store.ToggleSaved(args[0])
				if a.store.IsSaved(args[0]) {
					fmt.Fprintf(cmd.OutOrStdout(), "Saved %q\n", args[0])
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Removed %q\n", args[0])
				}
				return nil
			},
		},
	)
	return cmd
}

func historyCmd(flags *globalFlags) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show executed queries from the journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			if a.journal == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Journal is disabled (journal.enabled = false).")
				return nil
			}
			entries, err := a.journal.Entries()
			if err != nil {
				return err
			}
			if limit > 0 && len(entries) > limit {
				entries = entries[len(entries)-limit:]
			}
			renderJournal(cmd.OutOrStdout(), entries)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "newest entries to show (0 = all)")
	return cmd
}

func chartCmd(flags *globalFlags) *cobra.Command {
	var kind string
	var width, height int
	cmd := &cobra.Command{
		Use:   "chart <text>",
		Short: "Run a query and draw one of its chart projections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := chart.ParseKind(kind)
			if err != nil {
				return err
			}
			a, err := openApp(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			data := chart.Project(k, a.store.Execute(args[0]).Rows)
			fmt.Fprintln(cmd.OutOrStdout(), chart.Render(data, width, height))
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", string(chart.KindBar), "chart kind: "+kindList())
	cmd.Flags().IntVar(&width, "width", 80, "chart width in cells")
	cmd.Flags().IntVar(&height, "height", 20, "chart height in lines")
	return cmd
}

// kindList joins the chart kind names for help text.
func kindList() string {
	kinds := chart.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

func schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the products table schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderSchema(cmd.OutOrStdout(), dataset.Products)
			return nil
		},
	}
}

func exportCmd(flags *globalFlags) *cobra.Command {
	var format, dir string
	cmd := &cobra.Command{
		Use:   "export <text>",
		Short: "Run a query and write the result to query_results.<format>",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			if format == "" {
				format = a.cfg.Export.Format
			}
			if dir == "" {
				dir = a.cfg.Resolve(a.cfg.Export.Dir)
			}
			path, err := export.ToFile(dir, format, dataset.Products, a.store.Execute(args[0]).Rows)
			if err != nil {
				return err
			}
			if path == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No rows to export.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "csv or xlsx (default: export.format)")
	cmd.Flags().StringVar(&dir, "dir", "", "output directory (default: export.dir)")
	return cmd
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create querydeck.toml and the data directory in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			created, err := config.ScaffoldProject(dir)
			if err != nil {
				return err
			}
			if len(created) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to do: project already initialized.")
				return nil
			}
			for _, path := range created {
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			}
			return nil
		},
	}
}

