package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"pickpack/internal/bootstrap"
	gamedto "pickpack/internal/modules/game/dto"
	"pickpack/internal/platform/config"
	"pickpack/internal/platform/markdown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "pickpack",
		Short:         "Warehouse pick & pack challenge",
		Long:          "Pick the ordered items from the warehouse grid before the 60 second clock runs out.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPlay(&configPath),
	}
	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/pickpack/config.yaml)")
	flags.Uint64("seed", 0, "random seed for grids and orders (0 picks one from the clock)")
	flags.String("log-level", "info", "log level: trace|debug|info|warn|error|off")
	flags.String("log-file", "", "append logs to this file (default: discard)")
	flags.Bool("no-mouse", false, "disable mouse input")

	root.AddCommand(newPlayCmd(&configPath))
	root.AddCommand(newRulesCmd(&configPath))
	root.AddCommand(newCatalogCmd(&configPath))
	root.AddCommand(newConfigCmd(&configPath))
	return root
}

func loadConfig(cmd *cobra.Command, configPath string) (config.Config, error) {
	return config.Load(config.LoadOptions{Path: configPath, Flags: cmd.Flags()})
}

func loadApp(cmd *cobra.Command, configPath string) (*bootstrap.App, error) {
	cfg, err := loadConfig(cmd, configPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func runPlay(configPath *string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		app, err := loadApp(cmd, *configPath)
		if err != nil {
			return err
		}
		defer func() { _ = app.Close() }()
		return bootstrap.RunTUI(app)
	}
}

func newPlayCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Run the pick & pack terminal UI",
		Args:  cobra.NoArgs,
		RunE:  runPlay(configPath),
	}
}

func newRulesCmd(configPath *string) *cobra.Command {
	var raw bool
	var width int

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Show how a round is played and scored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, *configPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			rules, err := app.GameCLI.Rules(context.Background())
			if err != nil {
				return err
			}
			doc := rulesMarkdown(rules)
			if raw {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), doc)
				return nil
			}
			out, err := markdown.Render(doc, width)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without terminal styling")
	cmd.Flags().IntVar(&width, "width", 80, "wrap width for rendered output")
	return cmd
}

func rulesMarkdown(r gamedto.RulesOutput) string {
	var b strings.Builder
	b.WriteString("# Quetico 3PL Warehouse Pick & Pack\n\n")
	fmt.Fprintf(&b, "Can you beat %d points in %d seconds?\n\n", r.TargetScore, r.RoundSeconds)
	b.WriteString("## Playing\n\n")
	fmt.Fprintf(&b, "- Press **Start Game** to fill a %dx%d grid with %d random items.\n", r.GridColumns, r.GridSize/r.GridColumns, r.GridSize)
	fmt.Fprintf(&b, "- Each order asks for %d to %d of one item. Pick matching cells to fill it.\n", r.MinQuantity, r.MaxQuantity)
	b.WriteString("- A filled order is replaced by a new one straight away.\n")
	b.WriteString("- Cells stay on the grid after a pick.\n\n")
	b.WriteString("## Scoring\n\n")
	fmt.Fprintf(&b, "- Matching pick: **+%d**\n", r.MatchPoints)
	fmt.Fprintf(&b, "- Wrong item: **-%d** (never below zero)\n", r.MissPenalty)
	fmt.Fprintf(&b, "- The round ends after %d seconds. Beat **%d** to win.\n\n", r.RoundSeconds, r.TargetScore)
	b.WriteString("## Catalog\n\n")
	b.WriteString("| Item | Tag |\n| --- | --- |\n")
	for _, item := range r.Catalog {
		fmt.Fprintf(&b, "| %s | %s |\n", item.Name, item.Tag)
	}
	b.WriteString("\n## Keys\n\n")
	b.WriteString("- `s` start, `r` restart\n")
	b.WriteString("- arrows or `hjkl` move, `enter` or `space` pick\n")
	b.WriteString("- mouse: click a cell to pick it\n")
	b.WriteString("- `?` help, `q` quit\n")
	return b.String()
}

func newCatalogCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the items that can appear on the grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, *configPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			items, err := app.GameCLI.Catalog(context.Background())
			if err != nil {
				return err
			}
			for _, item := range items {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", item.Name, item.Tag)
			}
			return nil
		},
	}
}

func newConfigCmd(configPath *string) *cobra.Command {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration commands"}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, *configPath)
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	})
	return cfgCmd
}
