package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Mr-Dark-debug/familytree/internal/config"
	"github.com/Mr-Dark-debug/familytree/internal/database"
	"github.com/Mr-Dark-debug/familytree/internal/family"
	"github.com/Mr-Dark-debug/familytree/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every command. Values only override the
// config file when the flag was set explicitly.
type globalFlags struct {
	configPath string
	payload    string
	dbPath     string
	rootID     string
	logLevel   string
	logFile    string
}

func rootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "familytree",
		Short: "Expandable family tree in the terminal",
		Long: `familytree shows a family tree as a collapsible widget: a root
person reveals their spouses, and each spouse reveals their children.

The tree comes from a YAML or TOML payload, from a tree stored in the
SQLite database (--root), or from the built-in example.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, g)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&g.configPath, "config", "c", "", "Config file path (YAML)")
	pf.StringVarP(&g.payload, "payload", "p", "", "Tree payload file (.yaml, .yml or .toml)")
	pf.StringVar(&g.dbPath, "db", "", "Path to SQLite database (default ~/.familytree/familytree.db)")
	pf.StringVar(&g.rootID, "root", "", "Load the stored tree with this root id")
	pf.StringVar(&g.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&g.logFile, "log-file", "", "Write logs here while the TUI runs")

	cmd.AddCommand(
		viewCmd(g),
		renderCmd(g),
		importCmd(g),
		listCmd(g),
		deleteCmd(g),
		checkCmd(g),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "familytree v%s (commit: %s, built: %s)\n", Version, GitCommit, BuildTime)
			},
		},
	)

	return cmd
}

// loadConfig layers defaults, the config file and explicit flags.
func loadConfig(cmd *cobra.Command, g *globalFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if g.configPath != "" {
		loaded, err := config.LoadFromFile(g.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("payload") {
		cfg.Payload = g.payload
	}
	if flags.Changed("db") {
		cfg.DBPath = g.dbPath
	}
	if flags.Changed("root") {
		cfg.RootID = g.rootID
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = g.logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = g.logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger builds a text logger at the configured level.
func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	level, _ := config.ParseLevel(cfg.LogLevel) // validated in loadConfig
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadTree resolves the tree source: a stored tree, a payload file, or
// the built-in example.
func loadTree(cfg *config.Config, logger *slog.Logger) (*family.Tree, error) {
	switch {
	case cfg.RootID != "":
		store, err := database.NewDBService(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		defer store.Close()

		tree, err := store.LoadTree(cfg.RootID)
		if err != nil {
			return nil, err
		}
		logger.Debug("Loaded stored tree", slog.String("root", cfg.RootID), slog.String("db", cfg.DBPath))
		return tree, nil

	case cfg.Payload != "":
		tree, err := family.LoadFile(cfg.Payload)
		if err != nil {
			return nil, err
		}
		logger.Debug("Loaded payload", slog.String("path", cfg.Payload))
		return tree, nil

	default:
		logger.Debug("Using built-in tree")
		return family.Default(), nil
	}
}

func viewCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Run the interactive tree (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, g)
		},
	}
}

func runView(cmd *cobra.Command, g *globalFlags) error {
	cfg, err := loadConfig(cmd, g)
	if err != nil {
		return err
	}

	// The TUI owns the terminal; logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "familytree")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, cfg)

	tree, err := loadTree(cfg, logger)
	if err != nil {
		return err
	}

	model := tui.NewModel(tree, tui.Options{
		CompactWidth: cfg.CompactWidth,
		Logger:       logger,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	logger.Info("Starting viewer", slog.String("root", tree.Root.ID), slog.Int("people", tree.PeopleCount()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

func renderCmd(g *globalFlags) *cobra.Command {
	var (
		expandRoot bool
		expand     []string
		width      int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the tree once, with chosen nodes expanded",
		Long: `Render applies the same transitions as the interactive view, in
order: --expand-root toggles the root, then each --expand toggles a
spouse. The result is printed to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, g)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg)

			tree, err := loadTree(cfg, logger)
			if err != nil {
				return err
			}

			e := family.NewExpansion()
			if expandRoot {
				e = family.ToggleRoot(e)
			}
			for _, id := range expand {
				if _, ok := tree.Spouse(id); !ok {
					logger.Warn("No spouse with this id; ignoring", slog.String("id", id))
				}
				e = family.ToggleSpouse(tree, e, id)
			}

			layout := tui.Render(tree, e, tui.RenderOptions{
				Width:        width,
				CompactWidth: cfg.CompactWidth,
			})
			fmt.Fprintln(cmd.OutOrStdout(), layout.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&expandRoot, "expand-root", false, "Expand the root")
	cmd.Flags().StringSliceVar(&expand, "expand", nil, "Spouse id to expand (repeatable)")
	cmd.Flags().IntVar(&width, "width", 100, "Output width in columns")

	return cmd
}

func importCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "import <payload>",
		Short: "Validate a payload and store it in SQLite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, g)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg)

			tree, err := family.LoadFile(args[0])
			if err != nil {
				return err
			}
			if err := tree.Validate(); err != nil {
				return fmt.Errorf("payload %s is invalid: %w", args[0], err)
			}

			if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
				return fmt.Errorf("creating database directory: %w", err)
			}
			store, err := database.NewDBService(cfg.DBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.SaveTree(tree); err != nil {
				return err
			}

			logger.Info("Imported tree",
				slog.String("root", tree.Root.ID),
				slog.Int("people", tree.PeopleCount()),
				slog.String("db", cfg.DBPath))
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s (%d people)\n", tree.Root.ID, tree.PeopleCount())
			return nil
		},
	}
}

func listCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, g)
			if err != nil {
				return err
			}

			store, err := database.NewDBService(cfg.DBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			trees, err := store.ListTrees()
			if err != nil {
				return err
			}
			if len(trees) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No stored trees. Add one with: familytree import <payload>")
				return nil
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("ROOT ID", "NAME", "SPOUSES", "CHILDREN")
			for _, ts := range trees {
				t.Row(ts.RootID, ts.RootName, strconv.Itoa(ts.Spouses), strconv.Itoa(ts.Children))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return nil
		},
	}
}

func deleteCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <root-id>",
		Short: "Remove a stored tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, g)
			if err != nil {
				return err
			}

			store, err := database.NewDBService(cfg.DBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteTree(args[0]); err != nil {
				if errors.Is(err, database.ErrTreeNotFound) {
					return fmt.Errorf("no stored tree with root id %q", args[0])
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func checkCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check <payload>",
		Short: "Validate a payload without storing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := family.LoadFile(args[0])
			if err != nil {
				return err
			}
			if err := tree.Validate(); err != nil {
				return fmt.Errorf("payload %s is invalid:\n%w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s, %d spouses, %d people\n",
				tree.Root.ID, len(tree.Root.Spouses), tree.PeopleCount())
			return nil
		},
	}
}
