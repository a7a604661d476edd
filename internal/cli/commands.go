package cli

import (
	"fmt"

	"github.com/arthur-debert/assetcp/internal/version"
	"github.com/arthur-debert/assetcp/pkg/config"
	"github.com/arthur-debert/assetcp/pkg/copier"
	"github.com/arthur-debert/assetcp/pkg/filesystem"
	"github.com/arthur-debert/assetcp/pkg/logging"
	"github.com/arthur-debert/assetcp/pkg/output"
	"github.com/arthur-debert/assetcp/pkg/tasks"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

type globalOptions struct {
	verbosity  int
	dryRun     bool
	noColor    bool
	root       string
	variant    string
	configFile string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "assetcp",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTasks(cmd, opts, tasks.DefaultTask)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	flags.BoolVar(&opts.noColor, "no-color", false, MsgFlagNoColor)
	flags.StringVarP(&opts.root, "root", "C", ".", MsgFlagRoot)
	flags.StringVar(&opts.variant, "variant", "", MsgFlagVariant)
	flags.StringVar(&opts.configFile, "config", "", MsgFlagConfig)

	rootCmd.AddCommand(newRunCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newDumpCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newManCmd())

	initTopics(rootCmd)

	return rootCmd
}

func newRunCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run [task...]",
		Short: MsgRunShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTasks(cmd, opts, args...)
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			g, _, err := loadGraph(opts)
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			return g.Names(), cobra.ShellCompDirectiveNoFileComp
		},
	}
}

func newListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, cfg, err := loadGraph(opts)
			if err != nil {
				return err
			}
			renderer := output.NewRenderer(cmd.OutOrStdout(), opts.noColor)
			return renderer.Tasks(cfg.Variant, cfg.Selected().Description, g)
		},
	}
}

func newDumpCmd(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: MsgDumpShort,
		Long:  MsgDumpLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.LoadOptions{ConfigFile: opts.configFile, Variant: opts.variant})
			if err != nil {
				return err
			}
			data, err := cfg.Dump(format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "toml", MsgFlagFormat)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "assetcp version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "man <dir>",
		Short:  MsgManShort,
		Args:   cobra.ExactArgs(1),
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return doc.GenManTree(cmd.Root(), ManHeader(), args[0])
		},
	}
}

// ManHeader is shared by the man subcommand and the standalone man page generator
func ManHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "ASSETCP",
		Section: "1",
		Source:  "assetcp " + version.Version,
		Manual:  "assetcp manual",
	}
}

func loadGraph(opts *globalOptions) (*tasks.Graph, *config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{ConfigFile: opts.configFile, Variant: opts.variant})
	if err != nil {
		return nil, nil, err
	}
	g, err := cfg.Graph()
	if err != nil {
		return nil, nil, err
	}
	return g, cfg, nil
}

func runTasks(cmd *cobra.Command, opts *globalOptions, names ...string) error {
	logger := logging.GetLogger("cli.run")

	g, cfg, err := loadGraph(opts)
	if err != nil {
		return err
	}

	fsys, err := filesystem.NewOS(opts.root)
	if err != nil {
		return err
	}

	logger.Info().
		Str("root", opts.root).
		Str("variant", cfg.Variant).
		Strs("tasks", names).
		Bool("dryRun", opts.dryRun).
		Msg("Starting copy")

	c := copier.New(copier.Options{FS: fsys, DryRun: opts.dryRun})
	result, err := g.Run(cmd.Context(), c, names...)
	if err != nil {
		return err
	}

	return output.NewRenderer(cmd.OutOrStdout(), opts.noColor).Result(result)
}
