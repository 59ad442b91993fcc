package diffmask

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/diffmask/cmd/diffmask/topics"
	"github.com/arthur-debert/diffmask/internal/version"
	cobratopics "github.com/arthur-debert/diffmask/pkg/cobrax/topics"
	"github.com/arthur-debert/diffmask/pkg/commands"
	"github.com/arthur-debert/diffmask/pkg/logging"
)

// VimdiffPrefix makes the vimdiff command the default when the binary is
// invoked under a name starting with it.
const VimdiffPrefix = "vimdiff"

// ArgsFor returns the command line to execute for a binary invoked as
// argv0 with args.
func ArgsFor(argv0 string, args []string) []string {
	if strings.HasPrefix(filepath.Base(argv0), VimdiffPrefix) {
		return append([]string{"vimdiff"}, args...)
	}
	return args
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	g := &globals{}

	rootCmd := &cobra.Command{
		Use:     "diffmask",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(g.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVarP(&g.unmaskFile, "unmask-file", "U", "", MsgFlagUnmaskFile)
	pf.StringVar(&g.configRoot, "config-root", "", MsgFlagConfigRoot)
	pf.StringVar(&g.configFile, "config", "", MsgFlagConfig)
	pf.StringVar(&g.format, "format", "auto", MsgFlagFormat)

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newUpdateCmd(g))
	rootCmd.AddCommand(newAddCmd(g))
	rootCmd.AddCommand(newVimdiffCmd(g))
	rootCmd.AddCommand(newShowCmd(g))
	rootCmd.AddCommand(newInspectCmd(g))
	rootCmd.AddCommand(newConfigCmd(g))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	opts := cobratopics.Options{
		Extensions: []string{".md"},
		Renderer:   cobratopics.NewGlamourRenderer(),
	}
	if _, err := cobratopics.InitializeWithOptions(rootCmd, topics.FS, opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func newUpdateCmd(g *globals) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "update",
		Short:   MsgUpdateShort,
		Long:    MsgUpdateLong,
		Example: MsgUpdateExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := runtimeFor(cmd, g)
			if err != nil {
				return err
			}

			log.Info().
				Str("config_root", rt.paths.ConfigRoot()).
				Bool("dry_run", dryRun).
				Msg("Updating package.unmask")

			result, err := commands.Update(commands.UpdateOptions{
				FS:         rt.fs,
				Config:     rt.cfg,
				Paths:      rt.paths,
				UnmaskFile: g.unmaskFile,
				DryRun:     dryRun,
			})
			if err != nil {
				return err
			}
			return rt.renderer.RenderResult(result)
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, MsgFlagDryRun)
	return cmd
}

func newAddCmd(g *globals) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "add <package>...",
		Short:   MsgAddShort,
		Long:    MsgAddLong,
		Example: MsgAddExample,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := runtimeFor(cmd, g)
			if err != nil {
				return err
			}

			log.Info().Strs("packages", args).Bool("dry_run", dryRun).Msg("Adding packages")

			result, err := commands.AddPackages(commands.AddOptions{
				FS:         rt.fs,
				Config:     rt.cfg,
				Paths:      rt.paths,
				UnmaskFile: g.unmaskFile,
				Packages:   args,
				DryRun:     dryRun,
			})
			if err != nil {
				return err
			}
			return rt.renderer.RenderResult(result)
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, MsgFlagDryRun)
	return cmd
}

func newVimdiffCmd(g *globals) *cobra.Command {
	var command string

	cmd := &cobra.Command{
		Use:     "vimdiff",
		Short:   MsgVimdiffShort,
		Long:    MsgVimdiffLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := runtimeFor(cmd, g)
			if err != nil {
				return err
			}
			return commands.Diff(cmd.Context(), commands.DiffOptions{
				FS:         rt.fs,
				Config:     rt.cfg,
				Paths:      rt.paths,
				UnmaskFile: g.unmaskFile,
				Command:    command,
				Stdin:      os.Stdin,
				Stdout:     cmd.OutOrStdout(),
				Stderr:     cmd.ErrOrStderr(),
			})
		},
	}

	cmd.Flags().StringVar(&command, "cmd", "", MsgFlagCmd)
	return cmd
}

func newShowCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "show",
		Short:   MsgShowShort,
		Long:    MsgShowLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := runtimeFor(cmd, g)
			if err != nil {
				return err
			}
			result, err := commands.MergedMask(commands.MergeOptions{
				FS:     rt.fs,
				Config: rt.cfg,
				Paths:  rt.paths,
			})
			if err != nil {
				return err
			}
			return rt.renderer.RenderResult(result)
		},
	}
}

func newInspectCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:       "inspect [mask|unmask]",
		Short:     MsgInspectShort,
		Long:      MsgInspectLong,
		Example:   MsgInspectExample,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{commands.SourceMask, commands.SourceUnmask},
		GroupID:   "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := runtimeFor(cmd, g)
			if err != nil {
				return err
			}
			source := commands.SourceMask
			if len(args) == 1 {
				source = args[0]
			}
			result, err := commands.Inspect(commands.InspectOptions{
				FS:         rt.fs,
				Config:     rt.cfg,
				Paths:      rt.paths,
				Source:     source,
				UnmaskFile: g.unmaskFile,
			})
			if err != nil {
				return err
			}
			return rt.renderer.RenderResult(result)
		},
	}
}

func newConfigCmd(g *globals) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := runtimeFor(cmd, g)
			if err != nil {
				return err
			}
			result, err := commands.GenConfig(commands.GenConfigOptions{
				FS:     rt.fs,
				Config: rt.cfg,
				Paths:  rt.paths,
				Write:  write,
			})
			if err != nil {
				return err
			}
			return rt.renderer.RenderResult(result)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Run != nil {
				helpCmd.Run(helpCmd, []string{"topics"})
				return nil
			}
			return fmt.Errorf(MsgErrHelpAbsent)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}
