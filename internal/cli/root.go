// Package cli implements the dot command line.
package cli

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/arthur-debert/dot/internal/version"
	"github.com/arthur-debert/dot/pkg/config"
	"github.com/arthur-debert/dot/pkg/logging"
	"github.com/arthur-debert/dot/pkg/report"
	"github.com/arthur-debert/dot/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalOptions holds the flags shared by every command
type globalOptions struct {
	verbosity  int
	color      colorValue
	configFile string
	logFile    string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	g := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "dot",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logging.Options{
				Verbosity: g.verbosity,
				Console:   cmd.ErrOrStderr(),
				NoColor:   !style.UseColor(g.color.mode, cmd.ErrOrStderr()),
				LogFile:   g.logFile,
			})
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return stderrors.New(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().Var(&g.color, "color", MsgFlagColor)
	rootCmd.PersistentFlags().StringVar(&g.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&g.logFile, "log-file", "", MsgFlagLogFile)

	rootCmd.AddCommand(newLinkCmd(g))
	rootCmd.AddCommand(newUnlinkCmd(g))
	rootCmd.AddCommand(newConfigCmd(g))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the command line in args and returns the process exit status
func Execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteC()
	code := exitCode(err)
	if cmd == nil {
		cmd = rootCmd
	}

	styles := style.New(stderr, style.UseColor(style.ColorAuto, stderr))
	switch code {
	case ExitUsage:
		usage := report.Standardize("usage: " + cmd.UseLine())
		fmt.Fprintln(stderr, styles.Warning.Render(usage))
		fmt.Fprintln(stderr, styles.Error.Render(fmt.Sprintf(MsgErrUsage, err)))
	case ExitFatal:
		log.Debug().Err(err).Msg("Command failed")
		fmt.Fprintln(stderr, styles.Error.Render(fmt.Sprintf(MsgErrFatal, err)))
	}
	return code
}

// loadConfig layers the config sources with the command line overrides
func loadConfig(cmd *cobra.Command, g *globalOptions, overrides map[string]interface{}) (*config.Config, error) {
	if overrides == nil {
		overrides = map[string]interface{}{}
	}
	if cmd.Flags().Changed("color") {
		overrides["output.color"] = g.color.String()
	}
	return config.Load(config.LoadOptions{
		ConfigFile: g.configFile,
		Overrides:  overrides,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}
