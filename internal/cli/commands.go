package cli

import (
	stderrors "errors"
	"fmt"

	"github.com/arthur-debert/dot/pkg/config"
	"github.com/arthur-debert/dot/pkg/operations"
	"github.com/arthur-debert/dot/pkg/reconcile"
	"github.com/arthur-debert/dot/pkg/style"
	"github.com/spf13/cobra"
)

func newLinkCmd(g *globalOptions) *cobra.Command {
	cmd := newOperationCmd(g, operations.Link)
	cmd.Short = MsgLinkShort
	cmd.Long = MsgLinkLong
	cmd.Example = MsgLinkExample
	return cmd
}

func newUnlinkCmd(g *globalOptions) *cobra.Command {
	cmd := newOperationCmd(g, operations.Unlink)
	cmd.Short = MsgUnlinkShort
	cmd.Long = MsgUnlinkLong
	cmd.Example = MsgUnlinkExample
	return cmd
}

// newOperationCmd builds the command running op over the profile arguments
func newOperationCmd(g *globalOptions, op operations.Operation) *cobra.Command {
	var (
		home   string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use: op.String() + " [flags] PROFILE...",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return stderrors.New(MsgErrNoProfiles)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("home") {
				overrides["home"] = home
			}

			cfg, err := loadConfig(cmd, g, overrides)
			if err != nil {
				return fatal(err)
			}

			result, err := reconcile.Run(reconcile.Options{
				Operation: op,
				Home:      cfg.Home,
				Profiles:  args,
				DryRun:    dryRun,
				Verbosity: g.verbosity,
				Color:     useColor(cmd, cfg),
				Output:    cmd.ErrOrStderr(),
				Config:    cfg,
			})
			if err != nil {
				return fatal(err)
			}
			if result.Status == reconcile.Aborted {
				return errConflicts
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&home, "home", "~", MsgFlagHome)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, MsgFlagDryRun)
	addNegatedBool(cmd.Flags(), &dryRun, "no-dry-run", MsgFlagNoDryRun)

	return cmd
}

func newConfigCmd(g *globalOptions) *cobra.Command {
	var (
		format   string
		defaults bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.GetDefaultConfigContent())
				return fatal(err)
			}

			cfg, err := loadConfig(cmd, g, nil)
			if err != nil {
				return fatal(err)
			}
			out, err := cfg.Dump(format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return fatal(err)
		},
	}

	cmd.Flags().StringVar(&format, "format", config.FormatTOML, MsgFlagFormat)
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{config.FormatTOML, config.FormatYAML}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// useColor resolves the configured color mode against the reporter stream
func useColor(cmd *cobra.Command, cfg *config.Config) bool {
	mode, err := style.ParseColorMode(cfg.Output.Color)
	if err != nil {
		mode = style.ColorAuto
	}
	return style.UseColor(mode, cmd.ErrOrStderr())
}
