package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/t6modm/t6modm/pkg/build"
	"github.com/t6modm/t6modm/pkg/config"
	"github.com/t6modm/t6modm/pkg/errors"
	"github.com/t6modm/t6modm/pkg/logging"
	"github.com/t6modm/t6modm/pkg/paths"
	"github.com/t6modm/t6modm/pkg/project"
	"github.com/t6modm/t6modm/pkg/types"
)

type buildOptions struct {
	target       string
	wait         bool
	projectDir   string
	outputFolder string
}

func newBuildCmd(rt runtime) *cobra.Command {
	var opts buildOptions

	cmd := &cobra.Command{
		Use:     "build",
		Short:   MsgBuildShort,
		Long:    MsgBuildLong,
		Example: MsgBuildExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runBuild(cmd, rt, opts)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), MsgBuildFailed)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), NewRenderer(cmd.OutOrStdout()).RenderBuild(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.target, "target", "t", string(types.TargetDebug), MsgFlagTarget)
	cmd.Flags().BoolVarP(&opts.wait, "wait", "w", false, MsgFlagWait)
	cmd.Flags().StringVarP(&opts.projectDir, "project-dir", "p", "", MsgFlagProjectDir)
	cmd.Flags().StringVarP(&opts.outputFolder, "output-folder", "o", "", MsgFlagOutputFolder)

	_ = cmd.RegisterFlagCompletionFunc("target", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(types.Targets))
		for _, t := range types.Targets {
			names = append(names, t.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.MarkFlagDirname("project-dir")
	_ = cmd.MarkFlagDirname("output-folder")

	return cmd
}

func runBuild(cmd *cobra.Command, rt runtime, opts buildOptions) (*build.Result, error) {
	logger := logging.GetLogger("cli.build")

	target, err := types.ParseTarget(opts.target)
	if err != nil {
		return nil, errors.Newf(errors.ErrInvalidInput, MsgErrInvalidTarget, opts.target)
	}

	p, err := paths.New(opts.projectDir)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(p)
	if err != nil {
		return nil, err
	}

	proj, err := project.Load(rt.fs, p, cfg.Game.Home)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Info().
		Str("project", p.Home()).
		Str("target", target.String()).
		Bool("wait", opts.wait).
		Msg("Starting build")

	return build.New(rt.fs, cfg, rt.runner).Build(cmd.Context(), proj, build.Options{
		Target:    target,
		Wait:      opts.wait,
		OutputDir: opts.outputFolder,
	})
}
