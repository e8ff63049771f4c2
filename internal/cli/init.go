package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/t6modm/t6modm/pkg/config"
	"github.com/t6modm/t6modm/pkg/project"
)

func newInitCmd(rt runtime) *cobra.Command {
	var opts project.CreateOptions

	cmd := &cobra.Command{
		Use:     "init <name>",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Example: MsgInitExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Name = args[0]
			opts.LinkerHome = os.Getenv(config.EnvLinkerHome)
			opts.GameHome = os.Getenv(config.EnvGameHome)

			p, err := project.Create(rt.fs, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), NewRenderer(cmd.OutOrStdout()).RenderInit(opts.Name, p))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Directory, "directory", "d", "", MsgFlagDirectory)
	cmd.Flags().StringVar(&opts.Description, "description", "", MsgFlagDescription)
	cmd.Flags().StringVar(&opts.Author, "author", "", MsgFlagAuthor)
	_ = cmd.MarkFlagDirname("directory")

	return cmd
}
