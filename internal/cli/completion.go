package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/t6modm/t6modm/pkg/errors"
)

// GenCompletion writes the completion script for shell
func GenCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	}
	return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownShell, shell)
}
