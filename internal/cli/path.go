package cli

import (
	"fmt"

	"github.com/glorpus-work/gogalaxy/pkg/galaxy"
	"github.com/spf13/cobra"
)

// NewPathCmd creates the path command.
func NewPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path URL SLUG",
		Short: "Resolve the local path of a download link",
		Long: `Derive the "/slug/file" path a resolved download link maps to.
Nothing is fetched. An empty line means the link yields no usable path.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), galaxy.PathFromDownlink(args[0], args[1]))
			return err
		},
	}

	return cmd
}
