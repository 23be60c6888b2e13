package cli

import (
	"fmt"

	"github.com/glorpus-work/gogalaxy/pkg/fetch"
	"github.com/spf13/cobra"
)

// Build information, set through -ldflags.
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version information for gogalaxy",
		Args:  cobra.NoArgs,
		Run:   runVersion,
	}

	return cmd
}

func runVersion(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "gogalaxy version %s\n", Version)
	_, _ = fmt.Fprintf(out, "Build date: %s\n", BuildDate)
	_, _ = fmt.Fprintf(out, "Git commit: %s\n", GitCommit)
	_, _ = fmt.Fprintf(out, "User agent: %s\n", fetch.DefaultUserAgent)
}
