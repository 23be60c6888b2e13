package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/glorpus-work/gogalaxy/internal/logger"
	"github.com/glorpus-work/gogalaxy/pkg/document"
	"github.com/glorpus-work/gogalaxy/pkg/galaxy"
	"github.com/spf13/cobra"
)

// NewDependenciesCmd creates the dependencies command.
func NewDependenciesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dependencies",
		Short: "List the redistributable dependencies",
		Long:  "List the depots of the shared dependency repository",
		Args:  cobra.NoArgs,
		RunE:  runDependencies,
	}

	return cmd
}

type dependencyDepot struct {
	ID        string   `json:"dependency_id"`
	Manifest  string   `json:"manifest"`
	Size      uint64   `json:"size"`
	Languages []string `json:"languages"`
	Bitness   []string `json:"os_bitness"`
}

func runDependencies(cmd *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	repository := s.client.DependenciesRepository(cmd.Context())
	var depots []dependencyDepot
	for _, d := range repository.Get("depots").Array() {
		depots = append(depots, dependencyDepot{
			ID:        d.Get("dependencyId").String(),
			Manifest:  d.Get("manifest").String(),
			Size:      d.Get("size").Uint(),
			Languages: d.Get("languages").Strings(),
			Bitness:   d.Get("osBitness").Strings(),
		})
	}
	if len(depots) == 0 {
		logger.Warn("No dependency depots returned")
	}

	return render(cmd.OutOrStdout(), s.cfg, depots, func(tw *tabwriter.Writer) {
		_, _ = fmt.Fprintln(tw, "DEPENDENCY\tSIZE\tLANGUAGES\tBITNESS\tMANIFEST")
		for _, d := range depots {
			_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n",
				d.ID, d.Size, joinOrDash(d.Languages), joinOrDash(d.Bitness), galaxy.HashToPath(d.Manifest))
		}
	})
}

// NewUserDataCmd creates the userdata command.
func NewUserDataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "userdata",
		Short: "Print the account's user data",
		Long:  "Print the user data document of the account the token belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printDocument(cmd, func(s *session) document.Document {
				return s.client.UserData(cmd.Context())
			})
		},
	}

	return cmd
}
