package cli

import (
	"github.com/glorpus-work/gogalaxy/internal/logger"
	"github.com/glorpus-work/gogalaxy/pkg/document"
	"github.com/spf13/cobra"
)

// Number of arguments expected by the manifest v1 command.
const manifestV1Args = 4

// NewManifestCmd creates the manifest command with subcommands.
func NewManifestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Print raw manifests",
		Long:  "Fetch and print generation 1 or generation 2 manifest documents",
	}

	cmd.AddCommand(
		newManifestV1Cmd(),
		newManifestV2Cmd(),
	)

	return cmd
}

func newManifestV1Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "v1 PRODUCT_ID BUILD_ID MANIFEST_ID PLATFORM",
		Short: "Print a generation 1 manifest",
		Args:  cobra.ExactArgs(manifestV1Args),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printDocument(cmd, func(s *session) document.Document {
				return s.client.ResolveManifestV1(cmd.Context(), args[0], args[1], args[2], args[3])
			})
		},
	}

	return cmd
}

func newManifestV2Cmd() *cobra.Command {
	var dependency bool

	cmd := &cobra.Command{
		Use:   "v2 HASH",
		Short: "Print a generation 2 manifest",
		Long:  "Fetch a generation 2 manifest or depot document by its content hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printDocument(cmd, func(s *session) document.Document {
				return s.client.ResolveManifestV2(cmd.Context(), args[0], dependency)
			})
		},
	}

	cmd.Flags().BoolVar(&dependency, "dependency", false, "look the hash up in the dependency store")

	return cmd
}

// printDocument opens a session, fetches one document and prints it. An
// empty document is reported but does not fail the command.
func printDocument(cmd *cobra.Command, get func(*session) document.Document) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	doc := get(s)
	if doc.IsEmpty() {
		logger.Warn("Nothing returned", logger.Fields{"command": cmd.CommandPath()})
		return nil
	}
	return renderDocument(cmd.OutOrStdout(), s.cfg, doc)
}
