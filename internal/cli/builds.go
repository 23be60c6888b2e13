package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/glorpus-work/gogalaxy/internal/logger"
	"github.com/glorpus-work/gogalaxy/pkg/config"
	"github.com/glorpus-work/gogalaxy/pkg/errors"
	"github.com/glorpus-work/gogalaxy/pkg/platform"
	"github.com/spf13/cobra"
)

// NewBuildsCmd creates the builds command.
func NewBuildsCmd() *cobra.Command {
	var (
		platformName string
		generation   int
	)

	cmd := &cobra.Command{
		Use:   "builds PRODUCT_ID",
		Short: "List the builds of a product",
		Long:  "List the published builds of a product for one platform, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuilds(cmd, args[0], platformName, generation)
		},
	}

	cmd.Flags().StringVar(&platformName, "platform", "", "platform to list builds for (default: first configured platform)")
	cmd.Flags().IntVar(&generation, "generation", DefaultGeneration, "manifest generation (1 or 2)")

	return cmd
}

func runBuilds(cmd *cobra.Command, productID, platformName string, generation int) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	buildOS, err := resolveBuildOS(s.cfg, platformName)
	if err != nil {
		return err
	}

	builds := s.client.ProductBuilds(cmd.Context(), productID, buildOS, generation)
	if len(builds) == 0 {
		logger.Info("No builds found", logger.Fields{"product_id": productID, "os": buildOS, "generation": generation})
	}

	return render(cmd.OutOrStdout(), s.cfg, builds, func(tw *tabwriter.Writer) {
		writeBuilds(tw, builds)
	})
}

// resolveBuildOS maps a --platform value, or the first configured platform
// when it is empty, to the os segment of the build listing.
func resolveBuildOS(cfg *config.Config, name string) (string, error) {
	selection := name
	if selection == "" {
		selection = cfg.Selection.Platforms
	}
	mask, err := platform.ParsePlatforms(selection)
	if err != nil {
		return "", err
	}
	if name != "" && platform.PlatformMask(name) == 0 {
		return "", fmt.Errorf("--platform takes a single platform: %w", errors.InvalidValue(errors.ErrInvalidPlatform, name))
	}
	return platform.BuildOS(mask), nil
}
