package cli

import (
	"text/tabwriter"

	"github.com/glorpus-work/gogalaxy/internal/logger"
	"github.com/glorpus-work/gogalaxy/pkg/galaxy"
	"github.com/spf13/cobra"
)

type itemsOptions struct {
	platform     string
	buildID      string
	version      string
	language     string
	arch         string
	dependencies bool
}

// NewItemsCmd creates the items command.
func NewItemsCmd() *cobra.Command {
	var opts itemsOptions

	cmd := &cobra.Command{
		Use:   "items PRODUCT_ID",
		Short: "List the depot items of a build",
		Long: `Select a generation 2 build of a product, resolve its manifest and list
the files of every depot matching the language and architecture.

Without --build or --version the newest build is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runItems(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.platform, "platform", "", "platform of the build (default: first configured platform)")
	cmd.Flags().StringVar(&opts.buildID, "build", "", "build id to use")
	cmd.Flags().StringVar(&opts.version, "version", "", "version constraint the build must satisfy (e.g. \">= 1.2\")")
	cmd.Flags().StringVar(&opts.language, "language", "", "depot language (default: galaxy_language)")
	cmd.Flags().StringVar(&opts.arch, "arch", "", "depot architecture, 32, 64 or * (default: galaxy_arch)")
	cmd.Flags().BoolVar(&opts.dependencies, "dependencies", false, "include items of the build's dependencies")

	return cmd
}

func runItems(cmd *cobra.Command, productID string, opts itemsOptions) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	buildOS, err := resolveBuildOS(s.cfg, opts.platform)
	if err != nil {
		return err
	}
	if opts.language == "" {
		opts.language = s.cfg.Selection.GalaxyLanguage
	}
	if opts.arch == "" {
		opts.arch = s.cfg.Selection.GalaxyArch
	}

	ctx := cmd.Context()
	builds := s.client.ProductBuilds(ctx, productID, buildOS, DefaultGeneration)
	build, err := galaxy.SelectBuild(builds, opts.buildID, opts.version)
	if err != nil {
		return err
	}
	logger.Debug("Selected build", logger.Fields{"build_id": build.ID, "version": build.VersionName})

	manifest := s.client.BuildManifest(ctx, build)
	items := s.client.BuildItems(ctx, manifest, opts.language, opts.arch)

	if opts.dependencies {
		if ids := galaxy.ManifestDependencies(manifest); len(ids) > 0 {
			repository := s.client.DependenciesRepository(ctx)
			items = append(items, s.client.DependencyItems(ctx, repository, ids, opts.language, opts.arch)...)
		}
	}

	items, err = s.selector.FilterItems(ctx, items)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		logger.Info("No depot items found", logger.Fields{"product_id": productID, "build_id": build.ID})
	}

	return render(cmd.OutOrStdout(), s.cfg, items, func(tw *tabwriter.Writer) {
		writeItems(tw, items)
	})
}
