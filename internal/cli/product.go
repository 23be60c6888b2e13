package cli

import (
	"text/tabwriter"

	"github.com/glorpus-work/gogalaxy/internal/logger"
	"github.com/spf13/cobra"
)

// NewProductCmd creates the product command.
func NewProductCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product PRODUCT_ID",
		Short: "List the downloadable files of a product",
		Long: `Fetch product information and list its installers, extras, patches,
language packs and DLC, reduced to the configured platform and language
selection and the optional selection script.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProduct(cmd, args[0])
		},
	}

	return cmd
}

func runProduct(cmd *cobra.Command, productID string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	opts, err := s.cfg.Selection.FileOptions()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	info := s.client.ProductInfo(ctx, productID)
	if info.IsEmpty() {
		logger.Warn("No product information returned", logger.Fields{"product_id": productID})
		return nil
	}

	details, err := s.selector.FilterDetails(ctx, s.client.GameDetails(ctx, info, opts))
	if err != nil {
		return err
	}
	if !details.HasFiles() && len(details.DLCs) == 0 {
		logger.Info("No files match the current selection", logger.Fields{"product_id": productID})
	}

	return render(cmd.OutOrStdout(), s.cfg, details, func(tw *tabwriter.Writer) {
		writeDetails(tw, details, 0)
	})
}
