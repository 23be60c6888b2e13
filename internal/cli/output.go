package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/glorpus-work/gogalaxy/pkg/config"
	"github.com/glorpus-work/gogalaxy/pkg/document"
	"github.com/glorpus-work/gogalaxy/pkg/galaxy"
	"github.com/glorpus-work/gogalaxy/pkg/platform"
	"github.com/tidwall/pretty"
)

// render writes v as indented JSON when the json output format is selected
// and through table otherwise.
func render(w io.Writer, cfg *config.Config, v any, table func(tw *tabwriter.Writer)) error {
	if cfg.Settings.OutputFormat == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	tw := tabwriter.NewWriter(w, 0, 0, TabWidth, ' ', 0)
	table(tw)
	return tw.Flush()
}

// renderDocument prints an upstream document verbatim, compacted for json
// output and indented for text output.
func renderDocument(w io.Writer, cfg *config.Config, doc document.Document) error {
	raw := []byte(doc.Raw())
	if cfg.Settings.OutputFormat == OutputJSON {
		raw = append(pretty.Ugly(raw), '\n')
	} else {
		raw = pretty.Pretty(raw)
	}
	_, err := w.Write(raw)
	return err
}

func writeDetails(tw *tabwriter.Writer, details galaxy.GameDetails, depth int) {
	indent := strings.Repeat("  ", depth)
	_, _ = fmt.Fprintf(tw, "%s%s (%s, %s)\n", indent, details.Title, details.Slug, details.ProductID)
	if depth == 0 {
		_, _ = fmt.Fprintln(tw, "TYPE\tID\tNAME\tVERSION\tPLATFORM\tLANGUAGE\tSIZE\tPATH")
	}
	for _, f := range details.Files() {
		_, _ = fmt.Fprintf(tw, "%s%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			indent, f.Type, f.ID, f.Name, orDash(f.Version),
			codes(f.Platform, platform.Platforms), codes(f.Language, platform.Languages),
			f.Size, f.Path)
	}
	for _, dlc := range details.DLCs {
		writeDetails(tw, dlc, depth+1)
	}
}

func writeBuilds(tw *tabwriter.Writer, builds []galaxy.Build) {
	_, _ = fmt.Fprintln(tw, "BUILD ID\tVERSION\tBRANCH\tGEN\tPUBLIC\tPUBLISHED")
	for _, b := range builds {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%t\t%s\n",
			b.ID, orDash(b.VersionName), orDash(b.Branch), b.Generation, b.Public, b.DatePublished)
	}
}

func writeItems(tw *tabwriter.Writer, items []galaxy.DepotItem) {
	_, _ = fmt.Fprintln(tw, "PATH\tSIZE\tCHUNKS\tMD5\tPRODUCT\tDEPENDENCY")
	for _, item := range items {
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%t\n",
			item.Path, item.Size, len(item.Chunks), orDash(item.MD5), orDash(item.ProductID), item.IsDependency)
	}
}

func codes(mask uint, options []platform.Option) string {
	if mask == 0 {
		return "-"
	}
	return strings.Join(platform.Codes(mask, options), ",")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ",")
}
