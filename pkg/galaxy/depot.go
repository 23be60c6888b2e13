package galaxy

import (
	"context"
	"strings"

	"github.com/glorpus-work/gogalaxy/pkg/document"
)

// NormalizeDepot resolves the v2 manifest for hash and converts its items
// into depot items.
func (c *Client) NormalizeDepot(ctx context.Context, hash string, isDependency bool) []DepotItem {
	return NormalizeDepotManifest(c.ResolveManifestV2(ctx, hash, isDependency), isDependency)
}

// NormalizeDepotManifest converts the "depot.items" list of a decoded v2
// depot manifest. Items without chunks are dropped.
func NormalizeDepotManifest(manifest document.Document, isDependency bool) []DepotItem {
	var items []DepotItem
	for _, node := range manifest.Path("depot.items").Array() {
		chunks := node.Get("chunks").Array()
		if len(chunks) == 0 {
			continue
		}

		item := DepotItem{
			Path:         normalizeSeparators(node.Get("path").String()),
			Chunks:       make([]Chunk, 0, len(chunks)),
			IsDependency: isDependency,
		}
		for _, cn := range chunks {
			chunk := Chunk{
				CompressedMD5:    cn.Get("compressedMd5").String(),
				MD5:              cn.Get("md5").String(),
				CompressedSize:   cn.Get("compressedSize").Uint(),
				Size:             cn.Get("size").Uint(),
				CompressedOffset: item.CompressedSize,
				Offset:           item.Size,
			}
			item.CompressedSize += chunk.CompressedSize
			item.Size += chunk.Size
			item.Chunks = append(item.Chunks, chunk)
		}

		switch {
		case node.Has("md5"):
			item.MD5 = node.Get("md5").String()
		case len(item.Chunks) == 1:
			item.MD5 = item.Chunks[0].MD5
		}
		items = append(items, item)
	}
	return items
}

// normalizeSeparators turns Windows separators into forward slashes.
func normalizeSeparators(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// DepotMatches reports whether a depot entry applies to the wanted language
// and architecture. A "*" tag matches anything; a depot without an
// "osBitness" list applies to every architecture.
func DepotMatches(depot document.Document, language, arch string) bool {
	languageMatch := false
	for _, tag := range depot.Get("languages").Strings() {
		if tag == "*" || strings.EqualFold(tag, language) {
			languageMatch = true
			break
		}
	}
	if !languageMatch {
		return false
	}

	if !depot.Has("osBitness") {
		return true
	}
	for _, tag := range depot.Get("osBitness").Strings() {
		if tag == "*" || tag == arch {
			return true
		}
	}
	return false
}

// SelectDepot normalizes the depot described by depot when it matches the
// wanted language and architecture, stamping its productId on every item.
func (c *Client) SelectDepot(ctx context.Context, depot document.Document, language, arch string, isDependency bool) []DepotItem {
	if !DepotMatches(depot, language, arch) {
		return nil
	}

	items := c.NormalizeDepot(ctx, depot.Get("manifest").String(), isDependency)
	if productID := depot.Get("productId").String(); productID != "" {
		for i := range items {
			items[i].ProductID = productID
		}
	}
	return items
}

// BuildItems applies SelectDepot to every depot a v2 build manifest lists
// and concatenates the results in depot order.
func (c *Client) BuildItems(ctx context.Context, manifest document.Document, language, arch string) []DepotItem {
	return c.selectDepots(ctx, manifest.Get("depots").Array(), language, arch, false)
}

// DependencyItems selects the depots of the dependency repository listing
// whose dependencyId is one of ids.
func (c *Client) DependencyItems(ctx context.Context, repository document.Document, ids []string, language, arch string) []DepotItem {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	var depots []document.Document
	for _, depot := range repository.Get("depots").Array() {
		if _, ok := wanted[depot.Get("dependencyId").String()]; ok {
			depots = append(depots, depot)
		}
	}
	return c.selectDepots(ctx, depots, language, arch, true)
}

func (c *Client) selectDepots(ctx context.Context, depots []document.Document, language, arch string, isDependency bool) []DepotItem {
	results := make([][]DepotItem, len(depots))
	c.parallel(ctx, len(depots), func(ctx context.Context, i int) {
		results[i] = c.SelectDepot(ctx, depots[i], language, arch, isDependency)
	})

	var items []DepotItem
	for _, r := range results {
		items = append(items, r...)
	}
	return items
}
