package galaxy

import (
	"context"

	"github.com/glorpus-work/gogalaxy/pkg/document"
	"github.com/glorpus-work/gogalaxy/pkg/platform"
)

// ProductInfo returns the product document with downloads and DLCs expanded.
func (c *Client) ProductInfo(ctx context.Context, productID string) document.Document {
	return c.document(ctx, c.endpoints.productInfoURL(productID), false)
}

// GameDetails assembles the aggregate for a product document. Only the
// categories enabled in opts are read. DLCs are included when they yield at
// least one file, and all of their files carry the DLC bit.
func (c *Client) GameDetails(ctx context.Context, info document.Document, opts FileOptions) GameDetails {
	details := GameDetails{
		Slug:      info.Get("slug").String(),
		ProductID: info.Get("id").String(),
		Title:     info.Get("title").String(),
	}
	if icon := info.Path("images.icon").String(); icon != "" {
		details.Icon = "https:" + icon
	}
	if info.Has("changelog") {
		details.Changelog = info.Get("changelog").String()
	}

	downloads := info.Get("downloads")
	if opts.Installers {
		details.Installers = c.NormalizeFiles(ctx, details.Slug, downloads.Get("installers"), TypeInstaller, opts)
	}
	if opts.Extras {
		details.Extras = c.NormalizeFiles(ctx, details.Slug, downloads.Get("bonus_content"), TypeExtra, opts)
	}
	if opts.Patches {
		details.Patches = c.NormalizeFiles(ctx, details.Slug, downloads.Get("patches"), TypePatch, opts)
	}
	if opts.LanguagePacks {
		details.LanguagePacks = c.NormalizeFiles(ctx, details.Slug, downloads.Get("language_packs"), TypeLangpack, opts)
	}

	if opts.DLC {
		for _, dlcInfo := range info.Get("expanded_dlcs").Array() {
			dlc := c.GameDetails(ctx, dlcInfo, opts)
			dlc.markDLC()
			if !dlc.HasFiles() {
				c.log.Debug("dropping DLC without files", "slug", dlc.Slug, "product_id", dlc.ProductID)
				continue
			}
			details.DLCs = append(details.DLCs, dlc)
		}
	}
	return details
}

// pendingFile is a file node that passed the node-level filters and waits
// for its downlink to be resolved.
type pendingFile struct {
	node     document.Document
	name     string
	version  string
	platform uint
	language uint
}

// NormalizeFiles converts one legacy download category into game files.
//
// Downlinks are resolved in parallel; files are then assembled in upstream
// declaration order so that duplicate merging is deterministic. Merging is
// scoped to this one call.
func (c *Client) NormalizeFiles(ctx context.Context, slug string, nodes document.Document, fileType FileType, opts FileOptions) []GameFile {
	isExtra := fileType.Has(TypeExtra)

	var pending []pendingFile
	for _, node := range nodes.Array() {
		p := pendingFile{
			name:    node.Get("name").String(),
			version: node.Get("version").String(),
		}

		if !isExtra {
			p.platform = platform.PlatformMask(node.Get("os").String())
			p.language = platform.LanguageMask(node.Get("language").String())
			if p.platform&opts.Platforms == 0 || p.language&opts.Languages == 0 {
				continue
			}
		}

		if node.Get("count").Uint() == 0 && node.Get("total_size").Uint() == 0 {
			c.log.Debug("skipping download without content", "game", slug, "name", p.name)
			continue
		}

		for _, file := range node.Get("files").Array() {
			p.node = file
			pending = append(pending, p)
		}
	}

	paths := make([]string, len(pending))
	c.parallel(ctx, len(pending), func(ctx context.Context, i int) {
		paths[i] = c.resolveDownlinkPath(ctx, slug, pending[i].node.Get("downlink").String())
	})

	var files []GameFile
	for i, p := range pending {
		path := paths[i]
		if path == "" {
			continue
		}

		gf := GameFile{
			Game:        slug,
			Type:        fileType,
			ID:          p.node.Get("id").String(),
			Name:        p.name,
			Version:     p.version,
			Path:        path,
			Size:        p.node.Get("size").UintString(),
			DownlinkURL: p.node.Get("downlink").String(),
		}
		if !isExtra {
			gf.Platform = p.platform
			gf.Language = p.language
		}

		if opts.DuplicateHandler && mergeDuplicate(files, gf, isExtra) {
			continue
		}
		files = append(files, gf)
	}
	return files
}

// resolveDownlinkPath performs the secondary downlink round trip and derives
// the file path. "" means the file must be skipped.
func (c *Client) resolveDownlinkPath(ctx context.Context, slug, downlink string) string {
	if downlink == "" {
		return ""
	}
	resp := c.document(ctx, downlink, false)
	if resp.IsEmpty() {
		c.log.Debug("skipping file with unresolved downlink", "game", slug)
		return ""
	}

	path := PathFromDownlink(resp.Get("downlink").String(), slug)
	if path == "" || isSecurePlaceholder(path) {
		c.log.Debug("skipping file with invalid path", "game", slug, "path", path)
		return ""
	}
	return path
}

// mergeDuplicate folds gf into an earlier file with the same path. The
// first occurrence wins; extras keep their unset masks.
func mergeDuplicate(files []GameFile, gf GameFile, isExtra bool) bool {
	for i := range files {
		if files[i].Path == gf.Path {
			if !isExtra {
				files[i].Language |= gf.Language
			}
			return true
		}
	}
	return false
}
