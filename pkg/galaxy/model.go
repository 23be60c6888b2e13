package galaxy

import "strings"

// FileType is the bitmask classifying a GameFile.
type FileType uint

const (
	TypeInstaller FileType = 1 << iota
	TypeExtra
	TypePatch
	TypeLangpack
	TypeDLC
)

var fileTypeNames = []struct {
	bit  FileType
	name string
}{
	{TypeInstaller, "installer"},
	{TypeExtra, "extra"},
	{TypePatch, "patch"},
	{TypeLangpack, "langpack"},
	{TypeDLC, "dlc"},
}

// Has reports whether all bits of flag are set.
func (t FileType) Has(flag FileType) bool {
	return t&flag == flag
}

// String joins the names of the set bits with "|".
func (t FileType) String() string {
	var parts []string
	for _, n := range fileTypeNames {
		if t.Has(n.bit) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Chunk is a content-addressed slice of a depot file. Offsets are the
// running totals of the preceding chunks of the same file.
type Chunk struct {
	CompressedMD5    string `json:"compressed_md5"`
	MD5              string `json:"md5"`
	CompressedSize   uint64 `json:"compressed_size"`
	Size             uint64 `json:"size"`
	CompressedOffset uint64 `json:"compressed_offset"`
	Offset           uint64 `json:"offset"`
}

// DepotItem is a file described by a v2 depot manifest.
type DepotItem struct {
	Path           string  `json:"path"`
	Chunks         []Chunk `json:"chunks"`
	CompressedSize uint64  `json:"compressed_size"`
	Size           uint64  `json:"size"`
	// MD5 is empty when the manifest carries no whole-file checksum and the
	// item has more than one chunk.
	MD5          string `json:"md5,omitempty"`
	ProductID    string `json:"product_id,omitempty"`
	IsDependency bool   `json:"is_dependency"`
}

// GameFile is a file described by the legacy product-info downloads schema.
type GameFile struct {
	Game    string   `json:"game"`
	Type    FileType `json:"type"`
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Version string   `json:"version"`
	Path    string   `json:"path"`
	// Size is kept as a decimal string; upstream values may exceed what
	// JSON numbers carry losslessly.
	Size     string `json:"size"`
	Platform uint   `json:"platform,omitempty"`
	Language uint   `json:"language,omitempty"`
	// DownlinkURL is the API URL that resolves to the time-limited download link.
	DownlinkURL string `json:"downlink_url"`
	Updated     bool   `json:"updated"`
}

// GameDetails is the aggregate for one product and its DLC tree.
type GameDetails struct {
	Slug          string        `json:"slug"`
	ProductID     string        `json:"product_id"`
	Title         string        `json:"title"`
	Icon          string        `json:"icon"`
	Changelog     string        `json:"changelog,omitempty"`
	Installers    []GameFile    `json:"installers"`
	Extras        []GameFile    `json:"extras"`
	Patches       []GameFile    `json:"patches"`
	LanguagePacks []GameFile    `json:"language_packs"`
	DLCs          []GameDetails `json:"dlcs"`
}

// HasFiles reports whether any of the four file sequences is non-empty.
// Nested DLCs are not considered.
func (g *GameDetails) HasFiles() bool {
	return len(g.Installers) > 0 || len(g.Extras) > 0 || len(g.Patches) > 0 || len(g.LanguagePacks) > 0
}

// Files returns the four file sequences concatenated in category order.
func (g *GameDetails) Files() []GameFile {
	files := make([]GameFile, 0, len(g.Installers)+len(g.Extras)+len(g.Patches)+len(g.LanguagePacks))
	files = append(files, g.Installers...)
	files = append(files, g.Extras...)
	files = append(files, g.Patches...)
	return append(files, g.LanguagePacks...)
}

func (g *GameDetails) markDLC() {
	for _, files := range [][]GameFile{g.Installers, g.Extras, g.Patches, g.LanguagePacks} {
		for i := range files {
			files[i].Type |= TypeDLC
		}
	}
}

// Build is one entry of a product's build listing.
type Build struct {
	ID            string `json:"build_id"`
	ProductID     string `json:"product_id"`
	OS            string `json:"os"`
	Branch        string `json:"branch,omitempty"`
	VersionName   string `json:"version_name"`
	Generation    int    `json:"generation"`
	Public        bool   `json:"public"`
	DatePublished string `json:"date_published"`
	Link          string `json:"link"`
}
