package galaxy

import "github.com/glorpus-work/gogalaxy/pkg/platform"

// FileOptions select which legacy download categories are read and which
// platform and language nodes are kept.
type FileOptions struct {
	// Platforms and Languages are bitmasks from the platform package.
	Platforms uint
	Languages uint

	Installers    bool
	Extras        bool
	Patches       bool
	LanguagePacks bool
	DLC           bool

	// DuplicateHandler merges files sharing a path within one category by
	// OR-ing their language masks.
	DuplicateHandler bool
}

// DefaultFileOptions selects every category for English on the current platform.
func DefaultFileOptions() FileOptions {
	return FileOptions{
		Platforms:        platform.CurrentPlatform(),
		Languages:        platform.LanguageMask("en"),
		Installers:       true,
		Extras:           true,
		Patches:          true,
		LanguagePacks:    true,
		DLC:              true,
		DuplicateHandler: true,
	}
}
