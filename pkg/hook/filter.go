package hook

import (
	"context"

	"github.com/glorpus-work/gogalaxy/pkg/galaxy"
)

// FilterFiles keeps the files the script accepts, in order.
func (s *Selector) FilterFiles(ctx context.Context, files []galaxy.GameFile) ([]galaxy.GameFile, error) {
	if s == nil {
		return files, nil
	}
	var kept []galaxy.GameFile
	for _, f := range files {
		ok, err := s.KeepFile(ctx, f)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, f)
		}
	}
	return kept, nil
}

// FilterItems keeps the depot items the script accepts, in order.
func (s *Selector) FilterItems(ctx context.Context, items []galaxy.DepotItem) ([]galaxy.DepotItem, error) {
	if s == nil {
		return items, nil
	}
	var kept []galaxy.DepotItem
	for _, item := range items {
		ok, err := s.KeepItem(ctx, item)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, item)
		}
	}
	return kept, nil
}

// FilterDetails applies the script to every file of a details tree. DLCs
// left without files are dropped.
func (s *Selector) FilterDetails(ctx context.Context, details galaxy.GameDetails) (galaxy.GameDetails, error) {
	if s == nil {
		return details, nil
	}

	var err error
	out := details
	for _, category := range []*[]galaxy.GameFile{&out.Installers, &out.Extras, &out.Patches, &out.LanguagePacks} {
		if *category, err = s.FilterFiles(ctx, *category); err != nil {
			return galaxy.GameDetails{}, err
		}
	}

	out.DLCs = nil
	for _, dlc := range details.DLCs {
		filtered, err := s.FilterDetails(ctx, dlc)
		if err != nil {
			return galaxy.GameDetails{}, err
		}
		if filtered.HasFiles() {
			out.DLCs = append(out.DLCs, filtered)
		}
	}
	return out, nil
}
