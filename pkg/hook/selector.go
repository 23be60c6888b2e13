// Package hook runs user supplied tengo selection scripts over normalized
// listings. A script sees one file or depot item at a time through global
// variables and decides whether it is kept by assigning to keep.
package hook

import (
	"context"
	"fmt"
	"math"
	"path"
	"strconv"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/glorpus-work/gogalaxy/pkg/errors"
	"github.com/glorpus-work/gogalaxy/pkg/galaxy"
)

// Kinds of entries a script is run for.
const (
	KindFile = "file"
	KindItem = "item"
)

// Modules are the stdlib modules scripts may import.
var Modules = []string{"fmt", "text", "math", "times", "enum"}

// inputs declares every variable a script can read, with its zero value.
var inputs = map[string]interface{}{
	"kind":       "",
	"path":       "",
	"name":       "",
	"version":    "",
	"id":         "",
	"game":       "",
	"type":       int64(0),
	"platform":   int64(0),
	"language":   int64(0),
	"size":       int64(0),
	"dlc":        false,
	"product_id": "",
	"dependency": false,
	"chunks":     int64(0),
	"md5":        "",
}

// Selector is a compiled selection script. It is safe for concurrent use;
// a nil Selector keeps everything.
type Selector struct {
	compiled *tengo.Compiled
}

// NewSelector compiles source. Blank source yields a nil Selector.
func NewSelector(source string) (*Selector, error) {
	if strings.TrimSpace(source) == "" {
		return nil, nil
	}

	script := tengo.NewScript([]byte(source))
	script.SetImports(stdlib.GetModuleMap(Modules...))
	for name, zero := range inputs {
		if err := script.Add(name, zero); err != nil {
			return nil, fmt.Errorf("failed to add %s to script: %w", name, err)
		}
	}
	if err := script.Add("keep", true); err != nil {
		return nil, fmt.Errorf("failed to add keep to script: %w", err)
	}
	if err := script.Add("err", ""); err != nil {
		return nil, fmt.Errorf("failed to add err to script: %w", err)
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrHookCompile, err)
	}
	return &Selector{compiled: compiled}, nil
}

// KeepFile runs the script for a game file.
func (s *Selector) KeepFile(ctx context.Context, f galaxy.GameFile) (bool, error) {
	return s.run(ctx, map[string]interface{}{
		"kind":     KindFile,
		"path":     f.Path,
		"name":     f.Name,
		"version":  f.Version,
		"id":       f.ID,
		"game":     f.Game,
		"type":     int64(f.Type),
		"platform": int64(f.Platform),
		"language": int64(f.Language),
		"size":     parseSize(f.Size),
		"dlc":      f.Type.Has(galaxy.TypeDLC),
	})
}

// KeepItem runs the script for a depot item.
func (s *Selector) KeepItem(ctx context.Context, item galaxy.DepotItem) (bool, error) {
	return s.run(ctx, map[string]interface{}{
		"kind":       KindItem,
		"path":       item.Path,
		"name":       path.Base(item.Path),
		"size":       clampInt64(item.Size),
		"product_id": item.ProductID,
		"dependency": item.IsDependency,
		"chunks":     int64(len(item.Chunks)),
		"md5":        item.MD5,
	})
}

func (s *Selector) run(ctx context.Context, vars map[string]interface{}) (bool, error) {
	if s == nil {
		return true, nil
	}

	c := s.compiled.Clone()
	for name, zero := range inputs {
		value, ok := vars[name]
		if !ok {
			value = zero
		}
		if err := c.Set(name, value); err != nil {
			return false, fmt.Errorf("failed to set %s: %w", name, err)
		}
	}
	if err := c.Set("keep", true); err != nil {
		return false, fmt.Errorf("failed to set keep: %w", err)
	}
	if err := c.Set("err", ""); err != nil {
		return false, fmt.Errorf("failed to set err: %w", err)
	}

	if err := c.RunContext(ctx); err != nil {
		return false, fmt.Errorf("%w: %w", errors.ErrHookExecution, err)
	}

	switch v := c.Get("err").Value().(type) {
	case error:
		return false, fmt.Errorf("%w: %w", errors.ErrHookScript, v)
	case string:
		if v != "" {
			return false, fmt.Errorf("%w: %s", errors.ErrHookScript, v)
		}
	}
	return c.Get("keep").Bool(), nil
}

func parseSize(s string) int64 {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return clampInt64(n)
}

func clampInt64(n uint64) int64 {
	if n > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(n)
}
