package hook

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/gogalaxy/pkg/errors"
)

// ScriptFileExtension marks a select_script value as a file reference.
const ScriptFileExtension = ".tengo"

// LoadSource resolves a select_script setting. Values starting with "@" or
// ending in ".tengo" name a script file; anything else is inline source.
func LoadSource(value string) (string, error) {
	value = strings.TrimSpace(value)
	var file string
	switch {
	case strings.HasPrefix(value, "@"):
		file = value[1:]
	case filepath.Ext(value) == ScriptFileExtension && !strings.ContainsAny(value, "\n;="):
		file = value
	default:
		return value, nil
	}

	content, err := os.ReadFile(file)
	if err != nil {
		return "", errors.Wrapf(err, "error reading selection script %s", file)
	}
	return string(content), nil
}

// Load resolves value with LoadSource and compiles it.
func Load(value string) (*Selector, error) {
	source, err := LoadSource(value)
	if err != nil {
		return nil, err
	}
	return NewSelector(source)
}
