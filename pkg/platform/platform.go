package platform

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/glorpus-work/gogalaxy/pkg/errors"
)

// Lookup returns the bit of the entry whose code, name or alias equals name
// (case-insensitive). Unknown names map to 0.
func Lookup(name string, options []Option) uint {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0
	}
	for _, opt := range options {
		if strings.EqualFold(name, opt.Code) || strings.EqualFold(name, opt.Name) {
			return opt.Value
		}
		for _, alias := range opt.Aliases {
			if strings.EqualFold(name, alias) {
				return opt.Value
			}
		}
	}
	return 0
}

// PlatformMask resolves a single platform name.
func PlatformMask(name string) uint {
	return Lookup(name, Platforms)
}

// LanguageMask resolves a single language name.
func LanguageMask(name string) uint {
	return Lookup(name, Languages)
}

// All returns the OR of every entry of the table.
func All(options []Option) uint {
	var mask uint
	for _, opt := range options {
		mask |= opt.Value
	}
	return mask
}

// Parse resolves a selection string into a mask. Accepted forms are "all",
// a decimal mask, or names joined by "," or "+". Names that resolve to
// nothing make the whole selection invalid.
func Parse(selection string, options []Option) (uint, error) {
	selection = strings.TrimSpace(selection)
	if strings.EqualFold(selection, AllKeyword) {
		return All(options), nil
	}
	if n, err := strconv.ParseUint(selection, 10, 64); err == nil {
		return uint(n) & All(options), nil
	}

	var mask uint
	for _, part := range strings.FieldsFunc(selection, func(r rune) bool { return r == ',' || r == '+' }) {
		value := Lookup(part, options)
		if value == 0 {
			return 0, errors.InvalidValue(errors.ErrConfigValidation, part)
		}
		mask |= value
	}
	return mask, nil
}

// ParsePlatforms parses a platform selection.
func ParsePlatforms(selection string) (uint, error) {
	mask, err := Parse(selection, Platforms)
	if err != nil || mask == 0 {
		return 0, errors.InvalidValue(errors.ErrInvalidPlatform, selection)
	}
	return mask, nil
}

// ParseLanguages parses a language selection.
func ParseLanguages(selection string) (uint, error) {
	mask, err := Parse(selection, Languages)
	if err != nil || mask == 0 {
		return 0, errors.InvalidValue(errors.ErrInvalidLanguage, selection)
	}
	return mask, nil
}

// Codes returns the codes of every entry set in mask, in table order.
func Codes(mask uint, options []Option) []string {
	var codes []string
	for _, opt := range options {
		if mask&opt.Value != 0 {
			codes = append(codes, opt.Code)
		}
	}
	return codes
}

// CurrentPlatform returns the platform bit of the running system, falling
// back to Windows for systems GOG ships nothing for.
func CurrentPlatform() uint {
	if mask := PlatformMask(runtime.GOOS); mask != 0 {
		return mask
	}
	return Windows
}

// CurrentArch returns the depot architecture tag of the running system.
func CurrentArch() string {
	switch runtime.GOARCH {
	case "386", "arm":
		return Arch32
	default:
		return Arch64
	}
}

// BuildOS returns the os segment the content-system build listing expects
// for a single platform bit, or "" when mask names no platform.
func BuildOS(mask uint) string {
	switch {
	case mask&Windows != 0:
		return "windows"
	case mask&Mac != 0:
		return "osx"
	case mask&Linux != 0:
		return "linux"
	default:
		return ""
	}
}
