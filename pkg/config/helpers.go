package config

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/glorpus-work/gogalaxy/pkg/errors"
)

// field locates the settings or selection field tagged with key.
func (c *Config) field(key string) (reflect.Value, bool) {
	for _, section := range []reflect.Value{
		reflect.ValueOf(&c.Settings).Elem(),
		reflect.ValueOf(&c.Selection).Elem(),
	} {
		t := section.Type()
		for i := 0; i < t.NumField(); i++ {
			if yamlKey(t.Field(i)) == key {
				return section.Field(i), true
			}
		}
	}
	return reflect.Value{}, false
}

func yamlKey(f reflect.StructField) string {
	tag := f.Tag.Get("yaml")
	if tag == "" || tag == "-" {
		return ""
	}
	return strings.Split(tag, ",")[0]
}

// SetValue sets a configuration value by its YAML key, e.g. "log_level",
// "http_timeout" or "platforms". The result is not validated.
func (c *Config) SetValue(key, value string) error {
	field, ok := c.field(key)
	if !ok {
		return errors.InvalidValue(errors.ErrUnknownConfigKey, key)
	}

	switch field.Interface().(type) {
	case string:
		field.SetString(value)
	case bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value for %s: %s", key, value)
		}
		field.SetBool(b)
	case int:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %s", key, value)
		}
		field.SetInt(int64(n))
	case time.Duration:
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %s", key, value)
		}
		field.SetInt(int64(d))
	default:
		return fmt.Errorf("unsupported type for %s", key)
	}
	return nil
}

// GetValue returns a configuration value by its YAML key.
func (c *Config) GetValue(key string) (string, error) {
	field, ok := c.field(key)
	if !ok {
		return "", errors.InvalidValue(errors.ErrUnknownConfigKey, key)
	}
	return formatValue(field), nil
}

func formatValue(v reflect.Value) string {
	switch x := v.Interface().(type) {
	case time.Duration:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}

// ToMap flattens the configuration into key/value strings for display.
func (c *Config) ToMap() map[string]string {
	result := make(map[string]string)
	for _, section := range []reflect.Value{reflect.ValueOf(c.Settings), reflect.ValueOf(c.Selection)} {
		t := section.Type()
		for i := 0; i < t.NumField(); i++ {
			if key := yamlKey(t.Field(i)); key != "" {
				result[key] = formatValue(section.Field(i))
			}
		}
	}
	return result
}

// Keys returns every settable key in sorted order.
func (c *Config) Keys() []string {
	m := c.ToMap()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
