// Package document provides a tolerant, read-only view over JSON response
// bodies. Missing members, wrong types and malformed input all read as zero
// values instead of errors, which is how the upstream content API has to be
// consumed.
package document

import (
	"log/slog"
	"strconv"

	"github.com/tidwall/gjson"
)

// Document is an immutable JSON value. The zero Document is empty.
type Document struct {
	res gjson.Result
}

// Decode parses data into a Document. Empty or malformed input yields an
// empty Document; the failure is reported on log when it is not nil.
func Decode(data []byte, log *slog.Logger) Document {
	if len(data) == 0 {
		return Document{}
	}
	if !gjson.ValidBytes(data) {
		if log != nil {
			log.Debug("discarding malformed JSON body", "bytes", len(data))
		}
		return Document{}
	}
	return Document{res: gjson.ParseBytes(data)}
}

// Parse is Decode for string input without a diagnostic logger.
func Parse(s string) Document {
	return Decode([]byte(s), nil)
}

// Get returns the member at key. Keys are plain member names; nested
// paths use the "a.b.c" form.
func (d Document) Get(key string) Document {
	if !d.res.Exists() {
		return Document{}
	}
	return Document{res: d.res.Get(gjson.Escape(key))}
}

// Path returns the value at a dotted path such as "downloads.installers".
func (d Document) Path(path string) Document {
	if !d.res.Exists() {
		return Document{}
	}
	return Document{res: d.res.Get(path)}
}

// Has reports whether the object has a member named key, even if it is null.
func (d Document) Has(key string) bool {
	return d.res.IsObject() && d.res.Get(gjson.Escape(key)).Exists()
}

// Exists reports whether the value is present.
func (d Document) Exists() bool {
	return d.res.Exists()
}

// IsEmpty reports whether the value is absent, null, an empty array or an
// empty object.
func (d Document) IsEmpty() bool {
	switch {
	case !d.res.Exists(), d.res.Type == gjson.Null:
		return true
	case d.res.IsArray():
		return len(d.res.Array()) == 0
	case d.res.IsObject():
		empty := true
		d.res.ForEach(func(_, _ gjson.Result) bool {
			empty = false
			return false
		})
		return empty
	default:
		return false
	}
}

// IsArray reports whether the value is a JSON array.
func (d Document) IsArray() bool {
	return d.res.IsArray()
}

// Array returns the elements of an array value, or nil for anything else.
func (d Document) Array() []Document {
	if !d.res.IsArray() {
		return nil
	}
	items := d.res.Array()
	out := make([]Document, len(items))
	for i, item := range items {
		out[i] = Document{res: item}
	}
	return out
}

// Len returns the number of elements of an array value.
func (d Document) Len() int {
	if !d.res.IsArray() {
		return 0
	}
	return len(d.res.Array())
}

// String returns the value as a string. Numbers and booleans are rendered
// as their JSON text; absent and null values read as "".
func (d Document) String() string {
	if d.res.Type == gjson.Null {
		return ""
	}
	return d.res.String()
}

// Strings returns the string elements of an array value.
func (d Document) Strings() []string {
	items := d.Array()
	if len(items) == 0 {
		return nil
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.String()
	}
	return out
}

// Uint returns the value as an unsigned integer. Numeric strings are
// accepted; anything else reads as 0.
func (d Document) Uint() uint64 {
	return d.res.Uint()
}

// Int returns the value as a signed integer.
func (d Document) Int() int64 {
	return d.res.Int()
}

// Bool returns the value as a boolean.
func (d Document) Bool() bool {
	return d.res.Bool()
}

// UintString renders an unsigned integer value as decimal text without
// passing it through a float, so sizes beyond 2^53 survive. Strings are
// returned as-is and absent values read as "0".
func (d Document) UintString() string {
	switch d.res.Type {
	case gjson.String:
		return d.res.Str
	case gjson.Number:
		if _, err := strconv.ParseUint(d.res.Raw, 10, 64); err == nil {
			return d.res.Raw
		}
		return strconv.FormatUint(d.res.Uint(), 10)
	default:
		return "0"
	}
}

// Raw returns the JSON text of the value, or "" when absent.
func (d Document) Raw() string {
	return d.res.Raw
}
