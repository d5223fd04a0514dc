package common

import (
	"strings"
	"time"
)

// Doc is a decoded Firestore document body.
type Doc map[string]any

// Str returns the trimmed string at key, or "".
func (d Doc) Str(key string) string {
	if v, ok := d[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// StrPtr returns a pointer to the trimmed string at key, or nil when absent
// or empty.
func (d Doc) StrPtr(key string) *string {
	if v, ok := d[key].(string); ok {
		s := strings.TrimSpace(v)
		if s != "" {
			return &s
		}
	}
	return nil
}

// Int returns the integer at key. Firestore decodes numbers as int64.
func (d Doc) Int(key string) int {
	return int(d.Int64(key))
}

// Int64 returns the integer at key, tolerating the numeric types the
// Firestore client may hand back.
func (d Doc) Int64(key string) int64 {
	switch v := d[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

// Bool returns the boolean at key, or false.
func (d Doc) Bool(key string) bool {
	if v, ok := d[key].(bool); ok {
		return v
	}
	return false
}

// Time returns the UTC time at key and whether it was present and non-zero.
func (d Doc) Time(key string) (time.Time, bool) {
	if v, ok := d[key].(time.Time); ok {
		return v.UTC(), !v.IsZero()
	}
	return time.Time{}, false
}

// StrSlice returns the string slice at key; never nil.
func (d Doc) StrSlice(key string) []string {
	out := []string{}
	if vs, ok := d[key].([]any); ok {
		for _, v := range vs {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

// TrimPtr trims the pointee and returns nil when the result is empty.
func TrimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}
