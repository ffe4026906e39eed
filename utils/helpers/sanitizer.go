package helpers

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

const (
	sanitizeMaxDepth = 8
	maskValue        = "****"
)

// Every appeal form field is personal data and never reaches a log line in
// clear text.
var defaultBlockedKeys = []string{
	"name", "claim_number", "claimnumber",
	"state_of_residence", "stateofresidence",
	"state_of_care", "stateofcare",
	"body", "subject", "to", "email",
	"cookie", "authorization",
}

// DefaultSanitizer masks the form fields and credentials.
var DefaultSanitizer = NewSanitizer()

// Sanitizer masks values stored under blocked keys in structs, maps and
// JSON text before they are logged.
type Sanitizer struct {
	blocked map[string]struct{}
}

// NewSanitizer blocks keys (case-insensitive), or the default form keys
// when none are given.
func NewSanitizer(keys ...string) *Sanitizer {
	if len(keys) == 0 {
		keys = defaultBlockedKeys
	}
	s := &Sanitizer{blocked: make(map[string]struct{}, len(keys))}
	for _, k := range keys {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			s.blocked[k] = struct{}{}
		}
	}
	return s
}

// Sanitize returns a masked copy of v. Structs and maps come back as
// map[string]any; errors and fmt.Stringers as their text. A value the walker cannot handle is returned as is.
func (s *Sanitizer) Sanitize(v any) (out any) {
	if s == nil || len(s.blocked) == 0 {
		return v
	}
	defer func() {
		if recover() != nil {
			out = v
		}
	}()
	return s.walk(reflect.ValueOf(v), 0)
}

// SanitizeField is Sanitize for a value logged under key; the whole value is
// masked when key itself is blocked.
func (s *Sanitizer) SanitizeField(key string, v any) any {
	if s != nil && s.isBlocked(key) {
		return maskValue
	}
	return s.Sanitize(v)
}

func (s *Sanitizer) isBlocked(key string) bool {
	_, ok := s.blocked[strings.ToLower(key)]
	return ok
}

func (s *Sanitizer) walk(v reflect.Value, depth int) any {
	if depth > sanitizeMaxDepth {
		return "[truncated]"
	}
	for v.IsValid() {
		if text, ok := asText(v); ok {
			return text
		}
		if v.Kind() != reflect.Pointer && v.Kind() != reflect.Interface {
			break
		}
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return nil
	}

	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()
		out := make(map[string]any, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			key := jsonName(f)
			if key == "" {
				continue
			}
			out[key] = s.value(key, v.Field(i), depth)
		}
		return out
	case reflect.Map:
		out := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			key := fmt.Sprint(iter.Key().Interface())
			out[key] = s.value(key, iter.Value(), depth)
		}
		return out
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return s.jsonText(string(reflect.Indirect(v).Bytes()), "[binary]")
		}
		out := make([]any, v.Len())
		for i := range out {
			out[i] = s.walk(v.Index(i), depth+1)
		}
		return out
	case reflect.String:
		return s.jsonText(v.String(), v.String())
	default:
		return v.Interface()
	}
}

func (s *Sanitizer) value(key string, v reflect.Value, depth int) any {
	if s.isBlocked(key) {
		return maskValue
	}
	return s.walk(v, depth+1)
}

// jsonText masks JSON objects or arrays carried as text, such as a request
// body. Anything else yields fallback.
func (s *Sanitizer) jsonText(text, fallback string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || (trimmed[0] != '{' && trimmed[0] != '[') {
		return fallback
	}
	var parsed any
	if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
		return fallback
	}
	masked, err := json.Marshal(s.walk(reflect.ValueOf(parsed), 0))
	if err != nil {
		return fallback
	}
	return string(masked)
}

// asText renders errors and fmt.Stringers by their text.
func asText(v reflect.Value) (string, bool) {
	if !v.CanInterface() {
		return "", false
	}
	if (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && v.IsNil() {
		return "", false
	}
	switch x := v.Interface().(type) {
	case error:
		return x.Error(), true
	case fmt.Stringer:
		return x.String(), true
	}
	return "", false
}

func jsonName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name
	}
	return f.Name
}
