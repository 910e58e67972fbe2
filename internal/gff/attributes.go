package gff

import "strings"

// Attributes is the parsed ninth column. Keys keep first-seen order; a
// repeated key overwrites the earlier value in place.
type Attributes struct {
	keys []string
	vals map[string]string
}

// ParseAttributes splits a `key=value;flag;key=value` string. Bare tokens map
// to "", the value keeps everything after the first '=', empty tokens are
// ignored and the last duplicate wins.
func ParseAttributes(s string) Attributes {
	a := Attributes{vals: make(map[string]string)}
	for _, item := range strings.Split(s, ";") {
		if item == "" {
			continue
		}
		k, v, _ := strings.Cut(item, "=")
		a.Set(k, v)
	}
	return a
}

// Set inserts or overwrites key.
func (a *Attributes) Set(key, val string) {
	if a.vals == nil {
		a.vals = make(map[string]string)
	}
	if _, ok := a.vals[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.vals[key] = val
}

// Get returns the value for key and whether the key was present.
func (a Attributes) Get(key string) (string, bool) {
	v, ok := a.vals[key]
	return v, ok
}

// Value returns the value for key, or "" when absent.
func (a Attributes) Value(key string) string { return a.vals[key] }

// Has reports whether key appeared, with or without a value.
func (a Attributes) Has(key string) bool {
	_, ok := a.vals[key]
	return ok
}

// Keys returns the keys in first-seen order.
func (a Attributes) Keys() []string { return append([]string(nil), a.keys...) }

// Len is the number of distinct keys.
func (a Attributes) Len() int { return len(a.keys) }
