// Package model defines the baked-geometry contracts shared by block and item
// models: quads, sprites, facings, render layers and the bake pipeline
// interfaces.
package model

import (
	"fmt"
	"strings"
)

// DefaultNamespace is used when a location string has no namespace.
const DefaultNamespace = "minecraft"

// ResourceLocation names an asset as namespace:path.
type ResourceLocation struct {
	Namespace string
	Path      string
}

// ParseLocation parses "namespace:path" or "path". Both parts are lowercased.
func ParseLocation(s string) (ResourceLocation, error) {
	ns, path := DefaultNamespace, s
	if i := strings.IndexByte(s, ':'); i >= 0 {
		ns, path = s[:i], s[i+1:]
		if ns == "" {
			ns = DefaultNamespace
		}
	}
	loc := ResourceLocation{Namespace: strings.ToLower(ns), Path: strings.ToLower(path)}
	if loc.Path == "" {
		return ResourceLocation{}, fmt.Errorf("empty path in location %q", s)
	}
	if !validChars(loc.Namespace, false) || !validChars(loc.Path, true) {
		return ResourceLocation{}, fmt.Errorf("invalid character in location %q", s)
	}
	return loc, nil
}

// MustParseLocation is ParseLocation for constants; it panics on error.
func MustParseLocation(s string) ResourceLocation {
	loc, err := ParseLocation(s)
	if err != nil {
		panic(err)
	}
	return loc
}

// IsZero reports whether the location is unset.
func (l ResourceLocation) IsZero() bool {
	return l == ResourceLocation{}
}

// String implements fmt.Stringer.
func (l ResourceLocation) String() string {
	return l.Namespace + ":" + l.Path
}

// WithPathPrefix returns the location with prefix prepended to its path.
func (l ResourceLocation) WithPathPrefix(prefix string) ResourceLocation {
	return ResourceLocation{Namespace: l.Namespace, Path: prefix + l.Path}
}

func validChars(s string, allowSlash bool) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-', r == '.':
		case r == '/' && allowSlash:
		default:
			return false
		}
	}
	return true
}
