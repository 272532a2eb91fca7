// Package theme maps the site's configured primary color to the Tailwind
// text class templates use to tint headings and accents.
package theme

import (
	"fmt"
	"sort"
)

// DefaultTextClass is used if a table entry ever goes missing at render
// time, so templates never receive an empty class.
const DefaultTextClass = "text-blue-500"

// textClasses is the closed set of supported primary colors. Adding a
// color means adding exactly one row here.
var textClasses = map[string]string{
	"primary-blue":   "text-blue-500",
	"primary-green":  "text-green-500",
	"primary-purple": "text-purple-500",
	"primary-rose":   "text-rose-500",
	"primary-amber":  "text-amber-500",
}

// Theme holds the resolved styling for the active primary color. Built
// once at startup and passed to the render layer, never mutated.
type Theme struct {
	Primary   string
	textClass string
}

// New validates primary against the supported set. An unknown identifier
// is a configuration error and fails here, before the server starts.
func New(primary string) (*Theme, error) {
	class, ok := textClasses[primary]
	if !ok {
		return nil, fmt.Errorf("theme: unsupported primary color %q (supported: %v)", primary, Supported())
	}
	return &Theme{Primary: primary, textClass: class}, nil
}

// TextClass returns the text-color class for the active primary. It never
// returns the empty string.
func (t *Theme) TextClass() string {
	if t == nil || t.textClass == "" {
		return DefaultTextClass
	}
	return t.textClass
}

// Supported lists the valid primary color identifiers, sorted for stable
// error messages.
func Supported() []string {
	names := make([]string, 0, len(textClasses))
	for name := range textClasses {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
