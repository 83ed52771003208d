package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownScene is returned by ByName for names with no preset
var ErrUnknownScene = errors.New("unknown scene")

var presets = map[string]func() *Scene{
	"box":    NewBoxScene,
	"plane":  NewPlaneScene,
	"sphere": NewSphereScene,
}

// ByName returns a fresh copy of the named preset scene
func ByName(name string) (*Scene, error) {
	constructor, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}
	return constructor(), nil
}

// Names returns the preset scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
