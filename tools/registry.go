package tools

import (
	"fmt"
	"sort"

	"github.com/Aquaveo/xmstool-examples/tool"
)

// registry maps CLI tool keys to constructors.
var registry = map[string]func() tool.Tool{
	"dataset-diff":     func() tool.Tool { return NewDatasetDiff() },
	"dataset-from-dat": func() tool.Tool { return NewDatasetFromDat() },
	"mesh-from-2dm":    func() tool.Tool { return NewMeshFrom2dm() },
	"ugrid-from-xmc":   func() tool.Tool { return NewUGridFromXmc() },
}

// New creates a tool by its registry key.
func New(key string) (tool.Tool, error) {
	ctor, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("unknown tool %q (try: %v)", key, Keys())
	}
	return ctor(), nil
}

// Keys lists the registered tool keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
