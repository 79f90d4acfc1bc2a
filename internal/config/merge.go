package config

import (
	"fmt"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
)

// MergeLayers deep-merges configuration layers in increasing precedence
// (defaults first, CLI last) and returns a freshly allocated result; input
// layers are never mutated.
//
// Semantics:
//   - scalars and sequences: simple override; a nil value in a later layer
//     never erases an earlier concrete value
//   - nested objects (command sub-objects, scopeRoots): merged key-wise,
//     never replaced wholesale
func MergeLayers(layers ...map[string]any) map[string]any {
	out := map[string]any{}
	for _, layer := range layers {
		mergeInto(out, layer)
	}
	return out
}

func mergeInto(dst, src map[string]any) {
	for key, val := range src {
		if val == nil {
			continue
		}
		srcMap, srcIsMap := asAnyMap(val)
		if srcIsMap {
			dstMap, dstIsMap := asAnyMap(dst[key])
			if dstIsMap {
				merged := copyAnyMap(dstMap)
				mergeInto(merged, srcMap)
				dst[key] = merged
				continue
			}
			dst[key] = copyAnyMap(srcMap)
			continue
		}
		dst[key] = val
	}
}

// asAnyMap normalizes the map shapes the layers can carry: transformer
// output (map[string]any), YAML decoding (map[string]interface{}), and
// string-valued maps such as scopeRoots.
func asAnyMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, s := range m {
			out[k] = s
		}
		return out, true
	default:
		return nil, false
	}
}

func copyAnyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := asAnyMap(v); ok {
			out[k] = copyAnyMap(nested)
			continue
		}
		out[k] = v
	}
	return out
}

// Unmarshal decodes a fully merged layer map into the typed Config. The
// defaults layer guarantees every command sub-section is populated, so the
// result never carries a zero-valued section the defaults table covers.
func Unmarshal(merged map[string]any) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(merged, "."), nil); err != nil {
		return nil, fmt.Errorf("loading merged config: %w", err)
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling merged config: %w", err)
	}
	return &cfg, nil
}
