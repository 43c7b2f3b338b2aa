package executor

import (
	"sort"
	"strings"
)

// mergeEnviron resolves the effective environment for one step: the inherited
// base environment, overlaid key-by-key by each overlay in turn, with later
// overlays winning. The result is in os.Environ form, sorted for determinism.
func mergeEnviron(base []string, overlays ...map[string]string) []string {
	merged := make(map[string]string, len(base))
	for _, kv := range base {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		merged[k] = v
	}
	for _, overlay := range overlays {
		for k, v := range overlay {
			merged[k] = v
		}
	}

	environ := make([]string, 0, len(merged))
	for k, v := range merged {
		environ = append(environ, k+"="+v)
	}
	sort.Strings(environ)
	return environ
}
