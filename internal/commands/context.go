package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/next-trace/release-errors/catalog"
)

var errBadAssignment = errors.New("expected key=value")

// loadContext merges the YAML mapping in path (optional) with --set
// assignments; assignments win. Values are decoded as YAML so numbers,
// booleans, lists and maps keep their type.
func loadContext(path string, sets []string) (catalog.Context, error) {
	ctx := catalog.Context{}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read context file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &ctx); err != nil {
			return nil, fmt.Errorf("decode context file %s: %w", path, err)
		}
		// A null document decodes to a nil map.
		if ctx == nil {
			ctx = catalog.Context{}
		}
	}

	for _, assignment := range sets {
		key, raw, ok := strings.Cut(assignment, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", errBadAssignment, assignment)
		}
		ctx[key] = decodeValue(raw)
	}

	return ctx, nil
}

func decodeValue(raw string) any {
	if strings.TrimSpace(raw) == "" {
		return raw
	}

	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}
