package catalog

import (
	_ "embed"
	"fmt"
	"net/url"
	"reflect"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"
)

const (
	// maxDepth is the number of nesting levels rendered below the top-level value.
	maxDepth = 2
	// maxSequenceLength caps the elements shown for slices and arrays.
	maxSequenceLength = 5
)

//go:embed project.yaml
var projectYAML []byte

type project struct {
	Name       string `yaml:"name"`
	Homepage   string `yaml:"homepage"`
	Repository string `yaml:"repository"`
}

var homepage = mustHomepage(projectYAML)

// debug renders values on one line. Map keys are sorted; keys without a
// natural order are sorted by their spew rendering.
var debug = spew.ConfigState{
	MaxDepth:                maxDepth + 1,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	SpewKeys:                true,
}

var anyType = reflect.TypeFor[any]()

func mustHomepage(raw []byte) string {
	var p project
	if err := yaml.Unmarshal(raw, &p); err != nil {
		panic(fmt.Sprintf("catalog: decode project metadata: %v", err))
	}

	u, err := url.Parse(p.Homepage)
	if err != nil || p.Homepage == "" {
		panic(fmt.Sprintf("catalog: invalid homepage %q: %v", p.Homepage, err))
	}

	u.Fragment = ""
	u.RawFragment = ""

	return u.String()
}

// Homepage returns the project homepage with any fragment removed.
func Homepage() string { return homepage }

// Linkify turns a repository-relative documentation path into an absolute URL.
func Linkify(file string) string {
	return homepage + "/blob/master/" + file
}

// Stringify renders v for inclusion in Markdown details.
//
// Strings are returned unchanged. Other values get a single-line debug
// representation: nesting below the top-level value is cut at two levels and
// slices and arrays show at most five elements.
func Stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return debug.Sprint(bound(reflect.ValueOf(v), 0))
}

// moreItems marks elements dropped from a truncated sequence.
type moreItems int

func (m moreItems) String() string {
	if m == 1 {
		return "... 1 more item"
	}

	return fmt.Sprintf("... %d more items", int(m))
}

// circular marks a pointer already being rendered further up the path.
type circular struct{}

func (circular) String() string { return "<already shown>" }

// bound copies v into a tree of plain values whose sequences are capped.
// Below the depth spew cuts anyway the value is returned untouched.
func bound(v reflect.Value, depth int) any {
	return boundSeen(v, depth, map[uintptr]struct{}{})
}

// boundSeen tracks the pointers on the current path; a cycle made only of
// pointers and interfaces never reaches the depth cap.
func boundSeen(v reflect.Value, depth int, seen map[uintptr]struct{}) any {
	if !v.IsValid() {
		return nil
	}

	if !v.CanInterface() {
		return fmt.Sprint(v)
	}

	if depth > maxDepth+1 {
		return v.Interface()
	}

	switch v.Interface().(type) {
	case error, fmt.Stringer:
		return v.Interface()
	}

	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}

		return boundSeen(v.Elem(), depth, seen)
	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}

		addr := v.Pointer()
		if _, ok := seen[addr]; ok {
			return circular{}
		}

		seen[addr] = struct{}{}
		defer delete(seen, addr)

		return boundSeen(v.Elem(), depth, seen)
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return v.Interface()
		}

		n := v.Len()
		shown := min(n, maxSequenceLength)

		out := make([]any, 0, shown+1)
		for i := range shown {
			out = append(out, boundSeen(v.Index(i), depth+1, seen))
		}

		if n > shown {
			out = append(out, moreItems(n-shown))
		}

		return out
	case reflect.Map:
		if v.IsNil() {
			return v.Interface()
		}

		// Keys keep their type so distinct keys that print alike stay distinct.
		out := reflect.MakeMapWithSize(reflect.MapOf(v.Type().Key(), anyType), v.Len())

		iter := v.MapRange()
		for iter.Next() {
			elem := reflect.New(anyType).Elem()
			if b := boundSeen(iter.Value(), depth+1, seen); b != nil {
				elem.Set(reflect.ValueOf(b))
			}

			out.SetMapIndex(iter.Key(), elem)
		}

		return out.Interface()
	case reflect.Struct:
		t := v.Type()
		out := make(map[string]any, t.NumField())

		for i := range t.NumField() {
			if !t.Field(i).IsExported() {
				continue
			}

			out[t.Field(i).Name] = boundSeen(v.Field(i), depth+1, seen)
		}

		return out
	default:
		return v.Interface()
	}
}
