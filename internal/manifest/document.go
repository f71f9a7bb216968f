package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/appdist/distman/internal/target"
)

// ErrMalformed marks a manifest that is not valid JSON or violates the
// manifest schema. Callers treat it as fatal for the whole run.
var ErrMalformed = errors.New("malformed manifest")

// Document is an in-memory update.json.
type Document struct {
	root map[string]any
}

// Parse decodes and validates manifest bytes.
func Parse(data []byte) (*Document, error) {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	issues, err := validate(inst)
	if err != nil {
		return nil, err
	}
	if len(issues) > 0 {
		msgs := make([]string, len(issues))
		for i, issue := range issues {
			msgs[i] = issue.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrMalformed, strings.Join(msgs, "; "))
	}

	root, ok := inst.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top level is not an object", ErrMalformed)
	}
	return &Document{root: root}, nil
}

// Load reads and parses the manifest at path. It returns the raw bytes too so
// callers can compare or back them up.
func Load(path string) (*Document, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return doc, data, nil
}

// Build returns build.last.<target>. ok is false when it is absent or not an
// unsigned integer.
func (d *Document) Build(t target.Target) (version uint64, ok bool) {
	last := lookup(d.root, "build", "last")
	if last == nil {
		return 0, false
	}
	n, isNum := last[t.String()].(json.Number)
	if !isNum {
		return 0, false
	}
	v, err := strconv.ParseUint(n.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// SetBuild sets build.last.<target>, creating intermediate objects.
func (d *Document) SetBuild(t target.Target, version uint32) {
	last := ensure(ensure(d.root, "build"), "last")
	last[t.String()] = json.Number(strconv.FormatUint(uint64(version), 10))
}

// URLs returns urls.<target> as arch → URL.
func (d *Document) URLs(t target.Target) map[string]string {
	obj := lookup(d.root, "urls", t.String())
	if obj == nil {
		return nil
	}
	out := make(map[string]string, len(obj))
	for arch, v := range obj {
		if s, ok := v.(string); ok {
			out[arch] = s
		}
	}
	return out
}

// SetURL sets urls.<target>.<arch>, creating intermediate objects.
func (d *Document) SetURL(t target.Target, arch, url string) {
	ensure(ensure(d.root, "urls"), t.String())[arch] = url
}

// Render returns the document as two-space indented JSON with a trailing
// newline. Object keys come out sorted.
func (d *Document) Render() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d.root); err != nil {
		return nil, fmt.Errorf("rendering manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// lookup follows keys through nested objects, returning nil when any step is
// missing or not an object.
func lookup(m map[string]any, keys ...string) map[string]any {
	cur := m
	for _, k := range keys {
		next, ok := cur[k].(map[string]any)
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

// ensure returns m[key] as an object, replacing any non-object value.
func ensure(m map[string]any, key string) map[string]any {
	if child, ok := m[key].(map[string]any); ok {
		return child
	}
	child := make(map[string]any)
	m[key] = child
	return child
}
