// Package workflow parses, structurally validates, and extracts metadata
// from n8n workflow JSON files.
package workflow

// Document is a parsed workflow tree. Accessors report absence or type
// mismatch through their second return value instead of panicking, which
// is what lets metadata extraction default every missing field.
type Document struct {
	root map[string]any
}

// NewDocument wraps a decoded JSON object. A nil root yields a document
// where every accessor reports absence.
func NewDocument(root map[string]any) *Document {
	return &Document{root: root}
}

// Has reports whether a top-level field exists, regardless of its type.
func (d *Document) Has(name string) bool {
	_, ok := d.root[name]
	return ok
}

// Sequence returns a top-level field as a JSON array.
func (d *Document) Sequence(name string) ([]any, bool) {
	v, ok := d.root[name]
	if !ok {
		return nil, false
	}
	seq, ok := v.([]any)
	return seq, ok
}

// Mapping returns a top-level field as a JSON object.
func (d *Document) Mapping(name string) (map[string]any, bool) {
	v, ok := d.root[name]
	if !ok {
		return nil, false
	}
	return AsMapping(v)
}

// StringField returns a top-level string field, or fallback when the
// field is missing or not a string.
func (d *Document) StringField(name, fallback string) string {
	if s, ok := d.root[name].(string); ok {
		return s
	}
	return fallback
}

// AsMapping narrows an arbitrary JSON value to an object.
func AsMapping(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// StringAt returns m[key] as a string, or fallback when the key is
// missing or holds a non-string value.
func StringAt(m map[string]any, key, fallback string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return fallback
}
