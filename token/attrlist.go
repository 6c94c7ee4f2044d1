package token

// Attribute is one name/value pair within a start tag's attribute list.
type Attribute struct {
	Name  []byte
	Value []byte
}

// AttrList is an insertion-order preserving mapping from attribute name to
// value, with ASCII case-insensitive name comparison. Duplicate names keep
// the last inserted value, per spec §4.1.
type AttrList struct {
	attrs []Attribute
}

// Set inserts or updates name=value. If name already exists (case
// insensitively), its value is replaced in place so iteration order is
// unaffected by the update.
func (a *AttrList) Set(name, value []byte) {
	for i := range a.attrs {
		if EqualFold(a.attrs[i].Name, name) {
			a.attrs[i].Value = value
			return
		}
	}
	a.attrs = append(a.attrs, Attribute{Name: name, Value: value})
}

// Get returns the value for name (case insensitive) and whether it was
// present.
func (a *AttrList) Get(name []byte) ([]byte, bool) {
	if a == nil {
		return nil, false
	}
	for i := range a.attrs {
		if EqualFold(a.attrs[i].Name, name) {
			return a.attrs[i].Value, true
		}
	}
	return nil, false
}

// GetString is a convenience wrapper over Get for string attribute names.
func (a *AttrList) GetString(name string) (string, bool) {
	v, ok := a.Get([]byte(name))
	if !ok {
		return "", false
	}
	return string(v), true
}

// Len returns the number of distinct attribute names.
func (a *AttrList) Len() int {
	if a == nil {
		return 0
	}
	return len(a.attrs)
}

// All iterates the attributes in insertion order.
func (a *AttrList) All() []Attribute {
	if a == nil {
		return nil
	}
	return a.attrs
}

// Clone returns a deep copy of the list with owned (copied) byte slices,
// suitable for long-lived storage beyond the lifetime of the source buffer.
func (a *AttrList) Clone() *AttrList {
	if a == nil || len(a.attrs) == 0 {
		return &AttrList{}
	}
	out := &AttrList{attrs: make([]Attribute, len(a.attrs))}
	for i, attr := range a.attrs {
		out.attrs[i] = Attribute{
			Name:  append([]byte(nil), attr.Name...),
			Value: append([]byte(nil), attr.Value...),
		}
	}
	return out
}
