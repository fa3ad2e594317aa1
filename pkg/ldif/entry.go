package ldif

// Entry is the attribute set of one LDIF record: a mapping from attribute
// type to an ordered list of values. Keys are case-sensitive as read from
// the input. The first-seen order of attribute types and the append order
// of values within a type are both preserved.
type Entry struct {
	types  []string
	values map[string][][]byte
}

// NewEntry creates an empty Entry.
func NewEntry() *Entry {
	return &Entry{
		values: make(map[string][][]byte),
	}
}

// Add appends value to the value list of attrType, creating the list if
// this is the first occurrence of the type.
func (e *Entry) Add(attrType string, value []byte) {
	if _, ok := e.values[attrType]; !ok {
		e.types = append(e.types, attrType)
	}
	e.values[attrType] = append(e.values[attrType], value)
}

// Get returns the values of attrType in append order, or nil if the
// entry has no such attribute.
func (e *Entry) Get(attrType string) [][]byte {
	return e.values[attrType]
}

// GetStrings returns the values of attrType converted to strings.
func (e *Entry) GetStrings(attrType string) []string {
	values := e.values[attrType]
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// Has reports whether the entry has at least one value for attrType.
func (e *Entry) Has(attrType string) bool {
	_, ok := e.values[attrType]
	return ok
}

// Types returns the attribute types in first-seen order.
func (e *Entry) Types() []string {
	out := make([]string, len(e.types))
	copy(out, e.types)
	return out
}

// Len returns the number of distinct attribute types in the entry.
func (e *Entry) Len() int {
	return len(e.types)
}

// Record is one parsed LDIF record: a distinguished name and its
// attributes. DN may be empty when the input carried no dn: line value.
type Record struct {
	DN    string
	Entry *Entry
}
