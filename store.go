package jsongrid

import "sync"

// DefaultSchemaName is the schema every new store starts with.
const DefaultSchemaName = "Default"

// Store maps schema names to ordered field sequences. It owns its schemas
// exclusively: lookups hand out copies, so external mutation never reaches
// the stored sequences. All methods are safe for concurrent use; every
// mutation is a single atomic structural edit under the lock.
type Store struct {
	mu      sync.RWMutex
	order   []string
	schemas map[string]Schema
}

// NewStore returns a store seeded with the "Default" schema: a required
// string field "name" and an optional string field "value".
func NewStore() *Store {
	s := &Store{schemas: map[string]Schema{}}
	s.order = append(s.order, DefaultSchemaName)
	s.schemas[DefaultSchemaName] = Schema{
		{Name: "name", Type: TypeString, Required: true},
		{Name: "value", Type: TypeString},
	}
	return s
}

// Create registers an empty schema under name. It fails with a
// duplicate_name issue when the name is taken, leaving the store unchanged.
func (s *Store) Create(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(name, Schema{})
}

// CreateCopy registers a deep copy of the schema named from under name, so
// later edits to either schema never leak into the other.
func (s *Store) CreateCopy(name, from string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	src, ok := s.schemas[from]
	if !ok {
		return issuef("/schemas/"+from, CodeUnknownSchema, "schema %q does not exist", from)
	}
	return s.insert(name, src.Clone())
}

// insert adds schema under name; callers hold the lock.
func (s *Store) insert(name string, schema Schema) error {
	if _, ok := s.schemas[name]; ok {
		return issuef("/schemas/"+name, CodeDuplicateName, "schema %q already exists", name)
	}
	s.order = append(s.order, name)
	s.schemas[name] = schema
	return nil
}

// UpsertField replaces the field named def.Name in place when it exists,
// preserving its position, and appends it otherwise. The widget hint is
// stored verbatim, empty string included.
func (s *Store) UpsertField(schemaName string, def FieldDefinition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	schema, ok := s.schemas[schemaName]
	if !ok {
		return issuef("/schemas/"+schemaName, CodeUnknownSchema, "schema %q does not exist", schemaName)
	}
	if _, i := schema.Field(def.Name); i >= 0 {
		schema[i] = def
		return nil
	}
	s.schemas[schemaName] = append(schema, def)
	return nil
}

// DeleteField removes the named field when present; an absent field is a
// no-op, not an error.
func (s *Store) DeleteField(schemaName, fieldName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	schema, ok := s.schemas[schemaName]
	if !ok {
		return issuef("/schemas/"+schemaName, CodeUnknownSchema, "schema %q does not exist", schemaName)
	}
	if _, i := schema.Field(fieldName); i >= 0 {
		s.schemas[schemaName] = append(schema[:i:i], schema[i+1:]...)
	}
	return nil
}

// MergeInferred appends each inferred field whose name the target schema does
// not already declare. Existing definitions keep their positions and values,
// so manual edits survive re-imports.
func (s *Store) MergeInferred(schemaName string, inferred Schema) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	schema, ok := s.schemas[schemaName]
	if !ok {
		return issuef("/schemas/"+schemaName, CodeUnknownSchema, "schema %q does not exist", schemaName)
	}
	for _, f := range inferred {
		if !schema.Has(f.Name) {
			schema = append(schema, f)
		}
	}
	s.schemas[schemaName] = schema
	return nil
}

// Schema returns a copy of the named schema.
func (s *Store) Schema(name string) (Schema, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	schema, ok := s.schemas[name]
	if !ok {
		return nil, false
	}
	return schema.Clone(), true
}

// Names returns the schema names in creation order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
