package slugfield

import (
	"fmt"
	"reflect"
)

// Accessor provides dynamic attribute access on a record. The field never
// assumes static attribute names beyond the two it orchestrates by role
// (source and slug); the collaborator that owns the record supplies the
// capability to read and write them by name.
type Accessor interface {
	// Get returns the text value of the named attribute. A declared but
	// null/absent value is returned as "" without error; an undeclared
	// attribute is an error.
	Get(record any, name string) (string, error)

	// Set writes the named attribute on the record in place.
	Set(record any, name string, value string) error

	// PrimaryKey returns the record identity, or ok=false when the record
	// has not been persisted yet.
	PrimaryKey(record any) (id any, ok bool)
}

// MapAccessor accesses records represented as map[string]any.
// The zero value uses "id" as the identity key.
type MapAccessor struct {
	// IDKey is the map key holding the record identity. Default: "id".
	IDKey string
}

func (a MapAccessor) idKey() string {
	if a.IDKey == "" {
		return "id"
	}
	return a.IDKey
}

func (a MapAccessor) Get(record any, name string) (string, error) {
	m, ok := record.(map[string]any)
	if !ok {
		return "", fmt.Errorf("%w: %T", ErrUnsupportedRecord, record)
	}
	v, ok := m[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
	}
	if v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q holds %T", ErrNotText, name, v)
	}
	return s, nil
}

func (a MapAccessor) Set(record any, name string, value string) error {
	m, ok := record.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedRecord, record)
	}
	m[name] = value
	return nil
}

func (a MapAccessor) PrimaryKey(record any) (any, bool) {
	m, ok := record.(map[string]any)
	if !ok {
		return nil, false
	}
	id, ok := m[a.idKey()]
	if !ok || id == nil {
		return nil, false
	}
	return id, true
}

// StructAccessor accesses records represented as struct pointers, resolving
// attributes to exported fields by name via reflection. String and *string
// fields are supported as text attributes. The zero value uses "ID" as the
// identity field; a zero identity counts as unset, which matches ORM
// conventions for not-yet-persisted records.
type StructAccessor struct {
	// IDField is the struct field holding the record identity. Default: "ID".
	IDField string
}

func (a StructAccessor) idField() string {
	if a.IDField == "" {
		return "ID"
	}
	return a.IDField
}

func structValue(record any) (reflect.Value, error) {
	v := reflect.ValueOf(record)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: nil pointer", ErrUnsupportedRecord)
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: %T", ErrUnsupportedRecord, record)
	}
	return v, nil
}

func (a StructAccessor) Get(record any, name string) (string, error) {
	v, err := structValue(record)
	if err != nil {
		return "", err
	}
	f := v.FieldByName(name)
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
	}
	switch f.Kind() {
	case reflect.String:
		return f.String(), nil
	case reflect.Pointer:
		if f.Type().Elem().Kind() == reflect.String {
			if f.IsNil() {
				return "", nil
			}
			return f.Elem().String(), nil
		}
	}
	return "", fmt.Errorf("%w: %q is %s", ErrNotText, name, f.Kind())
}

func (a StructAccessor) Set(record any, name string, value string) error {
	v, err := structValue(record)
	if err != nil {
		return err
	}
	f := v.FieldByName(name)
	if !f.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
	}
	if !f.CanSet() {
		return fmt.Errorf("%w: %q is not settable (pass a pointer to the record)", ErrUnsupportedRecord, name)
	}
	switch f.Kind() {
	case reflect.String:
		f.SetString(value)
		return nil
	case reflect.Pointer:
		if f.Type().Elem().Kind() == reflect.String {
			f.Set(reflect.ValueOf(&value))
			return nil
		}
	}
	return fmt.Errorf("%w: %q is %s", ErrNotText, name, f.Kind())
}

func (a StructAccessor) PrimaryKey(record any) (any, bool) {
	v, err := structValue(record)
	if err != nil {
		return nil, false
	}
	f := v.FieldByName(a.idField())
	if !f.IsValid() || f.IsZero() {
		return nil, false
	}
	return f.Interface(), true
}
