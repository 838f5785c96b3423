package domain

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/goccy/go-json"
)

var baseFields = []string{"id", "created_at", "updated_at", ClassField}

// Fields that keep their value once an entity exists. Place amenities only
// change through the link and unlink operations.
var immutableFields = map[Kind][]string{
	KindCity:   {"state_id"},
	KindPlace:  {"user_id", "city_id", "amenity_ids"},
	KindReview: {"user_id", "place_id"},
	KindUser:   {"email"},
}

// Apply copies values from patch onto e. Identity and timestamp keys are
// never copied; unknown keys are dropped. A value of the wrong JSON type
// fails with an InvalidFieldError naming the key.
func Apply(e Entity, patch map[string]any) error {
	return apply(e, patch, baseFields)
}

// Update is Apply for an existing entity: it also leaves the kind's
// foreign keys and other immutable fields untouched.
func Update(e Entity, patch map[string]any) error {
	ignored := append(append([]string{}, baseFields...), immutableFields[e.Kind()]...)
	return apply(e, patch, ignored)
}

func apply(e Entity, patch map[string]any, ignored []string) error {
	fields := fieldsOf(reflect.TypeOf(e))

	filtered := make(map[string]any, len(patch))
	for key, value := range patch {
		if slices.Contains(ignored, key) {
			continue
		}
		typ, ok := fields[key]
		if !ok {
			continue
		}
		if err := checkType(typ, value); err != nil {
			return &InvalidFieldError{Field: key}
		}
		filtered[key] = value
	}
	if len(filtered) == 0 {
		return nil
	}

	data, err := json.Marshal(filtered)
	if err != nil {
		return fmt.Errorf("marshal patch: %w", err)
	}
	if err := json.Unmarshal(data, e); err != nil {
		return fmt.Errorf("apply patch: %w", err)
	}
	return nil
}

// checkType decodes value alone into a fresh field of typ.
func checkType(typ reflect.Type, value any) error {
	if value == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, reflect.New(typ).Interface())
}

var fieldCache sync.Map // reflect.Type -> map[string]reflect.Type

// fieldsOf maps the JSON names of an entity's fields, embedded ones
// included, to their Go types.
func fieldsOf(typ reflect.Type) map[string]reflect.Type {
	if cached, ok := fieldCache.Load(typ); ok {
		return cached.(map[string]reflect.Type)
	}

	fields := make(map[string]reflect.Type)
	collectFields(typ, fields)
	fieldCache.Store(typ, fields)
	return fields
}

func collectFields(typ reflect.Type, into map[string]reflect.Type) {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	for i := range typ.NumField() {
		f := typ.Field(i)
		if f.Anonymous {
			collectFields(f.Type, into)
			continue
		}
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			continue
		case "":
			name = f.Name
		}
		into[name] = f.Type
	}
}
