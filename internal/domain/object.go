package domain

import (
	"encoding/json"
	"reflect"
	"strings"
	"sync"
)

// Host records are only partly modelled. The members a struct does not
// declare are kept in its Extra map and written back unchanged.

var declaredNames sync.Map // reflect.Type -> []string

// decodeObject decodes data into v, a pointer to a method-free struct, and
// returns the object members that v does not declare.
func decodeObject(data []byte, v any) (map[string]json.RawMessage, error) {
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	// encoding/json matches member names case-insensitively
	for _, name := range jsonNames(reflect.TypeOf(v).Elem()) {
		for key := range raw {
			if strings.EqualFold(key, name) {
				delete(raw, key)
			}
		}
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return raw, nil
}

// encodeObject encodes v and merges extra members into the result. A
// declared member always wins over an extra one of the same name.
func encodeObject(v any, extra map[string]json.RawMessage) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return data, err
	}

	var out map[string]json.RawMessage
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	for key, raw := range extra {
		if _, ok := out[key]; !ok {
			out[key] = raw
		}
	}
	return json.Marshal(out)
}

// jsonNames lists the member names a struct type declares through its
// exported fields.
func jsonNames(t reflect.Type) []string {
	if cached, ok := declaredNames.Load(t); ok {
		return cached.([]string)
	}

	names := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = field.Name
		}
		names = append(names, name)
	}

	declaredNames.Store(t, names)
	return names
}
