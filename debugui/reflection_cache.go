package debugui

import (
	"fmt"
	"reflect"
	"sync"
)

type FieldInfo struct {
	Name      string
	Type      reflect.Type
	Index     int
	IsPointer bool
	IsStruct  bool
}

// FieldValue is a flattened, printable struct field. Nested struct fields
// are named Parent.Child.
type FieldValue struct {
	Name  string
	Value string
}

type ReflectionCache struct {
	mu         sync.RWMutex
	fieldCache map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{
		fieldCache: make(map[reflect.Type][]FieldInfo),
	}
}

// GetFields returns the exported fields of struct type t.
func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	rc.mu.RLock()
	cached, ok := rc.fieldCache[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if cached, ok := rc.fieldCache[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}

			fieldType := field.Type
			isPointer := fieldType.Kind() == reflect.Ptr
			if isPointer {
				fieldType = fieldType.Elem()
			}

			fields = append(fields, FieldInfo{
				Name:      field.Name,
				Type:      fieldType,
				Index:     i,
				IsPointer: isPointer,
				IsStruct:  fieldType.Kind() == reflect.Struct,
			})
		}
	}

	rc.fieldCache[t] = fields
	return fields
}

// Describe flattens the exported fields of v, a struct or pointer to one.
func (rc *ReflectionCache) Describe(v any) []FieldValue {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return []FieldValue{{Name: "value", Value: fmt.Sprint(v)}}
	}
	return rc.describe("", val, nil)
}

func (rc *ReflectionCache) describe(prefix string, val reflect.Value, out []FieldValue) []FieldValue {
	for _, field := range rc.GetFields(val.Type()) {
		name := prefix + field.Name
		fieldVal := val.Field(field.Index)

		if field.IsPointer {
			if fieldVal.IsNil() {
				out = append(out, FieldValue{Name: name, Value: "nil"})
				continue
			}
			fieldVal = fieldVal.Elem()
		}

		switch fieldVal.Kind() {
		case reflect.Struct:
			out = rc.describe(name+".", fieldVal, out)
		case reflect.Slice:
			out = append(out, FieldValue{Name: name, Value: fmt.Sprintf("[%d items]", fieldVal.Len())})
		case reflect.Map:
			out = append(out, FieldValue{Name: name, Value: fmt.Sprintf("map[%d items]", fieldVal.Len())})
		default:
			out = append(out, FieldValue{Name: name, Value: fmt.Sprint(fieldVal.Interface())})
		}
	}
	return out
}

var globalReflectionCache = NewReflectionCache()
