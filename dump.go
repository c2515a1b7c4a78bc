package pavlog

import (
	"fmt"
	"reflect"
)

const (
	dumpLeafFormat      = "{path}: {value}"
	dumpContainerFormat = "{path}: {type} (len {len})"
	dumpRootPath        = "value"

	// Maximum recursion depth to prevent stack overflow
	maxDumpDepth = 10
	// Elements logged per slice or array
	maxDumpElements = 10
)

// Dump emits debug events describing v: one per leaf value, one per map,
// slice or array header. Values implementing error or fmt.Stringer are leaves.
// Struct fields are walked by name and unexported fields are skipped; a struct
// with no exported fields is printed as a leaf. Cycles and depth beyond 10 are reported instead of
// followed. The first emission error stops the walk.
func (l *Logger) Dump(v any) error {
	visited := make(map[uintptr]bool)
	return l.dumpValue(v, dumpRootPath, visited, 0)
}

func (l *Logger) dumpLeaf(path string, value any) error {
	return l.Debug(dumpLeafFormat, Fields{"path": path, "value": value})
}

func (l *Logger) dumpValue(v any, path string, visited map[uintptr]bool, depth int) error {
	if depth > maxDumpDepth {
		return l.dumpLeaf(path, "<max depth reached>")
	}
	if v == nil {
		return l.dumpLeaf(path, "<nil>")
	}

	val := reflect.ValueOf(v)
	for {
		if (val.Kind() == reflect.Interface || val.Kind() == reflect.Ptr) && val.IsNil() {
			return l.dumpLeaf(path, "<nil>")
		}
		if isDumpLeaf(val) {
			return l.dumpLeaf(path, val.Interface())
		}
		if val.Kind() != reflect.Interface && val.Kind() != reflect.Ptr {
			break
		}
		if val.Kind() == reflect.Ptr {
			ptr := val.Pointer()
			if visited[ptr] {
				return l.dumpLeaf(path, "<circular reference>")
			}
			visited[ptr] = true
		}
		val = val.Elem()
	}

	typ := val.Type()

	switch val.Kind() {
	case reflect.Struct:
		if !hasExportedField(typ) {
			return l.dumpLeaf(path, val.Interface())
		}
		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			if err := l.dumpValue(val.Field(i).Interface(), path+"."+field.Name, visited, depth+1); err != nil {
				return err
			}
		}
		return nil

	case reflect.Map:
		if err := l.dumpContainer(path, typ, val.Len()); err != nil {
			return err
		}
		iter := val.MapRange()
		for iter.Next() {
			keyPath := fmt.Sprintf("%s[%v]", path, iter.Key().Interface())
			if err := l.dumpValue(iter.Value().Interface(), keyPath, visited, depth+1); err != nil {
				return err
			}
		}
		return nil

	case reflect.Slice, reflect.Array:
		if err := l.dumpContainer(path, typ, val.Len()); err != nil {
			return err
		}
		for i := 0; i < val.Len() && i < maxDumpElements; i++ {
			elem := val.Index(i)
			if !elem.CanInterface() {
				continue
			}
			if err := l.dumpValue(elem.Interface(), fmt.Sprintf("%s[%d]", path, i), visited, depth+1); err != nil {
				return err
			}
		}
		if val.Len() > maxDumpElements {
			return l.dumpLeaf(path, fmt.Sprintf("... (%d more elements)", val.Len()-maxDumpElements))
		}
		return nil

	default:
		if val.CanInterface() {
			return l.dumpLeaf(path, val.Interface())
		}
		return l.dumpLeaf(path, v)
	}
}

func (l *Logger) dumpContainer(path string, typ reflect.Type, n int) error {
	return l.Debug(dumpContainerFormat, Fields{"path": path, "type": typ.String(), "len": n})
}

var (
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
)

func isDumpLeaf(val reflect.Value) bool {
	if !val.CanInterface() {
		return false
	}
	t := val.Type()
	return t.Implements(errorType) || t.Implements(stringerType)
}

func hasExportedField(t reflect.Type) bool {
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			return true
		}
	}
	return false
}
