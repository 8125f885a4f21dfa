package utils

import (
	"fmt"
	"reflect"
)

// ColumnList returns the list of "db" tags of the struct type T, optionally
// prefixed with a table alias. Panics on a non-struct type, which makes a
// mis-declared db model fail loudly at startup.
func ColumnList[T any](prefix ...string) []string {
	var model T
	modelType := reflect.TypeOf(model)
	if modelType.Kind() != reflect.Struct {
		panic(fmt.Sprintf("ColumnList: %T is not a struct", model))
	}

	var columns []string
	for i := 0; i < modelType.NumField(); i++ {
		tag, ok := modelType.Field(i).Tag.Lookup("db")
		if !ok || tag == "-" {
			continue
		}
		if len(prefix) > 0 {
			tag = prefix[0] + "." + tag
		}
		columns = append(columns, tag)
	}
	return columns
}
