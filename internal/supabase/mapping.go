package supabase

import (
	"fmt"
	"reflect"
	"strings"
)

// ValidateMapping checks a declarative field-to-column table against the
// persisted row struct. Every mapped column must exist as a json tag on the
// row, and every row column must be mapped; a field added on one side and
// forgotten on the other fails at startup instead of silently dropping data.
func ValidateMapping(row interface{}, columns map[string]string) error {
	t := reflect.TypeOf(row)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("mapping target %s is not a struct", t)
	}

	rowColumns := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		if name == "" {
			continue
		}
		rowColumns[name] = true
	}

	seen := make(map[string]bool, len(columns))
	for field, column := range columns {
		if !rowColumns[column] {
			return fmt.Errorf("field %q maps to unknown column %q on %s", field, column, t.Name())
		}
		if seen[column] {
			return fmt.Errorf("column %q mapped twice on %s", column, t.Name())
		}
		seen[column] = true
	}

	// Server-owned columns are never written by the application.
	serverOwned := map[string]bool{"id": true, "created_at": true}
	for column := range rowColumns {
		if serverOwned[column] {
			continue
		}
		if !seen[column] {
			return fmt.Errorf("column %q on %s has no field mapping", column, t.Name())
		}
	}
	return nil
}

// MustValidateMapping is for package init; a broken mapping is a programming
// error and should stop the process before it serves a single request.
func MustValidateMapping(row interface{}, columns map[string]string) {
	if err := ValidateMapping(row, columns); err != nil {
		panic(err)
	}
}
