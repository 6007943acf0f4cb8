package rop

import (
	"reflect"
)

// IsNil reports whether i holds no value at all: a nil interface or a nil
// pointer, func, chan or unsafe pointer. Nil maps and slices are readable
// empty values and are not reported.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
