package treemap

import "reflect"

// isNil reports whether key holds the nil value of a nilable kind. Keys of
// any other kind are never nil.
func isNil[K any](key K) bool {
	v := reflect.ValueOf(&key).Elem()

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
