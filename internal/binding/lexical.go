package binding

import (
	"encoding"
	"reflect"
	"strconv"
)

// lexical renders a scalar the way encoding/xml writes it, except floats,
// which use plain decimal notation so range facets can read them.
func lexical(v reflect.Value) (string, error) {
	if v.CanInterface() {
		if tm, ok := v.Interface().(encoding.TextMarshaler); ok {
			b, err := tm.MarshalText()
			return string(b), err
		}
		if v.CanAddr() {
			if tm, ok := v.Addr().Interface().(encoding.TextMarshaler); ok {
				b, err := tm.MarshalText()
				return string(b), err
			}
		}
	}
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), nil
	case reflect.Slice:
		return string(v.Bytes()), nil
	default:
		return "", nil
	}
}
