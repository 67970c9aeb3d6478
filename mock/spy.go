package mock

import (
	"fmt"
	"reflect"
)

// Spy replaces the function stored in a function variable with a recording wrapper and returns
// the Mock behind it. target must be a pointer to a variable of function type, such as a
// package-level variable or a struct field holding a function.
//
// The original function is installed as the mock's implementation, so the spy is transparent
// apart from recording. Since an implementation takes precedence over a return value, replace
// it with SetImplementation, or call Reset first, to change what the spy returns. Restore puts
// the original function back.
//
// Results are converted back to the function's result types: with one result type the mock's
// return value is used directly; with several, the return value may be a []interface{} holding
// one value per result, or a single value for the first result with the rest left at their
// zero values.
func Spy(target interface{}) *Mock {
	ptr := reflect.ValueOf(target)
	if ptr.Kind() != reflect.Ptr || ptr.IsNil() || ptr.Elem().Kind() != reflect.Func {
		panic(fmt.Errorf("spy target must be a non-nil pointer to a function variable, got %T", target))
	}
	slot := ptr.Elem()
	fnType := slot.Type()
	original := reflect.ValueOf(slot.Interface())

	var impl Func
	if !original.IsNil() {
		impl = func(args ...interface{}) interface{} {
			return callOriginal(original, args)
		}
	}
	m := newMock(impl, nil)

	slot.Set(reflect.MakeFunc(fnType, func(in []reflect.Value) []reflect.Value {
		return resultValues(fnType, m.Call(argsOf(fnType, in)...))
	}))
	m.restore = func() {
		slot.Set(original)
	}
	return m
}

// argsOf flattens the incoming values, expanding the variadic slice if there is one, so that
// the call log holds the arguments as the caller wrote them.
func argsOf(fnType reflect.Type, in []reflect.Value) []interface{} {
	args := make([]interface{}, 0, len(in))
	for i, v := range in {
		if fnType.IsVariadic() && i == len(in)-1 {
			for j := 0; j < v.Len(); j++ {
				args = append(args, v.Index(j).Interface())
			}
			continue
		}
		args = append(args, v.Interface())
	}
	return args
}

func callOriginal(fn reflect.Value, args []interface{}) interface{} {
	fnType := fn.Type()
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		var t reflect.Type
		if fnType.IsVariadic() && i >= fnType.NumIn()-1 {
			t = fnType.In(fnType.NumIn() - 1).Elem()
		} else {
			t = fnType.In(i)
		}
		in[i] = valueAs(a, t)
	}
	out := fn.Call(in)
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0].Interface()
	default:
		ret := make([]interface{}, len(out))
		for i, v := range out {
			ret[i] = v.Interface()
		}
		return ret
	}
}

func resultValues(fnType reflect.Type, result interface{}) []reflect.Value {
	n := fnType.NumOut()
	out := make([]reflect.Value, n)
	if n == 0 {
		return out
	}
	if multi, ok := result.([]interface{}); ok && n > 1 && len(multi) == n {
		for i := range out {
			out[i] = valueAs(multi[i], fnType.Out(i))
		}
		return out
	}
	out[0] = valueAs(result, fnType.Out(0))
	for i := 1; i < n; i++ {
		out[i] = reflect.Zero(fnType.Out(i))
	}
	return out
}

func valueAs(value interface{}, t reflect.Type) reflect.Value {
	if value == nil {
		return reflect.Zero(t)
	}
	v := reflect.ValueOf(value)
	if v.Type().AssignableTo(t) {
		if t.Kind() == reflect.Interface {
			ret := reflect.New(t).Elem()
			ret.Set(v)
			return ret
		}
		return v
	}
	if isNumeric(v.Kind()) && isNumeric(t.Kind()) {
		return v.Convert(t)
	}
	panic(fmt.Errorf("mock value of type %T cannot be used as %s", value, t))
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
