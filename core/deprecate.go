package core

import (
	"fmt"
	"reflect"

	"go.uber.org/zap/zapcore"
)

// DeprecationMessage is the warning emitted for each call of the deprecated member key.
func DeprecationMessage(key string) string {
	return fmt.Sprintf("Warning: %s() is deprecated. Use other methods instead.", key)
}

func deprecatedMethod(key string, fn MethodFunc, n Notifier) MethodFunc {
	msg := DeprecationMessage(key)
	return func(r *Record, args ...any) (any, error) {
		n.Notify(zapcore.WarnLevel, msg)
		return fn(r, args...)
	}
}

// DeprecateFunc wraps the function fn so that each call first emits the
// deprecation warning for key through n, then calls fn with the same
// arguments and returns its results unchanged. A nil n uses the default
// notifier.
//
// fn must be a non-nil function; DeprecateFunc panics otherwise.
//
// Usage:
//
//	format := decorum.DeprecateFunc("format", func(a, b string) string {
//		return a + "\n" + b
//	}, nil)
//	format("x", "y") // warns once, returns "x\ny"
func DeprecateFunc[F any](key string, fn F, n Notifier) F {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		panic(fmt.Sprintf("decorum: DeprecateFunc(%q) needs a non-nil function, got %T", key, fn))
	}
	if n == nil {
		n = DefaultNotifier()
	}
	msg := DeprecationMessage(key)
	variadic := v.Type().IsVariadic()
	wrapped := reflect.MakeFunc(v.Type(), func(args []reflect.Value) []reflect.Value {
		n.Notify(zapcore.WarnLevel, msg)
		if variadic {
			return v.CallSlice(args)
		}
		return v.Call(args)
	})
	return wrapped.Interface().(F)
}
