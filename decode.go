package optional

import (
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// valueDecoder is the non-generic entry point DecodeHookFunc uses
// to recognize Optional targets of any instantiation.
type valueDecoder interface {
	decodeValue(data interface{}) error
}

// DecodeHookFunc returns a mapstructure decode hook that decodes raw values into Optional fields.
//
// A decoded value makes the target Optional present,
// a missing key leaves it in its zero (empty) state.
//
//	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
//		DecodeHook: optional.DecodeHookFunc(),
//		Result:     &config,
//	})
func DecodeHookFunc() mapstructure.DecodeHookFuncValue {
	return func(from reflect.Value, to reflect.Value) (interface{}, error) {
		if !to.CanAddr() {
			return from.Interface(), nil
		}

		decoder, ok := to.Addr().Interface().(valueDecoder)
		if !ok {
			return from.Interface(), nil
		}

		err := decoder.decodeValue(from.Interface())
		if err != nil {
			return nil, err
		}

		return to.Interface(), nil
	}
}

func (o *Optional[T]) decodeValue(data interface{}) error {
	if data == nil {
		var zero T

		o.value = zero
		o.present = false

		return nil
	}

	var v T

	err := mapstructure.Decode(data, &v)
	if err != nil {
		return err
	}

	o.value = v
	o.present = true

	return nil
}
