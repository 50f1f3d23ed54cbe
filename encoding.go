package optional

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements the yaml.Marshaler interface.
//
// An empty Optional marshals to null.
func (o Optional[T]) MarshalYAML() (interface{}, error) {
	if !o.present {
		return nil, nil
	}

	return o.value, nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
//
// An explicit null makes the Optional empty, any other node decodes into T and makes it present.
// An omitted field never reaches the unmarshaler and leaves the Optional in its zero (empty) state.
// The Optional is left unchanged when decoding fails.
func (o *Optional[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		var zero T

		o.value = zero
		o.present = false

		return nil
	}

	var v T

	err := value.Decode(&v)
	if err != nil {
		return err
	}

	o.value = v
	o.present = true

	return nil
}

// MarshalJSON implements the json.Marshaler interface.
//
// An empty Optional marshals to null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}

	return json.Marshal(o.value)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// A JSON null makes the Optional empty, any other value decodes into T and makes it present.
// The Optional is left unchanged when decoding fails.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		var zero T

		o.value = zero
		o.present = false

		return nil
	}

	var v T

	err := json.Unmarshal(data, &v)
	if err != nil {
		return err
	}

	o.value = v
	o.present = true

	return nil
}
