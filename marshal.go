package logprob

import (
	"encoding/json"
	"strconv"

	"golang.org/x/exp/constraints"
	"gopkg.in/yaml.v3"
)

// Serialization re-validates on the way in: a persisted or transmitted
// value is not trusted more than user input, so every decoder funnels
// through New and fails with the same ErrNaN / ErrPositive taxonomy as
// direct construction.

// fromWire validates a decoded float64 and narrows it to T. Validation
// happens at full width first so that a positive value too small for T
// (which would narrow to zero) is still rejected.
func fromWire[T constraints.Float](f float64) (LogProb[T], error) {
	if _, err := New(f); err != nil {
		return LogProb[T]{}, err
	}

	return New(T(f))
}

// bitSize reports the width strconv should format T at.
func bitSize[T constraints.Float]() int {
	if _, ok := any(T(0)).(float32); ok {
		return 32
	}

	return 64
}

// MarshalJSON encodes finite values as JSON numbers and Impossible as the
// string "-Inf", since JSON has no literal for infinities.
func (x LogProb[T]) MarshalJSON() ([]byte, error) {
	if x.IsImpossible() {
		return []byte(`"-Inf"`), nil
	}

	return json.Marshal(x.val)
}

// UnmarshalJSON accepts either a JSON number or a string holding a float
// (such as "-Inf"), re-validating through New.
func (x *LogProb[T]) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		v, err := fromWire[T](f)
		if err != nil {
			return err
		}
		*x = v

		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	v, err := fromWire[T](f)
	if err != nil {
		return err
	}
	*x = v

	return nil
}

// MarshalYAML encodes the underlying float; YAML represents Impossible
// natively as -.inf.
func (x LogProb[T]) MarshalYAML() (any, error) {
	return x.val, nil
}

// UnmarshalYAML decodes a YAML float (including -.inf), re-validating
// through New.
func (x *LogProb[T]) UnmarshalYAML(node *yaml.Node) error {
	var f float64
	if err := node.Decode(&f); err != nil {
		return err
	}
	v, err := fromWire[T](f)
	if err != nil {
		return err
	}
	*x = v

	return nil
}

// MarshalText encodes the underlying float in shortest round-trip form,
// for text carriers such as map keys.
func (x LogProb[T]) MarshalText() ([]byte, error) {
	return strconv.AppendFloat(nil, float64(x.val), 'g', -1, bitSize[T]()), nil
}

// UnmarshalText parses a float (strconv syntax, so "-Inf" is accepted),
// re-validating through New.
func (x *LogProb[T]) UnmarshalText(text []byte) error {
	f, err := strconv.ParseFloat(string(text), 64)
	if err != nil {
		return err
	}
	v, err := fromWire[T](f)
	if err != nil {
		return err
	}
	*x = v

	return nil
}
