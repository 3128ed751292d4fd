// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"bytes"
	"io"
	"reflect"

	"github.com/near/borsh-go"
)

// CustomSerializer is implemented by types whose wire layout cannot be
// expressed as a plain borsh struct.
type CustomSerializer interface {
	SerializeBorsh(w io.Writer) error
}

// CustomDeserializer is the counterpart of [CustomSerializer].
type CustomDeserializer[T any] interface {
	DeserializeBorsh([]byte) (*T, error)
}

// Deserialize decodes [data] into a new T. [data] must hold exactly one
// encoded value.
func Deserialize[T any](data []byte) (*T, error) {
	result := new(T)
	var err error
	switch t := any(*result).(type) {
	case CustomDeserializer[T]:
		return t.DeserializeBorsh(data)
	default:
		err = borsh.Deserialize(result, data)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Serialize encodes [value] with borsh unless it provides its own layout.
func Serialize[T any](value T) ([]byte, error) {
	b := &bytes.Buffer{}
	if err := SerializeTo(value, b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func SerializeTo[T any](value T, w io.Writer) error {
	if isNil(value) {
		return nil
	}
	switch t := any(value).(type) {
	case CustomSerializer:
		return t.SerializeBorsh(w)
	default:
		b, err := borsh.Serialize(value)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
}

func isNil[T any](t T) bool {
	v := reflect.ValueOf(t)
	kind := v.Kind()
	// Must be one of these types to be nillable
	return (kind == reflect.Ptr ||
		kind == reflect.Interface ||
		kind == reflect.Slice ||
		kind == reflect.Map ||
		kind == reflect.Chan ||
		kind == reflect.Func) &&
		v.IsNil()
}

// RawBytes are written as-is, without the borsh length prefix.
type RawBytes []byte

func (r RawBytes) SerializeBorsh(w io.Writer) error {
	_, err := w.Write(r)
	return err
}

func (RawBytes) DeserializeBorsh(data []byte) (*RawBytes, error) {
	rawData := RawBytes(data)
	return &rawData, nil
}
