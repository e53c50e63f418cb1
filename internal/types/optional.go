// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"bytes"
	"encoding/json"
)

// Optional is a patch field for a nullable column. The zero value leaves the
// column untouched; a set Optional with a nil Value clears it.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns an Optional that sets the column to v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns an Optional that clears the column.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

func (o Optional[T]) IsZero() bool {
	return !o.Set
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// UnmarshalJSON only runs for keys present in the document, so an absent key
// keeps the zero value.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Null[T]()
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// column returns the value to write, nil meaning NULL.
func (o Optional[T]) column() interface{} {
	if o.Value == nil {
		return nil
	}
	return *o.Value
}
