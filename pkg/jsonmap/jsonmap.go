// Package jsonmap adapts plain string maps to gorm JSON columns.
package jsonmap

import (
	"gorm.io/datatypes"
)

// FromStringMap converts a string map into a GORM JSON map value
// suitable for a json column.
func FromStringMap(values map[string]string) datatypes.JSONMap {
	out := datatypes.JSONMap{}
	for key, value := range values {
		out[key] = value
	}
	return out
}
