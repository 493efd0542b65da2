package utils

import (
	"encoding/json"
	"io"
)

// ReadJson decodes a JSON body into T, e.g. an http response
// in tests or a client of the api.
func ReadJson[T any](r io.Reader) (T, error) {
	var objects T
	err := json.NewDecoder(r).Decode(&objects)
	return objects, err
}
