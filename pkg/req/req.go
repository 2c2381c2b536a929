package req

import (
	"encoding/json"
	"io"
)

// Decode reads a JSON request body into the payload type.
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	err := json.NewDecoder(body).Decode(&payload)
	return payload, err
}
