package api

import "encoding/json"

// Codec is a connect.Codec that marshals the plain structs in this
// package with encoding/json. Registering it replaces the default
// protojson codec, which is what lets the services run without any
// generated protobuf code.
type Codec struct{}

// Name returns "json" so Connect matches the codec to the
// application/json content type.
func (Codec) Name() string { return "json" }

func (Codec) Marshal(message any) ([]byte, error) {
	return json.Marshal(message)
}

func (Codec) Unmarshal(data []byte, message any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, message)
}
