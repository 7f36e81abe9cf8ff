package common

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/mr-tron/base58"
)

// UnmarshalDataByEncoding unmarshals a bare base58 string, or a
// [data, encoding] pair (encoding one of "base58"/"base64"), into raw
// bytes plus the encoding name that was used ("" for the bare-string form).
func UnmarshalDataByEncoding(input []byte) ([]byte, string, error) {
	var (
		err      error
		data     interface{}
		encoding string
	)
	if err = json.Unmarshal(input, &data); err != nil {
		return input, "", err
	}
	switch v := data.(type) {
	case string:
		decoded, derr := base58.Decode(v)
		if derr != nil {
			return nil, "", fmt.Errorf("decode base58 address: %w", derr)
		}
		input = decoded
	case []interface{}:
		if len(v) == 0 {
			return nil, "", err
		}
		switch v[1] {
		case "base58":
			encoding = "base58"
			decoded, derr := base58.Decode(v[0].(string))
			if derr != nil {
				return nil, "", fmt.Errorf("decode base58 data: %w", derr)
			}
			input = decoded
		case "base64":
			encoding = "base64"
			input, _ = base64.StdEncoding.DecodeString(v[0].(string))
		default:
			return nil, "", fmt.Errorf("unsupported encoding: %v", v[1])
		}
	}
	return input, encoding, err
}
