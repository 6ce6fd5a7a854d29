package event

import "encoding/json"

// DecodePayload converts an event payload to T. Payloads that crossed a JSON
// boundary arrive as maps and are re-decoded.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
