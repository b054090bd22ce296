package postgrest

import "encoding/json"

const genericStoreMessage = "record store error"

// extractMessage pulls "message" out of a store error payload; anything else yields a generic text.
func extractMessage(body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return genericStoreMessage
	}
	if msg, ok := payload["message"].(string); ok {
		return msg
	}
	return genericStoreMessage
}
