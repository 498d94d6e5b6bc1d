package desktop

import (
	"encoding/json"
	"fmt"
	"os"
)

// History extracts the navigation history from a page-title-updated
// event. The page sends either the history array or the current URL.
func History(data []interface{}) []string {
	if len(data) == 0 {
		return nil
	}
	switch v := data[0].(type) {
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Payload re-encodes the first argument of a save event as JSON.
func Payload(data []interface{}) json.RawMessage {
	if len(data) == 0 {
		return json.RawMessage("null")
	}
	raw, err := json.Marshal(data[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "desktop: save payload: %v\n", err)
		return json.RawMessage("null")
	}
	return raw
}
