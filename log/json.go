package log

import (
	"encoding/json"
	"fmt"
)

// JSON defers marshaling v until the log line is formatted.
func JSON(v any) fmt.Stringer {
	if j, ok := v.(JSONValue); ok {
		return j
	}
	return JSONValue{Value: v}
}

type JSONValue struct {
	Value any
}

func (c JSONValue) String() string {
	if c.Value == nil {
		return "null"
	}
	b, err := json.Marshal(c.Value)
	if err != nil {
		return fmt.Sprintf("<json error: %v>", err)
	}
	return string(b)
}
