package desktop

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Both pages define window.haunt with setOpacity and setText.

func setOpacityJS(opacity float64) string {
	opacity = math.Max(0, math.Min(1, opacity))
	return fmt.Sprintf("window.haunt && window.haunt.setOpacity(%s)",
		strconv.FormatFloat(opacity, 'f', 3, 64))
}

func setTextJS(text string) string {
	return fmt.Sprintf("window.haunt && window.haunt.setText(%s)", jsString(text))
}

// jsString renders s as a JavaScript string literal.
func jsString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(b)
}
