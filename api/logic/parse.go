/* parse.go
 * Contains the conversion used for every numeric field the FPL api sends as a string
 * Authors: Zachary Bower
 */

package logic

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ParseDecimal converts an upstream value to a finite float. It never fails: nil, empty, non-numeric, NaN and infinite
// values all become 0
func ParseDecimal(value any) float64 {
	var f float64
	switch v := value.(type) {
	case nil:
		return 0
	case string:
		f = parseString(v)
	case *string:
		if v == nil {
			return 0
		}
		f = parseString(*v)
	case json.Number:
		f = parseString(v.String())
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case *int:
		if v == nil {
			return 0
		}
		f = float64(*v)
	case int64:
		f = float64(v)
	case int32:
		f = float64(v)
	default:
		return 0
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func parseString(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
