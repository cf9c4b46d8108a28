// SPDX-License-Identifier: MIT

package options

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

const (
	reasonNotNumeric = "not a number"
	reasonOverflow   = "overflows float32"
)

// toFloat32 converts a loosely typed configuration value into a float32.
//
// Accepted:
//   - every Go integer kind, float32, float64 (via spf13/cast);
//   - bool, stored as 1 or 0;
//   - json.Number and numeric text (parsed with 32-bit precision);
//   - NaN and ±Inf, whether typed or spelled ("NaN", "+Inf").
//
// Rejected with ErrInvalidConfiguration:
//   - nil, non-numeric text, slices, maps and any other type cast refuses;
//   - finite values whose magnitude exceeds math.MaxFloat32.
//
// Complexity: O(len(text)) for strings, O(1) otherwise.
func toFloat32(key string, v any) (float32, error) {
	switch x := v.(type) {
	case nil:
		return 0, fieldErrorf(key, v, reasonNotNumeric) // cast maps nil to 0
	case json.Number:
		return parseText(key, v, string(x))
	case string:
		return parseText(key, v, x)
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fieldErrorf(key, v, reasonNotNumeric)
	}

	return narrow(key, v, f)
}

// narrow converts a float64 to float32, refusing finite overflow.
// Go leaves out-of-range float conversions implementation-defined, so the
// range is checked before converting.
func narrow(key string, orig any, f float64) (float32, error) {
	if !math.IsInf(f, 0) && !math.IsNaN(f) && math.Abs(f) > math.MaxFloat32 {
		return 0, fieldErrorf(key, orig, reasonOverflow)
	}

	return float32(f), nil
}

// parseText parses numeric text with 32-bit precision.
func parseText(key string, orig any, s string) (float32, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fieldErrorf(key, orig, reasonOverflow)
		}

		return 0, fieldErrorf(key, orig, reasonNotNumeric)
	}

	return float32(f), nil
}
