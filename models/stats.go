package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StatMap is a free-form stat payload, e.g. {"runs": 50, "wickets": 2} for
// cricket or {"goals": 2, "assists": 1} for football. Values are whatever the
// client sent; only numeric entries participate in aggregation.
type StatMap map[string]interface{}

func (m StatMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *StatMap) Scan(src interface{}) error {
	if src == nil {
		*m = StatMap{}
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into StatMap", src)
	}
	if len(data) == 0 {
		*m = StatMap{}
		return nil
	}
	return json.Unmarshal(data, m)
}

// NumericValue reports the numeric reading of a stat entry. String-tagged
// entries (e.g. a "200/5" cricket score) are not numeric.
func NumericValue(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// AccumulateStats adds the numeric entries of src into dst as running sums,
// leaving non-numeric entries out. dst may be nil.
func AccumulateStats(dst StatMap, src StatMap) StatMap {
	if dst == nil {
		dst = StatMap{}
	}
	for key, raw := range src {
		inc, ok := NumericValue(raw)
		if !ok {
			continue
		}
		current, _ := NumericValue(dst[key])
		dst[key] = current + inc
	}
	return dst
}
