package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSON column helpers. Postgres hands jsonb back as []byte; GORM expects
// driver.Valuer/sql.Scanner pairs on the column types.

func scanJSON(dest any, value any) error {
	if value == nil {
		return nil
	}
	switch data := value.(type) {
	case []byte:
		return json.Unmarshal(data, dest)
	case string:
		return json.Unmarshal([]byte(data), dest)
	default:
		return fmt.Errorf("cannot scan %T into JSON column", value)
	}
}

// JSONMap is a free-form JSON object column.
type JSONMap map[string]any

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value any) error { return scanJSON(m, value) }

// MetricMap is a metric-name -> nullable-value column. Missing metrics are
// stored as explicit nulls so consumers can tell "no data" from zero.
type MetricMap map[string]*float64

func (m MetricMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *MetricMap) Scan(value any) error { return scanJSON(m, value) }

// Vector is an ordered list of nullable scores.
type Vector []*float64

func (v Vector) Value() (driver.Value, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

func (v *Vector) Scan(value any) error { return scanJSON(v, value) }

// RawScores maps player id -> named attempt field -> raw value as recorded
// during the evaluation event. Opaque beyond "field name -> number or string".
type RawScores map[string]map[string]any

func (r RawScores) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}
	return json.Marshal(r)
}

func (r *RawScores) Scan(value any) error { return scanJSON(r, value) }
