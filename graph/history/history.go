// Package history persists completed executions' Timing sequences for
// later inspection — an audit trail, not the per-run value Cache.
package history

import (
	"encoding/json"
	"time"
)

// Record is the JSON-serializable form of one graph.Timing entry: node
// identity is flattened to its name since graph.Node itself carries no
// stable serialization.
type Record struct {
	Node      string    `json:"node"`
	TimeStart time.Time `json:"timeStart"`
	TimeEnd   time.Time `json:"timeEnd"`
	Err       string    `json:"err,omitempty"`
}

func marshalRecords(records []Record) (string, error) {
	data, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func unmarshalRecords(data string) ([]Record, error) {
	var records []Record
	if data == "" {
		return nil, nil
	}
	if err := json.Unmarshal([]byte(data), &records); err != nil {
		return nil, err
	}
	return records, nil
}
