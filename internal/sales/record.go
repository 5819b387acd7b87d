package sales

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RecordID identifies a record. The service sends it as a number or a string.
type RecordID string

// UnmarshalJSON accepts both JSON numbers and strings.
func (id *RecordID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = RecordID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("record id: %w", err)
	}
	*id = RecordID(n.String())
	return nil
}

// Record is a single sales transaction as returned by the service.
type Record struct {
	ID          RecordID `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
}

// RecordPage is one page of records plus the server's page count.
type RecordPage struct {
	Records    []Record `json:"records"`
	TotalPages int      `json:"totalPages"`
}
