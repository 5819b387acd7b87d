package salesapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Veraticus/salesdash/internal/sales"
)

var errEmptyBody = errors.New("empty response body")

// recordEnvelope covers the object shapes the products endpoint is known to use.
type recordEnvelope struct {
	TotalPages   *int           `json:"totalPages"`
	Transactions []sales.Record `json:"transactions"`
	Records      []sales.Record `json:"records"`
	Products     []sales.Record `json:"products"`
	Data         []sales.Record `json:"data"`
}

func decodeRecordPage(body []byte) (sales.RecordPage, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return sales.RecordPage{}, fmt.Errorf("failed to decode records: %w", errEmptyBody)
	}

	if body[0] == '[' {
		var records []sales.Record
		if err := json.Unmarshal(body, &records); err != nil {
			return sales.RecordPage{}, fmt.Errorf("failed to decode records: %w", err)
		}
		return sales.RecordPage{Records: nonNil(records), TotalPages: 1}, nil
	}

	var env recordEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return sales.RecordPage{}, fmt.Errorf("failed to decode records: %w", err)
	}

	page := sales.RecordPage{TotalPages: 1}
	if env.TotalPages != nil {
		page.TotalPages = max(*env.TotalPages, 1)
	}
	switch {
	case env.Transactions != nil:
		page.Records = env.Transactions
	case env.Records != nil:
		page.Records = env.Records
	case env.Products != nil:
		page.Records = env.Products
	default:
		page.Records = env.Data
	}
	page.Records = nonNil(page.Records)

	return page, nil
}

func nonNil(records []sales.Record) []sales.Record {
	if records == nil {
		return []sales.Record{}
	}
	return records
}

// decodeStatistics reads the [amount, sold, unsold] triple. The object form
// with named fields is accepted as well.
func decodeStatistics(body []byte) (sales.Statistics, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return sales.Statistics{}, fmt.Errorf("failed to decode statistics: %w", errEmptyBody)
	}

	if body[0] == '{' {
		var stats sales.Statistics
		if err := json.Unmarshal(body, &stats); err != nil {
			return sales.Statistics{}, fmt.Errorf("failed to decode statistics: %w", err)
		}
		return stats, nil
	}

	var values []json.Number
	if err := json.Unmarshal(body, &values); err != nil {
		return sales.Statistics{}, fmt.Errorf("failed to decode statistics: %w", err)
	}
	if len(values) != 3 {
		return sales.Statistics{}, fmt.Errorf("failed to decode statistics: expected 3 values, got %d", len(values))
	}

	amount, err := values[0].Float64()
	if err != nil {
		return sales.Statistics{}, fmt.Errorf("total sale amount: %w", err)
	}
	sold, err := countValue(values[1])
	if err != nil {
		return sales.Statistics{}, fmt.Errorf("total sold items: %w", err)
	}
	unsold, err := countValue(values[2])
	if err != nil {
		return sales.Statistics{}, fmt.Errorf("total unsold items: %w", err)
	}

	return sales.Statistics{
		TotalSaleAmount:  amount,
		TotalSoldItems:   sold,
		TotalUnsoldItems: unsold,
	}, nil
}

func countValue(n json.Number) (int, error) {
	if i, err := n.Int64(); err == nil {
		return int(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, err
	}
	return int(f), nil
}
