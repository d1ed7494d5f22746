package ingestion

import (
	"encoding/json"
	"errors"

	"github.com/jonathan/ats-resume/internal/schemas"
	"github.com/jonathan/ats-resume/internal/types"
)

func parseJSON(data []byte) ([]types.Record, error) {
	if !json.Valid(data) {
		return nil, errors.New("malformed JSON")
	}
	if err := schemas.ValidateRecords(data); err != nil {
		return nil, err
	}

	var records []types.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}
