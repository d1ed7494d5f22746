package ingestion

import (
	"go.yaml.in/yaml/v3"

	"github.com/jonathan/ats-resume/internal/types"
)

func parseYAML(data []byte) ([]types.Record, error) {
	var records []types.Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}
