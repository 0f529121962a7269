package output

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/pranshuparmar/memtop/pkg/model"
)

func ToJSON(r model.ScanResult) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "{}", err
	}
	return string(data), nil
}

func ToYAML(r model.ScanResult) (string, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
