package itembank

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"traitcat/internal/domain"
)

type bankFile struct {
	Items []domain.Item `yaml:"items"`
}

// Load reads a YAML bank file and validates it. The expected shape is a
// top-level `items` list; see testdata/bank.yaml for an example.
func Load(path string) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read item bank: %w", err)
	}
	return Parse(raw)
}

// Parse builds a bank from raw YAML bytes.
func Parse(raw []byte) (*Bank, error) {
	var f bankFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode item bank: %w", err)
	}
	bank, err := New(f.Items)
	if err != nil {
		return nil, fmt.Errorf("validate item bank: %w", err)
	}
	return bank, nil
}
