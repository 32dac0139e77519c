package extract

import (
	"fmt"
	"os"

	"github.com/kanjoflow/kanjo/internal/model"
	"gopkg.in/yaml.v3"
)

// tablesFile is the on-disk YAML shape for keyword table overrides.
type tablesFile struct {
	Business []struct {
		Type     string   `yaml:"type"`
		Keywords []string `yaml:"keywords"`
	} `yaml:"business"`
	Items []struct {
		Category string   `yaml:"category"`
		Keywords []string `yaml:"keywords"`
	} `yaml:"items"`
	Alcohol []string `yaml:"alcohol"`
	Meeting []string `yaml:"meeting"`
}

// LoadTables reads keyword tables from a YAML file. Sections present in the
// file replace the built-in defaults wholesale; absent sections keep them.
// Business entries keep their file order, which becomes the tie-break order.
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied config path
	if err != nil {
		return nil, fmt.Errorf("failed to read keyword tables: %w", err)
	}

	var file tablesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse keyword tables: %w", err)
	}

	tables := DefaultTables()

	if len(file.Business) > 0 {
		business := make([]BusinessKeywords, 0, len(file.Business))
		for _, entry := range file.Business {
			bt := model.BusinessType(entry.Type)
			if bt.Domain() == model.DomainUnknown {
				return nil, fmt.Errorf("unknown business type %q in %s", entry.Type, path)
			}
			business = append(business, BusinessKeywords{Type: bt, Keywords: entry.Keywords})
		}
		tables.Business = business
	}

	if len(file.Items) > 0 {
		items := make([]ItemKeywords, 0, len(file.Items))
		for _, entry := range file.Items {
			items = append(items, ItemKeywords{Category: entry.Category, Keywords: entry.Keywords})
		}
		tables.Items = items
	}

	if len(file.Alcohol) > 0 {
		tables.Alcohol = file.Alcohol
	}
	if len(file.Meeting) > 0 {
		tables.Meeting = file.Meeting
	}

	return tables, nil
}
