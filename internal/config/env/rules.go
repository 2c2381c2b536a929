package env

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"yambo_backend/internal/config"
	"yambo_backend/internal/game/sheet"
	"yambo_backend/internal/model"
)

type rulesYAML struct {
	Columns []struct {
		ID        string `yaml:"id"`
		MaxTries  int    `yaml:"max_tries"`
		FillOrder string `yaml:"fill_order"`
	} `yaml:"columns"`
	Bonus struct {
		Threshold int `yaml:"threshold"`
		Points    int `yaml:"points"`
	} `yaml:"bonus"`
}

type rulesConfig struct {
	columns        []model.ColumnRules
	bonusThreshold int
	bonusPoints    int
}

// NewRulesConfigFromYAML loads the table ruleset from a YAML file. A
// missing file means the standard rules.
func NewRulesConfigFromYAML(path string) (config.RulesConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		def := sheet.DefaultConfig()
		return &rulesConfig{
			columns:        def.Columns,
			bonusThreshold: def.BonusThreshold,
			bonusPoints:    def.BonusPoints,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	var parsed rulesYAML
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse rules config: %w", err)
	}
	if len(parsed.Columns) == 0 {
		return nil, fmt.Errorf("rules config %s declares no columns", path)
	}

	cfg := &rulesConfig{
		bonusThreshold: parsed.Bonus.Threshold,
		bonusPoints:    parsed.Bonus.Points,
	}
	for _, c := range parsed.Columns {
		order, err := parseFillOrder(c.FillOrder)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", c.ID, err)
		}
		cfg.columns = append(cfg.columns, model.ColumnRules{
			ID:        model.ColumnID(c.ID),
			MaxTries:  c.MaxTries,
			FillOrder: order,
		})
	}
	return cfg, nil
}

func parseFillOrder(s string) (model.FillOrder, error) {
	switch s {
	case "any", "":
		return model.FillAny, nil
	case "topDown":
		return model.FillTopDown, nil
	case "bottomUp":
		return model.FillBottomUp, nil
	default:
		return 0, fmt.Errorf("unknown fill order %q", s)
	}
}

func (cfg *rulesConfig) Columns() []model.ColumnRules {
	return cfg.columns
}

func (cfg *rulesConfig) BonusThreshold() int {
	return cfg.bonusThreshold
}

func (cfg *rulesConfig) BonusPoints() int {
	return cfg.bonusPoints
}
