package reconcile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/joseph-ayodele/invoice-reconciler/internal/match"
	"github.com/joseph-ayodele/invoice-reconciler/internal/price"
)

// FileConfig is the on-disk override surface for the engine: cascade
// thresholds, price band boundaries and semantic vocabularies. Every section
// is optional; absent values keep their defaults.
type FileConfig struct {
	Matcher struct {
		SubstringThreshold float64 `json:"substring_threshold"`
		FuzzyThreshold     float64 `json:"fuzzy_threshold"`
		SemanticThreshold  float64 `json:"semantic_threshold"`
		ConfidenceFloor    float64 `json:"confidence_floor"`
	} `json:"matcher"`
	PriceBands struct {
		MinorPct       float64 `json:"minor_pct"`
		SmallPct       float64 `json:"small_pct"`
		ModeratePct    float64 `json:"moderate_pct"`
		SignificantPct float64 `json:"significant_pct"`
	} `json:"price_bands"`
	Vocabulary match.Vocabulary `json:"vocabulary"`
}

// BuildConfigJSONSchema returns the JSON-Schema (draft 2020-12 subset) the
// config file must satisfy, as a generic map.
func BuildConfigJSONSchema() map[string]any {
	pct := map[string]any{"type": "number", "minimum": 0.0, "maximum": 100.0}
	wordList := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string", "minLength": 1},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"matcher": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"substring_threshold": pct,
					"fuzzy_threshold":     pct,
					"semantic_threshold":  pct,
					"confidence_floor":    pct,
				},
			},
			"price_bands": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"minor_pct":       pct,
					"small_pct":       pct,
					"moderate_pct":    pct,
					"significant_pct": pct,
				},
			},
			"vocabulary": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"fabric_types": wordList,
					"colors":       wordList,
					"patterns":     wordList,
				},
			},
		},
	}
}

// validateJSONAgainstSchema validates "data" against "schemaMap".
func validateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// ParseConfig validates raw JSON against the config schema and decodes it.
func ParseConfig(data []byte) (*FileConfig, error) {
	if err := validateJSONAgainstSchema(BuildConfigJSONSchema(), data); err != nil {
		return nil, err
	}
	var cfg FileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// LoadConfigFile reads and parses a config file from disk.
func LoadConfigFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// MatcherConfig converts the file section into matcher thresholds;
// zero values fall through to the defaults inside match.New.
func (c *FileConfig) MatcherConfig() match.Config {
	return match.Config{
		SubstringThreshold: c.Matcher.SubstringThreshold,
		FuzzyThreshold:     c.Matcher.FuzzyThreshold,
		SemanticThreshold:  c.Matcher.SemanticThreshold,
		ConfidenceFloor:    c.Matcher.ConfidenceFloor,
	}
}

// Bands converts the file section into price bands; zero values fall
// through to the defaults inside price.NewValidator.
func (c *FileConfig) Bands() price.Bands {
	return price.Bands{
		Minor:       c.PriceBands.MinorPct,
		Small:       c.PriceBands.SmallPct,
		Moderate:    c.PriceBands.ModeratePct,
		Significant: c.PriceBands.SignificantPct,
	}
}
