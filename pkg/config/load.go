package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/furrow/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrSyntax wraps documents that are not valid YAML or JSON.
var ErrSyntax = errors.New("malformed scenario")

// Format selects the decoder used by Parse.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// requiredKeys lists, per section, the keys every scenario must set.
var requiredKeys = map[string][]string{
	"environment": {
		"soil_type", "temperature", "humidity", "rainfall_forecast",
		"growth_stage", "water_availability", "irrigation_system",
	},
	"initial":        {"soil_moisture", "N", "P", "K"},
	"optimal_ranges": {"soil_moisture", "N", "P", "K"},
	"priorities": {
		domain.KeyWaterPriority,
		domain.KeyFertilizerPriority,
		domain.KeyIrrigationFrequencyPriority,
	},
}

// FormatFromPath infers the format from the file extension. Anything but .json is YAML.
func FormatFromPath(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return FormatJSON
	}
	return FormatYAML
}

// Load reads and decodes a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	sc, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// LoadOrDefault loads path, or returns the demo scenario when path is empty.
func LoadOrDefault(path string) (*Scenario, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Parse decodes a scenario document. Missing required keys, unknown keys and type
// mismatches are reported together as a *domain.ConfigurationError.
func Parse(data []byte, format Format) (*Scenario, error) {
	raw := map[string]any{}
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: json: %w", ErrSyntax, err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: yaml: %w", ErrSyntax, err)
		}
	}

	if err := domain.NewConfigurationError(checkRequired(raw)...); err != nil {
		return nil, err
	}

	sc := &Scenario{Physics: domain.DefaultPhysics()}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           sc,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, decodeError(err)
	}
	return sc, nil
}

// ParseString is Parse for inline documents. JSON is detected by a leading brace.
func ParseString(doc string) (*Scenario, error) {
	format := FormatYAML
	if strings.HasPrefix(strings.TrimSpace(doc), "{") {
		format = FormatJSON
	}
	return Parse([]byte(doc), format)
}

func checkRequired(raw map[string]any) []domain.Issue {
	var issues []domain.Issue

	sections := make([]string, 0, len(requiredKeys))
	for section := range requiredKeys {
		sections = append(sections, section)
	}
	sort.Strings(sections)

	for _, section := range sections {
		value, ok := raw[section]
		if !ok || value == nil {
			issues = append(issues, domain.Issue{Field: section, Reason: "required"})
			continue
		}
		m, ok := value.(map[string]any)
		if !ok {
			issues = append(issues, domain.Issue{Field: section, Reason: "must be a mapping"})
			continue
		}
		for _, key := range requiredKeys[section] {
			if _, ok := m[key]; !ok {
				issues = append(issues, domain.Issue{Field: section + "." + key, Reason: "required"})
			}
		}
	}

	if raw["actions"] == nil && raw["grid"] == nil {
		issues = append(issues, domain.Issue{Field: "actions", Reason: "one of actions or grid is required"})
	}
	return issues
}

// decodeError turns mapstructure failures into configuration issues.
func decodeError(err error) error {
	var msErr *mapstructure.Error
	if !errors.As(err, &msErr) {
		return domain.NewConfigurationError(domain.Issue{Field: "scenario", Reason: err.Error()})
	}
	issues := make([]domain.Issue, 0, len(msErr.Errors))
	for _, msg := range msErr.Errors {
		issues = append(issues, domain.Issue{Field: "scenario", Reason: msg})
	}
	return domain.NewConfigurationError(issues...)
}
