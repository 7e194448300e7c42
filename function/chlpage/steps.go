package chlpage

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v2"
)

type stepConfig struct {
	Label   string `yaml:"label"`
	Kind    string `yaml:"kind"` // "match" (default) or "context"
	Pattern string `yaml:"pattern"`
	Cap     int    `yaml:"cap"`
	After   int    `yaml:"after"`
}

// LoadSteps reads extra pattern steps from a YAML file. Patterns for match
// steps must compile; bad input fails loudly here rather than silently
// producing empty sections later.
func LoadSteps(path string) ([]Step, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var configs []stepConfig
	if err := yaml.Unmarshal(raw, &configs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	var steps []Step
	for i, c := range configs {
		if c.Pattern == "" {
			return nil, fmt.Errorf("step %d: pattern is required", i)
		}
		s := Step{Label: c.Label, Pattern: c.Pattern, Cap: c.Cap, After: c.After}
		if s.Label == "" {
			s.Label = c.Pattern
		}
		switch c.Kind {
		case "", "match":
			s.Kind = KindMatch
			if _, err := regexp.Compile(c.Pattern); err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
		case "context":
			s.Kind = KindContext
			if s.After == 0 {
				s.After = 20
			}
		default:
			return nil, fmt.Errorf("step %d: unknown kind %q", i, c.Kind)
		}
		steps = append(steps, s)
	}
	return steps, nil
}
