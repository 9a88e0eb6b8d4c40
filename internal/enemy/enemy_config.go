package enemy

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// EnemyDefinition holds the configuration for an enemy type from YAML
type EnemyDefinition struct {
	Name         string  `yaml:"name"`
	MaxHitPoints int     `yaml:"max_hit_points"`
	Speed        float64 `yaml:"speed"`
	WanderRadius int     `yaml:"wander_radius"`
	Color        [3]int  `yaml:"color"`
}

// EnemyYAMLConfig holds the complete enemy configuration from YAML
type EnemyYAMLConfig struct {
	Enemies map[string]EnemyDefinition `yaml:"enemies"`
}

// Global enemy configuration
var EnemyConfig *EnemyYAMLConfig

// LoadEnemyConfig loads enemy definitions from a YAML file
func LoadEnemyConfig(filename string) (*EnemyYAMLConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy config file: %w", err)
	}

	var cfg EnemyYAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse enemy config: %w", err)
	}
	if len(cfg.Enemies) == 0 {
		return nil, fmt.Errorf("enemy config defines no enemies")
	}

	EnemyConfig = &cfg
	return &cfg, nil
}

// MustLoadEnemyConfig loads enemy definitions and panics on error
func MustLoadEnemyConfig(filename string) *EnemyYAMLConfig {
	cfg, err := LoadEnemyConfig(filename)
	if err != nil {
		panic("Failed to load enemy config: " + err.Error())
	}
	return cfg
}

// GetEnemyByKey returns the definition for an enemy key
func (c *EnemyYAMLConfig) GetEnemyByKey(key string) (*EnemyDefinition, error) {
	if def, ok := c.Enemies[key]; ok {
		return &def, nil
	}
	return nil, fmt.Errorf("enemy type '%s' not found in configuration", key)
}

// GetAllEnemyKeys returns all configured enemy keys, sorted for determinism
func (c *EnemyYAMLConfig) GetAllEnemyKeys() []string {
	keys := make([]string, 0, len(c.Enemies))
	for key := range c.Enemies {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
