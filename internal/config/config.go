package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/npillmayer/propsel/registry"
)

// Property is the configuration of an injected property.
type Property struct {
	Name     string `yaml:"name"`
	Selector string `yaml:"selector"`
	InjectAs string `yaml:"inject_as,omitempty"`
	Optional bool   `yaml:"optional,omitempty"`
	Handler  bool   `yaml:"handler,omitempty"`
}

// Component lists the injected properties of a component.
type Component struct {
	Name       string     `yaml:"name"`
	Properties []Property `yaml:"properties"`
}

// Config defines the overall structure of the propsel configuration.
// Values will be taken from a config yml file or environment variables
// or both.
type Config struct {
	LogLevel   string      `yaml:"log_level" env:"PROPSEL_LOG_LEVEL" env-default:"info"`
	Component  string      `yaml:"component" env:"PROPSEL_COMPONENT"`
	Sources    []string    `yaml:"sources"`
	Components []Component `yaml:"components"`
}

// Load reads the configuration from a YAML file and the environment. If
// path is empty, only the environment is read.
func Load(path string) (*Config, error) {
	var config Config
	var err error
	if path == "" {
		err = cleanenv.ReadEnv(&config)
	} else {
		err = cleanenv.ReadConfig(path, &config)
	}
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &config, nil
}

// Level returns the configured log level. Unknown level names fall back
// to info.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Fields returns the registry fields of a configured component.
func (c Component) Fields() []registry.Field {
	fields := make([]registry.Field, len(c.Properties))
	for i, p := range c.Properties {
		fields[i] = registry.Field{
			Name:     p.Name,
			Selector: p.Selector,
			InjectAs: p.InjectAs,
			Optional: p.Optional,
			Handler:  p.Handler,
		}
	}
	return fields
}

// Register adds every configured component to a registry.
func (c *Config) Register(r *registry.Registry) error {
	for _, comp := range c.Components {
		if err := r.AddInjectedFields(comp.Name, comp.Fields()); err != nil {
			return err
		}
	}
	return nil
}

// FromRegistry lists the components of a registry in configuration form,
// with selectors in canonical notation. Components are sorted by name.
func FromRegistry(r *registry.Registry) []Component {
	names := r.Components()
	comps := make([]Component, 0, len(names))
	for _, name := range names {
		props, err := r.ComponentProperties(name)
		if err != nil {
			continue
		}
		comp := Component{Name: name, Properties: make([]Property, 0, len(props))}
		for _, p := range props {
			sels, _ := r.Selectors(name, p)
			comp.Properties = append(comp.Properties, Property{
				Name:     p.Name,
				Selector: sels.String(),
				InjectAs: p.InjectAs,
				Optional: p.Optional,
				Handler:  p.Kind == registry.Handler,
			})
		}
		comps = append(comps, comp)
	}
	return comps
}
