package config

import (
	"io"

	"gopkg.in/yaml.v2"
)

// Defaults mirror one deployment's naming convention. They carry no
// semantics of their own; override them per cluster.
const (
	DefaultLabelSelector = "jcx.inst.component=webapp"
	DefaultContainer     = "webapp"
	DefaultMainClass     = "Bootstrap"
	DefaultOutputDir     = "."
)

type Config struct {
	Namespace     string `yaml:"namespace"`
	LabelSelector string `yaml:"label"`
	Pod           string `yaml:"pod"`
	Container     string `yaml:"container"`
	MainClass     string `yaml:"main"`
	OutputDir     string `yaml:"outputDir"`
}

func (c *Config) Load(file io.Reader) error {
	stream, err := io.ReadAll(file)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(stream, c)
}
