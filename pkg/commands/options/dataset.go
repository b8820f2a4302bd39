// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/downloads/pkg/config"
	"tableflip.dev/downloads/pkg/dataset"
)

// DatasetOptions selects the config file and the data to show.
type DatasetOptions struct {
	ConfigPath string
	Dataset    string

	path string
}

// AddDatasetArgs registers the flags on every subcommand of cmd.
func AddDatasetArgs(cmd *cobra.Command, o *DatasetOptions) {
	cmd.PersistentFlags().StringVar(&o.ConfigPath, "config", "",
		"Config file (default searches ./.downloads.yaml and $HOME/.downloads.yaml).")
	cmd.PersistentFlags().StringVarP(&o.Dataset, "dataset", "d", "",
		"YAML dataset to show. The built-in sample is used when unset.")
}

// Load reads the configuration and the dataset it points at. The --dataset
// flag wins over the configured path.
func (o *DatasetOptions) Load() (config.Config, *dataset.Dataset, error) {
	cfg, err := config.Load(config.New(), o.ConfigPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	path := cfg.Dataset
	if o.Dataset != "" {
		path = o.Dataset
	}
	o.path = path
	if path == "" {
		return cfg, dataset.Sample(), nil
	}
	ds, err := dataset.Load(path)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, ds, nil
}

// Path is the dataset file the last Load read, or "" for the sample.
func (o *DatasetOptions) Path() string { return o.path }
