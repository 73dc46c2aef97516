package cli

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/workmon/internal/config"
	"github.com/rileyhilliard/workmon/internal/errors"
)

func configCommand(out io.Writer) error {
	cfg, err := loadConfig(false)
	if err != nil {
		return err
	}
	return writeConfig(out, cfg)
}

// writeConfig prints cfg as YAML with the password masked.
func writeConfig(out io.Writer, cfg *config.Config) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(cfg.Redacted()); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Can't print the configuration", "")
	}
	return enc.Close()
}
