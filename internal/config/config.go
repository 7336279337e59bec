package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophquiz/internal/cryptox"
	"github.com/dmitrijs2005/gophquiz/internal/logging"
)

// Config holds runtime settings for the gophquiz CLI.
//
// Fields:
//   - DataFile: path of the record collection (JSON).
//   - BackupDir: where per-save snapshots go; empty means next to DataFile.
//   - BackupRetention: newest snapshots to keep; 0 keeps every snapshot.
//   - AttemptsLogFile: append-only login attempt log.
//   - AccessLogFile: append-only admin access log.
//   - HashAlgorithm: password digest, see cryptox.ParseAlgorithm.
//   - LogLevel: diagnostic log level (debug, info, warn, error).
type Config struct {
	DataFile        string
	BackupDir       string
	BackupRetention int
	AttemptsLogFile string
	AccessLogFile   string
	HashAlgorithm   string
	LogLevel        string
}

// LoadDefaults populates c with the file names the course tool has always used.
func (c *Config) LoadDefaults() {
	c.DataFile = "usuarios.json"
	c.BackupDir = ""
	c.BackupRetention = 0
	c.AttemptsLogFile = "log_tentativas.txt"
	c.AccessLogFile = "log_acessos.txt"
	c.HashAlgorithm = string(cryptox.SHA256)
	c.LogLevel = "info"
}

// Validate checks values that cannot be verified by the flag parser.
func (c *Config) Validate() error {
	var errs []error
	if c.DataFile == "" {
		errs = append(errs, errors.New("data file must not be empty"))
	}
	if c.BackupRetention < 0 {
		errs = append(errs, fmt.Errorf("backup retention must be >= 0, got %d", c.BackupRetention))
	}
	if _, err := cryptox.ParseAlgorithm(c.HashAlgorithm); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if given) and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}
