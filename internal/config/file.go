package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/gophquiz/internal/flagx"
	"gopkg.in/yaml.v3"
)

// fileConfig is a DTO used exclusively for decoding config files. Pointer
// fields tell an absent key apart from a zero value.
type fileConfig struct {
	DataFile        *string `json:"data_file" yaml:"data_file"`
	BackupDir       *string `json:"backup_dir" yaml:"backup_dir"`
	BackupRetention *int    `json:"backup_retention" yaml:"backup_retention"`
	AttemptsLogFile *string `json:"attempts_log_file" yaml:"attempts_log_file"`
	AccessLogFile   *string `json:"access_log_file" yaml:"access_log_file"`
	HashAlgorithm   *string `json:"hash_algorithm" yaml:"hash_algorithm"`
	LogLevel        *string `json:"log_level" yaml:"log_level"`
}

func decodeFile(path string, data []byte, fc *fileConfig) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, fc)
	default:
		return json.Unmarshal(data, fc)
	}
}

// parseFile overlays cfg with values from the file named by -c / -config in
// args. Without the flag nothing happens. Read and decode errors panic; the
// caller runs this once at startup.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc fileConfig
	if err := decodeFile(path, data, &fc); err != nil {
		panic(err)
	}

	setString(&cfg.DataFile, fc.DataFile)
	setString(&cfg.BackupDir, fc.BackupDir)
	setString(&cfg.AttemptsLogFile, fc.AttemptsLogFile)
	setString(&cfg.AccessLogFile, fc.AccessLogFile)
	setString(&cfg.HashAlgorithm, fc.HashAlgorithm)
	setString(&cfg.LogLevel, fc.LogLevel)
	if fc.BackupRetention != nil {
		cfg.BackupRetention = *fc.BackupRetention
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
