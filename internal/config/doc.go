// Package config loads runtime configuration for the gophquiz CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file (see parseFile) selected via -c or -config.
//     Files ending in .yaml or .yml are read as YAML, anything else as JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   record collection file (default "usuarios.json")
//	-b string   backup directory (default: directory of the record file)
//	-r int      backups to keep, 0 = keep all
//	-a string   login attempt log (default "log_tentativas.txt")
//	-x string   admin access log (default "log_acessos.txt")
//	-s string   password digest: sha256, sha3-256, blake2b-256
//	-l string   log level: debug, info, warn, error
//
// # File schema
//
//	{
//	  "data_file": "usuarios.json",
//	  "backup_dir": "backups",
//	  "backup_retention": 10,
//	  "attempts_log_file": "log_tentativas.txt",
//	  "access_log_file": "log_acessos.txt",
//	  "hash_algorithm": "sha256",
//	  "log_level": "info"
//	}
//
// The YAML form uses the same keys. Keys that are absent leave the previous
// value untouched.
package config
