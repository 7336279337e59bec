package config

import (
	"flag"

	"github.com/dmitrijs2005/gophquiz/internal/flagx"
)

// parseFlags populates Config fields from command-line flags in args.
// See the package documentation for the list.
//
// Only the flags handled here are passed to the flag set (flagx.FilterArgs),
// so -c / -config and anything else are left alone.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-d", "-b", "-r", "-a", "-x", "-s", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataFile, "d", cfg.DataFile, "record collection file")
	fs.StringVar(&cfg.BackupDir, "b", cfg.BackupDir, "backup directory")
	fs.IntVar(&cfg.BackupRetention, "r", cfg.BackupRetention, "number of backups to keep (0 = all)")
	fs.StringVar(&cfg.AttemptsLogFile, "a", cfg.AttemptsLogFile, "login attempt log file")
	fs.StringVar(&cfg.AccessLogFile, "x", cfg.AccessLogFile, "admin access log file")
	fs.StringVar(&cfg.HashAlgorithm, "s", cfg.HashAlgorithm, "password digest algorithm")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
