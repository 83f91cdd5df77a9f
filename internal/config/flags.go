package config

import (
	"flag"
	"os"

	"github.com/greenwood-edu/attendance/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the local database file (default from Config)
//	-e string   mail endpoint URL (default from Config)
//	-s string   mail service id (default from Config)
//	-k string   mail public key (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-e", "-s", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	fs.StringVar(&cfg.MailEndpoint, "e", cfg.MailEndpoint, "mail endpoint URL")
	fs.StringVar(&cfg.MailServiceID, "s", cfg.MailServiceID, "mail service id")
	fs.StringVar(&cfg.MailPublicKey, "k", cfg.MailPublicKey, "mail public key")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
