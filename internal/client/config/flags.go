package config

import (
	"flag"
	"os"
	"time"

	"github.com/mahendrakumawat2208/medium-blog-platform/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   backend API base address
//	-s string   path of the local state database
//	-t int      HTTP timeout in seconds
//
// The argument list is pre-filtered with flagx.FilterArgs so this stage
// does not trip over flags owned by other stages (-c/-config).
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "backend API base address")
	fs.StringVar(&cfg.StatePath, "s", cfg.StatePath, "path of the local state database")
	timeout := fs.Int("t", int(cfg.HTTPTimeout.Seconds()), "HTTP timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.HTTPTimeout = time.Duration(*timeout) * time.Second
}
