// filehttpd is a deliberately vulnerable file server used to demonstrate
// path traversal and arbitrary file overwrite. It serves GET and PUT on
// port 8080 from the current working directory, one connection at a time,
// and appends every request to serverLog.log.
//
// Do not expose it to a network you care about.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/xaitan80/filehttpd/internal/server"
)

const version = "1.0.0"

// newRootCmd builds the command that binds cfg.Port and serves until the
// listener fails.
func newRootCmd(log zerolog.Logger, cfg server.Config) *cobra.Command {
	cfg.Logger = &log
	return &cobra.Command{
		Use:   "filehttpd",
		Short: "Single-connection GET/PUT file server with no path checks",
		Long: `filehttpd serves files from the working directory over a minimal
HTTP/1.0 dialect. GET returns a file, PUT overwrites one. Request paths are
used as given, so "../" reaches outside the working directory.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := server.Listen(cfg)
			if err != nil {
				return err
			}
			defer srv.Close()
			log.Info().Int("port", cfg.Port).Str("audit_log", cfg.AuditLogPath).Msg("server started")

			return srv.Run()
		},
	}
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	if err := newRootCmd(log, server.DefaultConfig()).Execute(); err != nil {
		log.Fatal().Err(err).Msg("filehttpd")
	}
}
