// Package cmd provides the sqlstyle command line interface.
//
// # Available Commands
//
//   - fmt: Format SQL from standard input, files or directories
//   - serve: Run the HTTP formatting service
//   - dialects: List the keyword dialects
//
// # Command Structure
//
// Each command is implemented as a function returning a *cli.Command,
// following the urfave/cli/v3 pattern, and is registered through the fx
// "commands" group in Module. The root command resolves the style before any
// subcommand runs: sqlstyle.yaml (or the file named by --config) is read over
// the defaults, then --dialect and --case are applied on top.
//
// # Example Usage
//
//	sqlstyle fmt < query.sql                 # Format standard input
//	sqlstyle fmt -w db/                      # Rewrite every .sql file below db/
//	sqlstyle fmt --check db/                 # Fail if any file is not formatted
//	sqlstyle -c team.yaml fmt query.sql      # Use another style file
//	sqlstyle serve --cors-origin https://app # Serve POST /api/format-sql
//	sqlstyle dialects                        # List dialects
package cmd
