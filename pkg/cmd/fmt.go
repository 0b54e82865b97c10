package cmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlstyle/pkg/consts"
	"github.com/pseudomuto/sqlstyle/pkg/format"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

const stdinName = "<stdin>"

type formatted struct {
	path     string
	original string
	output   *format.Output
}

// changed reports whether the file content differs from its formatted form.
func (f *formatted) changed() bool {
	return f.original != f.text()
}

// text is the formatted content as written out: non-empty output ends with a
// newline.
func (f *formatted) text() string {
	if f.output.Text == "" {
		return ""
	}

	return f.output.Text + "\n"
}

// fmtCmd creates a CLI command for formatting SQL files, gofmt style.
//
// With no path the command reads standard input to EOF and writes the result to
// standard output. Paths may be files or directories; directories are searched
// recursively for .sql files. Files are formatted in parallel and reported in
// lexicographic order.
//
// Flags:
//   - -w: Write formatted results back to source files instead of stdout
//   - --check: List files whose formatting would change and fail if there are any
//   - --jobs, -j: Number of files formatted concurrently
//
// Diagnostics are written to standard error as path:line:col: message. They
// never stop formatting; the command only fails on I/O errors and inputs that
// exceed the configured limits.
//
// Examples:
//
//	# Format a query from a pipe
//	cat report.sql | sqlstyle fmt
//
//	# Format all SQL files in a directory tree in-place
//	sqlstyle fmt -w queries/
//
//	# Fail in CI when a file is not formatted
//	sqlstyle fmt --check queries/
func fmtCmd(s *Settings) *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format SQL files",
		ArgsUsage: "[path...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "List files whose formatting differs and exit with an error if any do",
			},
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Usage:   "Number of files to format concurrently",
				Value:   runtime.NumCPU(),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			f, err := format.New(s.Config.Style)
			if err != nil {
				return err
			}

			root := cmd.Root()
			if cmd.Args().Len() == 0 {
				if cmd.Bool("write") {
					return errors.New("cannot use -w with standard input")
				}

				return formatStdin(f, root.Reader, root.Writer, root.ErrWriter)
			}

			files, err := collectFiles(cmd.Args().Slice())
			if err != nil {
				return err
			}

			results, err := formatFiles(ctx, f, files, cmd.Int("jobs"))
			if err != nil {
				return err
			}

			return report(results, cmd.Bool("write"), cmd.Bool("check"), root.Writer, root.ErrWriter)
		},
	}
}

func formatStdin(f *format.Formatter, r io.Reader, w, errW io.Writer) error {
	if file, ok := r.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return errors.New("refusing to read SQL from a terminal, pass a path or pipe input")
	}

	out, err := f.FormatReader(r)
	if err != nil {
		return errors.Wrap(err, "failed to format standard input")
	}

	res := &formatted{path: stdinName, output: out}
	printDiagnostics(res, errW)

	if _, err := io.WriteString(w, res.text()); err != nil {
		return errors.Wrap(err, "failed to write formatted content to output")
	}

	return nil
}

// collectFiles expands directories into the .sql files below them and returns
// the sorted, de-duplicated list.
func collectFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to access path: %s", path)
		}

		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		var found int
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
				files = append(files, p)
				found++
			}

			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to walk directory: %s", path)
		}

		if found == 0 {
			return nil, errors.Errorf("no SQL files found in directory: %s", path)
		}
	}

	slices.Sort(files)
	return slices.Compact(files), nil
}

// formatFiles formats every file with at most jobs files in flight. Results
// keep the order of files.
func formatFiles(ctx context.Context, f *format.Formatter, files []string, jobs int) ([]*formatted, error) {
	results := make([]*formatted, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))
	slog.Debug("Formatting files", "count", len(files), "jobs", max(jobs, 1), "dialect", f.Config().Dialect)

	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			content, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, "failed to read file: %s", path)
			}

			out, err := f.Format(string(content))
			if err != nil {
				return errors.Wrapf(err, "failed to format file: %s", path)
			}

			slog.Debug("Formatted file", "path", path, "diagnostics", len(out.Diagnostics))
			results[i] = &formatted{path: path, original: string(content), output: out}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func report(results []*formatted, writeBack, check bool, w, errW io.Writer) error {
	var unformatted int
	for _, res := range results {
		printDiagnostics(res, errW)

		switch {
		case check:
			if res.changed() {
				fmt.Fprintln(w, res.path)
				unformatted++
			}
		case writeBack:
			if !res.changed() {
				continue
			}

			// Write back to the original file
			if err := os.WriteFile(res.path, []byte(res.text()), consts.ModeFile); err != nil {
				return errors.Wrapf(err, "failed to write formatted content to file: %s", res.path)
			}
			slog.Info("Formatted", "path", res.path)
		default:
			if _, err := io.WriteString(w, res.text()); err != nil {
				return errors.Wrap(err, "failed to write formatted content to output")
			}
		}
	}

	if unformatted > 0 {
		return errors.Errorf("%d file(s) are not formatted", unformatted)
	}

	return nil
}

func printDiagnostics(res *formatted, w io.Writer) {
	for _, line := range res.output.Diagnostics.Strings() {
		fmt.Fprintf(w, "%s:%s\n", res.path, line)
	}
}
