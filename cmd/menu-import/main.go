// menu-import loads dinner menu names from a CSV file into the note_menu table
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/astrolabe/pkg/repository"
)

// Opts with all CLI options
type Opts struct {
	DB     string `long:"db" env:"ASTROLABE_DB" default:"file:astrolabe.db?cache=shared&mode=rwc" description:"database DSN"`
	File   string `short:"f" long:"file" required:"true" description:"CSV file with menu names"`
	Column int    `long:"column" default:"0" description:"zero based column holding the name"`
	Header bool   `long:"header" description:"skip the first row"`
	Debug  bool   `long:"dbg" env:"DEBUG" description:"debug mode"`
}

func main() {
	var opts Opts
	if _, err := flags.Parse(&opts); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Debug {
		lgr.Setup(lgr.Debug, lgr.Msec)
	}

	if err := run(context.Background(), opts); err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts Opts) error {
	fh, err := os.Open(opts.File)
	if err != nil {
		return fmt.Errorf("open %s: %w", opts.File, err)
	}
	defer fh.Close()

	names, err := readNames(fh, opts.Column, opts.Header)
	if err != nil {
		return fmt.Errorf("read %s: %w", opts.File, err)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{DSN: opts.DB})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer repos.Close()

	res, err := repos.Menu.Import(ctx, names)
	if err != nil {
		return fmt.Errorf("import menu: %w", err)
	}
	lgr.Printf("[INFO] menu import done, added %d, duplicates %d, skipped %d", res.Added, res.Duplicates, res.Skipped)
	return nil
}

// readNames returns the values of the given column, rows shorter than the column are skipped
func readNames(r io.Reader, column int, header bool) ([]string, error) {
	if column < 0 {
		return nil, errors.New("column must be non-negative")
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var names []string
	for row := 0; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if row == 0 && header {
			continue
		}
		if column >= len(rec) {
			continue
		}
		names = append(names, strings.TrimPrefix(rec[column], "\ufeff"))
	}
	return names, nil
}
