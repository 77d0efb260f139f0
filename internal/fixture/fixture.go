// Package fixture holds the fixed TSV fixture sets and writes them to disk.
//
// Each [Fixture] is a named, ordered list of rows. Row widths vary on
// purpose: consumers of these files are expected to cope with missing and
// extra columns, so rows are never padded or trimmed.
package fixture

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/calvinalkan/tsv-fixtures/internal/fs"
	"github.com/calvinalkan/tsv-fixtures/internal/tsv"
)

// Fixture names.
const (
	NameNoStd     = "no-std"
	NameTSVReader = "tsv-reader"
)

const (
	filePerms = 0o644
	dirPerms  = 0o755
)

// Errors returned by this package.
var (
	ErrUnknownFixture = errors.New("unknown fixture")
	ErrPathRequired   = errors.New("output path is required")
)

// Fixture is a named set of rows.
type Fixture struct {
	Name        string
	Description string
	Rows        []tsv.Row
}

// Encode returns the exact bytes of the fixture file.
func (f Fixture) Encode() ([]byte, error) {
	data, err := tsv.Encode(f.Rows)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", f.Name, err)
	}

	return data, nil
}

// NoStd returns the irregular-width record set: one two-field record
// followed by variant rows of one to three fields.
func NoStd() Fixture {
	return Fixture{
		Name:        NameNoStd,
		Description: "7 rows of 1-3 fields: a record followed by variant rows",
		Rows: []tsv.Row{
			{"13", "Alice In Windowland"},
			{"Cat"},
			{"Dog"},
			{"Fox", "-9"},
			{"Mouse", "10000", "00000000"},
			{"Mouse", "20000", "05050505"},
			{"Mouse", "30000", "30303030"},
		},
	}
}

// TSVReader returns the header plus shape rows set.
func TSVReader() Fixture {
	return Fixture{
		Name:        NameTSVReader,
		Description: "header (version, title, colour) followed by 6-7 field shape rows",
		Rows: []tsv.Row{
			{"1", "Example Title", "FFFFFF"},
			{"000000", "false", "Line", "0", "0", "500", "500"},
			{"550055", "true", "Circle", "200", "300", "20"},
			{"FF0055", "false", "Rectangle", "100", "100", "200", "200"},
		},
	}
}

// registry maps fixture names to constructors. Constructors return fresh
// slices so callers can't modify another caller's rows.
var registry = map[string]func() Fixture{
	NameNoStd:     NoStd,
	NameTSVReader: TSVReader,
}

// Get returns the fixture registered under name.
func Get(name string) (Fixture, error) {
	newFixture, ok := registry[name]
	if !ok {
		return Fixture{}, fmt.Errorf("%w: %s (available: %s)", ErrUnknownFixture, name, strings.Join(Names(), ", "))
	}

	return newFixture(), nil
}

// Names returns the registered fixture names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// List returns all fixtures sorted by name.
func List() []Fixture {
	names := Names()
	fixtures := make([]Fixture, 0, len(names))

	for _, name := range names {
		fixtures = append(fixtures, registry[name]())
	}

	return fixtures
}

// GenerateOptions controls [Generate].
type GenerateOptions struct {
	// CreateDirs creates missing parent directories of the output path.
	CreateDirs bool
}

// Result describes a completed write.
type Result struct {
	Path  string
	Rows  int
	Bytes int
}

// Generate writes fx to path, creating or replacing the file.
//
// The fixture is fully encoded before the filesystem is touched, and the
// file is written atomically, so path either keeps its previous content or
// holds the complete fixture.
func Generate(fsys fs.FS, fx Fixture, path string, opts GenerateOptions) (Result, error) {
	if path == "" {
		return Result{}, ErrPathRequired
	}

	data, err := fx.Encode()
	if err != nil {
		return Result{}, err
	}

	if opts.CreateDirs {
		if err := fsys.MkdirAll(filepath.Dir(path), dirPerms); err != nil {
			return Result{}, fmt.Errorf("creating directory: %w", err)
		}
	}

	if err := fsys.WriteFileAtomic(path, data, os.FileMode(filePerms)); err != nil {
		return Result{}, fmt.Errorf("writing %s: %w", path, err)
	}

	return Result{Path: path, Rows: len(fx.Rows), Bytes: len(data)}, nil
}
