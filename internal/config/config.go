// Package config loads sure.cue, the optional project configuration file.
//
// The file is plain CUE validated against the embedded #Config schema:
//
//	format:  "json"
//	verbose: true
//	timeout: "30s"
//	record:  ".sure/ledger.db"
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// FileName is the configuration file looked up when no path is given.
const FileName = "sure.cue"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

//go:embed schema.cue
var schemaCUE string

// Config holds the settings a scan can take from file.
type Config struct {
	Format  string
	Verbose bool
	Timeout time.Duration
	Record  string
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{Format: FormatText}
}

// Error reports an invalid configuration file.
type Error struct {
	Message string
	Pos     token.Pos
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Message)
	}
	return e.Message
}

// IsConfigError reports whether err is, or wraps, an *Error.
func IsConfigError(err error) bool {
	var ce *Error
	return errors.As(err, &ce)
}

// Load reads the configuration at path. When path is empty FileName is
// tried in the working directory and a missing file yields Default.
func Load(path string) (Config, error) {
	optional := path == ""
	if optional {
		path = FileName
	}

	src, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, &Error{Message: fmt.Sprintf("read config: %v", err)}
	}
	return Parse(path, src)
}

// Parse validates src against the schema and decodes it. filename is used
// in error positions only.
func Parse(filename string, src []byte) (Config, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue")).LookupPath(cue.ParsePath("#Config"))
	if err := schema.Err(); err != nil {
		return Config{}, fmt.Errorf("config schema: %w", err)
	}

	v := ctx.CompileBytes(src, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return Config{}, formatCUEError(err)
	}

	u := schema.Unify(v)
	if err := u.Validate(cue.Concrete(true)); err != nil {
		return Config{}, formatCUEError(err)
	}

	var raw struct {
		Format  string `json:"format"`
		Verbose bool   `json:"verbose"`
		Timeout string `json:"timeout"`
		Record  string `json:"record"`
	}
	if err := u.Decode(&raw); err != nil {
		return Config{}, formatCUEError(err)
	}

	cfg := Default()
	if raw.Format != "" {
		cfg.Format = raw.Format
	}
	cfg.Verbose = raw.Verbose
	cfg.Record = raw.Record
	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return Config{}, &Error{Message: fmt.Sprintf("timeout: %v", err), Pos: u.LookupPath(cue.ParsePath("timeout")).Pos()}
		}
		cfg.Timeout = d
	}
	return cfg, nil
}

// formatCUEError keeps the first CUE error with its position.
func formatCUEError(err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &Error{Message: err.Error()}
	}

	first := errs[0]
	ce := &Error{Message: first.Error()}
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		ce.Pos = positions[0]
	}
	return ce
}
