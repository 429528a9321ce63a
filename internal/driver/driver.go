package driver

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"ssnf/internal/regex"
	"ssnf/internal/syntax"
)

type Format string

const (
	FormatText Format = "text"
	FormatDOT  Format = "dot"
)

// Config selects what the driver does with each pattern.
type Config struct {
	Raw       bool   // print the parse as is, skipping normalization
	KeepGoing bool   // report malformed lines and continue
	Verify    bool   // re-check every rendered pattern with the declarative grammar
	Format    Format // text by default
	MaxDepth  int    // group nesting bound, regex.DefaultMaxDepth when zero
}

// ErrFailedLines is returned by Run in KeepGoing mode when at least one
// line was malformed.
var ErrFailedLines = errors.New("malformed patterns in input")

// Stats counts what a Run saw.
type Stats struct {
	Lines  int
	Failed int
}

type Driver struct {
	cfg    Config
	parser *regex.Parser
	logger *slog.Logger
}

func New(cfg Config, logger *slog.Logger) (*Driver, error) {
	switch cfg.Format {
	case "":
		cfg.Format = FormatText
	case FormatText, FormatDOT:
	default:
		return nil, fmt.Errorf("unsupported format %q, use %q or %q", cfg.Format, FormatText, FormatDOT)
	}
	if cfg.MaxDepth < 0 {
		return nil, fmt.Errorf("max depth cannot be negative, got %d", cfg.MaxDepth)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Driver{
		cfg:    cfg,
		parser: &regex.Parser{MaxDepth: cfg.MaxDepth},
		logger: logger,
	}, nil
}

// Process turns one pattern into its output form.
func (d *Driver) Process(pattern string) (string, error) {
	tree, err := d.parser.Parse(pattern)
	if err != nil {
		return "", err
	}
	debug := d.logger.Enabled(context.Background(), slog.LevelDebug)
	if debug {
		d.logger.Debug("parsed", "pattern", pattern, "raw", regex.Render(tree), "nullable", tree.Nullable())
	}

	if !d.cfg.Raw {
		tree = regex.Normalize(tree)
		if debug {
			d.logger.Debug("normalized", "pattern", pattern, "ssnf", regex.Render(tree))
		}
	}

	text := regex.Render(tree)
	if d.cfg.Verify {
		if err := syntax.Validate(text); err != nil {
			return "", fmt.Errorf("rendered %q does not re-parse: %w", text, err)
		}
	}

	if d.cfg.Format == FormatDOT {
		var buf bytes.Buffer
		if err := regex.ExportDOT(&buf, tree); err != nil {
			return "", err
		}
		return strings.TrimSuffix(buf.String(), "\n"), nil
	}
	return text, nil
}

// Run processes r one line at a time and writes one result per line to w.
// A blank line is an empty pattern and fails like any other malformed line.
func (d *Driver) Run(r io.Reader, w io.Writer) (Stats, error) {
	var st Stats
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		st.Lines++
		line := strings.TrimSuffix(sc.Text(), "\r")

		out, err := d.Process(line)
		if err != nil {
			if !d.cfg.KeepGoing {
				return st, fmt.Errorf("line %d: %w", st.Lines, err)
			}
			st.Failed++
			d.logger.Warn("skipping malformed pattern", "line", st.Lines, "err", err)
			continue
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return st, err
		}
	}
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("read input: %w", err)
	}
	if st.Failed > 0 {
		return st, fmt.Errorf("%d of %d lines: %w", st.Failed, st.Lines, ErrFailedLines)
	}
	return st, nil
}
