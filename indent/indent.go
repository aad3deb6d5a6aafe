// Package indent produces the leading whitespace for a nesting depth.
package indent

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBadConfig    = errors.New("bad indent config")
	ErrInvalidDepth = errors.New("invalid depth")
)

// Config fixes the indentation style. It is captured by an Indenter at
// construction and read-only afterwards.
type Config struct {
	// Unit is the string repeated Width times to form one depth level.
	Unit string
	// Width is the number of Unit repetitions per depth level.
	Width int
}

// Default is one space with width 2, two spaces per depth level.
func Default() Config {
	return Config{Unit: " ", Width: 2}
}

// Indenter maps depths to indentation prefixes for one fixed Config.
type Indenter struct {
	block string
}

func New(cfg Config) (*Indenter, error) {
	if cfg.Unit == "" {
		return nil, fmt.Errorf("%w: empty unit", ErrBadConfig)
	}
	if cfg.Width < 1 {
		return nil, fmt.Errorf("%w: width %d", ErrBadConfig, cfg.Width)
	}
	return &Indenter{block: strings.Repeat(cfg.Unit, cfg.Width)}, nil
}

// At returns the indentation for depth: the empty string at depth 0,
// otherwise the unit block repeated depth times. Negative depths are a
// caller error.
func (x *Indenter) At(depth int) (string, error) {
	if depth < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}
	return strings.Repeat(x.block, depth), nil
}
