// SPDX-License-Identifier: MPL-2.0

package lssim

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

const (
	// SortByName orders entries by name, ascending.
	SortByName SortKey = iota
	// SortBySize orders entries by size, largest first.
	SortBySize
	// SortByTime orders entries by modification time, newest first.
	SortByTime
	// SortNone keeps enumeration order.
	SortNone
)

// Recognized short options.
const (
	OptAll       Option = "a"
	OptAlmostAll Option = "A"
	OptDirectory Option = "d"
	OptClassify  Option = "F"
	OptLong      Option = "l"
	OptReverse   Option = "r"
	OptSize      Option = "S"
	OptTime      Option = "t"
)

// ErrInvalidOption is the sentinel wrapped by InvalidOptionError.
var ErrInvalidOption = errors.New("invalid option")

type (
	// SortKey selects the primary ordering of a listing.
	SortKey int

	// Option is one recognized short option letter.
	Option string

	// InvalidOptionError reports the first option token that is not recognized.
	// It wraps ErrInvalidOption for errors.Is() compatibility.
	InvalidOptionError struct {
		Option string
	}

	// Config is the parsed invocation. It is built once by ParseOptions and
	// passed explicitly to every later stage.
	Config struct {
		SortKey        SortKey
		ShowHidden     bool
		ShowDotEntries bool
		// NamesOnly lists the targets themselves (-d).
		NamesOnly  bool
		Classify   bool
		LongFormat bool
		Reverse    bool
		// Targets is never empty after parsing and is sorted lexicographically.
		Targets []string
	}
)

// Error implements the error interface.
func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid option %q", e.Option)
}

// Unwrap returns ErrInvalidOption for errors.Is() compatibility.
func (e *InvalidOptionError) Unwrap() error { return ErrInvalidOption }

// String returns the lowercase name of the sort key.
func (k SortKey) String() string {
	switch k {
	case SortByName:
		return "name"
	case SortBySize:
		return "size"
	case SortByTime:
		return "time"
	case SortNone:
		return "none"
	default:
		return fmt.Sprintf("SortKey(%d)", int(k))
	}
}

// lookupOption returns the Option spelled by s.
func lookupOption(s string) (Option, bool) {
	switch o := Option(s); o {
	case OptAll, OptAlmostAll, OptDirectory, OptClassify, OptLong, OptReverse, OptSize, OptTime:
		return o, true
	default:
		return "", false
	}
}

func (o Option) apply(c *Config, sortSet *bool) {
	switch o {
	case OptAll:
		c.ShowHidden = true
		c.ShowDotEntries = true
	case OptAlmostAll:
		c.ShowHidden = true
	case OptDirectory:
		c.NamesOnly = true
	case OptClassify:
		c.Classify = true
	case OptLong:
		c.LongFormat = true
	case OptReverse:
		c.Reverse = true
	case OptSize:
		c.SortKey = SortBySize
		*sortSet = true
	case OptTime:
		c.SortKey = SortByTime
		*sortSet = true
	}
}

// ParseOptions builds a Config from the argument vector.
//
// A token starting with "--" is looked up whole; any other token starting with
// "-" is split into one option per character. The first unknown option stops
// parsing and is returned as *InvalidOptionError. Without an explicit -S or -t
// the key is name, or none under -d.
func ParseOptions(args []string) (*Config, error) {
	cfg := &Config{}
	sortSet := false

	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			cfg.Targets = append(cfg.Targets, arg)
			continue
		}

		var names []string
		if strings.HasPrefix(arg, "--") {
			names = []string{arg}
		} else {
			for _, r := range arg[1:] {
				names = append(names, string(r))
			}
		}

		for _, name := range names {
			opt, ok := lookupOption(name)
			if !ok {
				return nil, &InvalidOptionError{Option: name}
			}
			opt.apply(cfg, &sortSet)
		}
	}

	if !sortSet {
		cfg.SortKey = SortByName
		if cfg.NamesOnly {
			cfg.SortKey = SortNone
		}
	}

	if len(cfg.Targets) == 0 {
		cfg.Targets = []string{"."}
	}
	slices.Sort(cfg.Targets)

	return cfg, nil
}
