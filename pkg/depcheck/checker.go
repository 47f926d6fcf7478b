// Package depcheck checks whether a list of dependencies resolves in the
// current environment.
package depcheck

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
)

// ErrMalformedName is returned when the dependency list contains a name
// that can never be a valid dependency.
var ErrMalformedName = errors.New("malformed dependency name")

// Checker resolves each dependency name in order and builds a Report.
type Checker struct {
	Resolver Resolver          // required
	Aliases  map[string]string // name to try when a name does not resolve
	Logger   zerolog.Logger    // diagnostics; zero value is a no-op
}

// Check resolves every name once, in order. Resolution failures become
// missing results; only a malformed list or a missing resolver is an error.
func (c *Checker) Check(names []string) (Report, error) {
	if c.Resolver == nil {
		return Report{}, errors.New("depcheck: no resolver configured")
	}
	if err := ValidateNames(names); err != nil {
		return Report{}, err
	}

	report := Report{Results: make([]Result, 0, len(names))}
	for _, name := range names {
		report.Results = append(report.Results, c.resolve(name))
	}

	c.Logger.Info().
		Int("checked", len(report.Results)).
		Int("missing", report.MissingCount()).
		Msg("dependency check complete")
	return report, nil
}

func (c *Checker) resolve(name string) Result {
	result := Result{Name: name}

	err := c.Resolver.Resolve(name)
	if err == nil {
		c.Logger.Debug().Str("dependency", name).Msg("present")
		return result.Hit("")
	}

	if alias, ok := c.Aliases[name]; ok && alias != "" && alias != name {
		aliasErr := c.Resolver.Resolve(alias)
		if aliasErr == nil {
			c.Logger.Debug().Str("dependency", name).Str("resolved_as", alias).Msg("present")
			return result.Hit(alias)
		}
		err = fmt.Errorf("%w; alias %s: %w", err, alias, aliasErr)
	}

	c.Logger.Debug().Str("dependency", name).Err(err).Msg("missing")
	return result.Miss(err)
}

// ValidateNames rejects empty names and names containing whitespace or
// control characters.
func ValidateNames(names []string) error {
	for i, name := range names {
		if name == "" {
			return fmt.Errorf("%w: entry %d is empty", ErrMalformedName, i)
		}
		if strings.IndexFunc(name, func(r rune) bool {
			return unicode.IsSpace(r) || unicode.IsControl(r)
		}) >= 0 {
			return fmt.Errorf("%w: entry %d %q contains whitespace or control characters", ErrMalformedName, i, name)
		}
	}
	return nil
}
