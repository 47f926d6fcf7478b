package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultLevelHidesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Writer: &buf, NoColor: true})

	log.Debug().Msg("resolving")
	log.Info().Msg("summary")
	assert.Empty(t, buf.String())

	log.Warn().Msg("careful")
	assert.Contains(t, buf.String(), "careful")
}

func TestNewVerbose(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Writer: &buf, Verbose: true, NoColor: true})

	log.Debug().Str("dependency", "math").Msg("present")

	out := buf.String()
	assert.Contains(t, out, "present")
	assert.Contains(t, out, "dependency=math")
}
