package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/fswatch/internal/ui/output"
)

func TestColorProfile(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile(), "NO_COLOR should force Ascii profile")
}

func TestNew_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	out := output.New(buf)
	_, err := out.WriteString(out.String("plain").Foreground(termenv.ANSIRed).String())

	assert.NoError(t, err)
	assert.Equal(t, "plain", buf.String())
}

func TestNewWithProfile(t *testing.T) {
	buf := &bytes.Buffer{}
	out := output.NewWithProfile(buf, func() termenv.Profile { return termenv.ANSI })

	styled := out.String("red").Foreground(termenv.ANSIRed).String()
	assert.NotEqual(t, "red", styled)
	assert.Contains(t, styled, "red")
}

func TestNew_NilWriter(t *testing.T) {
	assert.NotNil(t, output.New(nil))
}
