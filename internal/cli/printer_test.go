package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestANSIPrinter_Severities(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := &ANSIPrinter{W: &buf, ShowVerbose: true}

	p.Info("plain")
	p.Success("won")
	p.Warning("careful")
	p.Error("broken")
	p.Verbose("detail")

	out := buf.String()

	assert.Contains(t, out, "plain\n")
	assert.Contains(t, out, ansiGreen+"won"+ansiReset)
	assert.Contains(t, out, ansiYellow+"careful"+ansiReset)
	assert.Contains(t, out, ansiRed+"broken"+ansiReset)
	assert.Contains(t, out, ansiGray+"detail"+ansiReset)
}

func TestANSIPrinter_VerboseSuppressed(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := &ANSIPrinter{W: &buf}

	p.Verbose("hidden")

	assert.Empty(t, buf.String())
}
