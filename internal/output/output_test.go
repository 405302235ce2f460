package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	origOut, origErr := stdout, stderr
	stdout, stderr = out, errOut
	t.Cleanup(func() { stdout, stderr = origOut, origErr })
	return out, errOut
}

func TestErrorsGoToStderr(t *testing.T) {
	out, errOut := capture(t)

	Error("boom")
	Warn("wobbly")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "boom")
	assert.Contains(t, errOut.String(), "wobbly")
}

func TestStatusGoesToStdout(t *testing.T) {
	out, errOut := capture(t)

	Success("created")
	Info("next steps")
	Step("cd demo")

	assert.Empty(t, errOut.String())
	assert.Contains(t, out.String(), "created")
	assert.Contains(t, out.String(), "cd demo")
}

func TestVerboseIsGatedByMode(t *testing.T) {
	out, _ := capture(t)

	SetVerbose(false)
	Verbose("hidden")
	assert.Empty(t, out.String())

	SetVerbose(true)
	t.Cleanup(func() { SetVerbose(false) })
	Verbose("shown")
	assert.Contains(t, out.String(), "shown")
}
