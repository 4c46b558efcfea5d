package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cli := New()
	var out, errOut bytes.Buffer
	cli.SetOutput(&out, &errOut)
	cli.SetArgs(args)

	err := cli.Execute(context.Background())
	return out.String(), errOut.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "cppext version")
}

func TestBuildCommandMissingManifest(t *testing.T) {
	_, _, err := execute(t, "build", "--manifest", "does-not-exist.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifest")
}

func TestTargetsCommandMissingManifest(t *testing.T) {
	_, _, err := execute(t, "targets", "--manifest", "does-not-exist.yaml")

	require.Error(t, err)
}

func TestUnknownCommand(t *testing.T) {
	_, _, err := execute(t, "frobnicate")

	require.Error(t, err)
}
