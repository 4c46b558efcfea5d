package cppext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagSetContains(t *testing.T) {
	set := NewFlagSet("-O2", "-Wall")

	assert.True(t, set.Contains("-O2"))
	assert.False(t, set.Contains("-Wextra"))
}

func TestFlagSetRemove(t *testing.T) {
	set := NewFlagSet("-O2", "-Wstrict-prototypes", "-Wall")

	assert.True(t, set.Remove("-Wstrict-prototypes"))
	assert.Equal(t, []string{"-O2", "-Wall"}, set.Slice())

	assert.False(t, set.Remove("-Wstrict-prototypes"), "removing an absent flag is a no-op")
	assert.Equal(t, []string{"-O2", "-Wall"}, set.Slice())
}

func TestFlagSetRemoveFirstOccurrence(t *testing.T) {
	set := NewFlagSet("-g", "-O2", "-g")

	assert.True(t, set.Remove("-g"))
	assert.Equal(t, []string{"-O2", "-g"}, set.Slice())
}

func TestFlagSetSliceIsCopy(t *testing.T) {
	set := NewFlagSet("-O2")

	flags := set.Slice()
	flags[0] = "-O0"

	assert.Equal(t, []string{"-O2"}, set.Slice())
}

func TestFlagSetAppend(t *testing.T) {
	set := NewFlagSet()
	set.Append("-O2", "-Wall")

	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"-O2", "-Wall"}, set.Slice())
}
