package maincmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDefaultsRankToTwo(t *testing.T) {
	c := &Cmd{}
	c.SetArgs([]string{"run", "prog.bf"})
	err := c.Validate()
	assert.NoError(t, err)
	assert.Equal(t, 2, c.Rank)
}

func TestValidateRejectsBadRank(t *testing.T) {
	c := &Cmd{Rank: 3}
	c.SetArgs([]string{"run", "prog.bf"})
	err := c.Validate()
	assert.Error(t, err)
}

func TestValidateRejectsUnknownCommand(t *testing.T) {
	c := &Cmd{}
	c.SetArgs([]string{"frobnicate"})
	err := c.Validate()
	assert.Error(t, err)
}

func TestValidateRequiresExactlyOnePathForRun(t *testing.T) {
	c := &Cmd{}
	c.SetArgs([]string{"run"})
	assert.Error(t, c.Validate())

	c = &Cmd{}
	c.SetArgs([]string{"run", "a.bf", "b.bf"})
	assert.Error(t, c.Validate())
}

func TestValidateAllowsVersionWithNoPath(t *testing.T) {
	c := &Cmd{}
	c.SetArgs([]string{"version"})
	assert.NoError(t, c.Validate())
}

func TestValidateSkipsCommandLookupForHelpAndVersionFlags(t *testing.T) {
	c := &Cmd{Help: true}
	assert.NoError(t, c.Validate())

	c = &Cmd{ShowVersion: true}
	assert.NoError(t, c.Validate())
}

func TestValidateRequiresACommand(t *testing.T) {
	c := &Cmd{}
	c.SetArgs(nil)
	assert.Error(t, c.Validate())
}
