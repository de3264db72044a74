package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResolutionID(t *testing.T) {
	id, err := parseResolutionID("12")
	require.NoError(t, err)
	assert.Equal(t, uint64(12), id)

	for _, bad := range []string{"0", "-1", "abc", ""} {
		_, err := parseResolutionID(bad)
		assert.Error(t, err, bad)
	}
}

func TestNetworkList(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"network", "list"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "hardhat")
	assert.Contains(t, out.String(), "31337")
	assert.Contains(t, out.String(), "sepolia")
	assert.Contains(t, out.String(), "(demo)")
}

func TestDebugEnabled(t *testing.T) {
	t.Setenv("DEBUG", "on")
	assert.True(t, debugEnabled())
	t.Setenv("DEBUG", "")
	assert.False(t, debugEnabled())
}
