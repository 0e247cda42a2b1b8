package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSteps(t *testing.T) {
	steps, err := parseSteps(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, steps)

	steps, err = parseSteps([]string{" 3 "})
	require.NoError(t, err)
	assert.Equal(t, 3, steps)

	_, err = parseSteps([]string{"0"})
	assert.Error(t, err)
	_, err = parseSteps([]string{"x"})
	assert.Error(t, err)
}

func TestParseVersionAndTarget(t *testing.T) {
	v, err := parseVersion("1783900803")
	require.NoError(t, err)
	assert.Equal(t, 1783900803, v)

	_, err = parseVersion("-1")
	assert.Error(t, err)

	target, err := parseTarget("7")
	require.NoError(t, err)
	assert.Equal(t, uint(7), target)
}

func TestNormalizeDBURL(t *testing.T) {
	got := normalizeDBURL("postgres://u:p@localhost:5432/football_league?sslmode=disable", true)
	assert.Contains(t, got, "disable_prepared_binary_result=yes")

	in := "postgres://u:p@localhost:5432/football_league?sslmode=disable"
	assert.Equal(t, in, normalizeDBURL(in, false))
}
