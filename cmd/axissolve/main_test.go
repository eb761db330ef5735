package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgsAccepts(t *testing.T) {
	f, k, maxEvents, err := parseArgs([]string{"3", "2", "4"})
	require.NoError(t, err)
	assert.Equal(t, 3, f)
	assert.Equal(t, 2, k)
	assert.Equal(t, 4, maxEvents)
}

func TestParseArgsRejectsOddMaxEvents(t *testing.T) {
	_, _, _, err := parseArgs([]string{"3", "2", "5"})
	require.Error(t, err)
}

func TestParseArgsRejectsNonPositive(t *testing.T) {
	_, _, _, err := parseArgs([]string{"0", "2", "4"})
	require.Error(t, err)
}

func TestParseArgsRejectsGarbage(t *testing.T) {
	_, _, _, err := parseArgs([]string{"three", "2", "4"})
	require.Error(t, err)
}
