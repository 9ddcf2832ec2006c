package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStraightCourseJSON(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"run", "straight", "--json", "--log-level", "error", "--duration", "30"})
	require.NoError(t, rootCmd.Execute())

	var res struct {
		Course  string  `json:"course"`
		Outcome string  `json:"outcome"`
		Coins   int     `json:"coins"`
		Over    bool    `json:"over"`
		Dist    float64 `json:"distance"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, "straight", res.Course)
	assert.Equal(t, "finished", res.Outcome)
	assert.Equal(t, 3, res.Coins)
	assert.False(t, res.Over)
}
