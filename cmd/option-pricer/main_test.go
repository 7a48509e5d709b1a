package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(args ...string) (string, error) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPriceCommandJSON(t *testing.T) {
	out, err := runCommand("price",
		"--spot", "100", "--strike", "100", "--rate", "0.05",
		"--volatility", "0.2", "--maturity", "1",
		"--trials", "20000", "--workers", "2", "--seed", "42")
	require.NoError(t, err)

	var decoded struct {
		OptionPrice float64 `json:"optionPrice"`
		Confidence  struct {
			Lower float64 `json:"lower"`
			Upper float64 `json:"upper"`
		} `json:"confidence"`
		WorkersUsed int `json:"workersUsed"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Greater(t, decoded.OptionPrice, 0.0)
	assert.Equal(t, 2, decoded.WorkersUsed)
}

func TestPriceCommandValidationEnvelope(t *testing.T) {
	out, err := runCommand("price", "--spot", "0", "--trials", "1000")
	require.Error(t, err)

	var envelope map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.Contains(t, envelope["error"], "spot")
}

func TestPriceCommandUnknownFormat(t *testing.T) {
	_, err := runCommand("price", "--format", "xml")
	assert.Error(t, err)
}

func TestBenchmarkCommand(t *testing.T) {
	out, err := runCommand("benchmark",
		"--trials", "5000", "--workers", "2", "--seed", "42",
		"--iterations", "3", "--format", "console")
	require.NoError(t, err)
	assert.Contains(t, out, "runs: 3")
}
