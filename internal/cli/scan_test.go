package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/goldbach/internal/scan"
)

func TestScan_TextReport(t *testing.T) {
	out, err := execute(t, "scan", "--start", "100", "--width", "20", "--every", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "Scanned 2N from 100 to 120 (30 primes sieved)")
	assert.Contains(t, out, "2N")
	assert.Contains(t, out, "orbit")
	assert.Contains(t, out, "div-by-6")
	assert.Contains(t, out, "Statistics by orbit:")
	assert.Contains(t, out, "Overall mean ratio:")
}

func TestScan_JSON(t *testing.T) {
	out, err := execute(t, "scan", "--start", "100", "--width", "20", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string       `json:"status"`
		Data   *scan.Result `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	assert.Equal(t, "ok", resp.Status)
	require.NotNil(t, resp.Data)
	require.Len(t, resp.Data.Samples, 11)
	assert.Equal(t, int64(100), resp.Data.Samples[0].TwoN)
	assert.Equal(t, int64(12), resp.Data.Samples[0].Count)
}

func TestScan_RejectsOddStart(t *testing.T) {
	_, err := execute(t, "scan", "--start", "101", "--width", "10")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestScan_RejectsBadStride(t *testing.T) {
	_, err := execute(t, "scan", "--start", "100", "--width", "10", "--every", "0")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
