package apilog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresFilename(t *testing.T) {
	_, err := New(Options{})
	require.Error(t, err)
}

func TestExchange_WritesJSONEvent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")
	tl, err := New(Options{Filename: path})
	require.NoError(t, err)

	tl.Exchange("GET", "servers/xs1", 200, 123, 15*time.Millisecond)
	require.NoError(t, tl.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"exchange"`)
	assert.Contains(t, string(data), `"servers/xs1"`)
	assert.Contains(t, string(data), `"status":200`)
}

func TestTransportError_RedactsCredentials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")
	tl, err := New(Options{Filename: path})
	require.NoError(t, err)

	tl.TransportError("GET", "servers", errors.New(`dial failed: token=abc123secret rejected`))
	require.NoError(t, tl.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "abc123secret")
	assert.Contains(t, string(data), "[REDACTED]")
}

func TestNilTraceLoggerIsNoOp(t *testing.T) {
	var tl *TraceLogger
	tl.Exchange("GET", "servers", 200, 0, 0)
	tl.TransportError("GET", "servers", errors.New("boom"))
	assert.NoError(t, tl.Close())
}

func TestRedact(t *testing.T) {
	cases := []struct {
		in   string
		safe bool
	}{
		{"Authorization: Bearer abc", false},
		{"api_key=xyz", false},
		{"servers/xs1/files/data/server.properties", true},
	}
	for _, tc := range cases {
		out := redact(tc.in)
		if tc.safe {
			assert.Equal(t, tc.in, out)
		} else {
			assert.Contains(t, out, "[REDACTED]")
		}
	}
}
