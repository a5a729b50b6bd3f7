package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 90*time.Second, c.RequestTimeout)
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadConfig(t *testing.T) {
	file := writeFile(t, `{"server_endpoint_addr":"10.0.0.5:50051","request_timeout":"30s"}`)
	partial := writeFile(t, `{"request_timeout":2000000000}`)

	tests := []struct {
		name    string
		args    []string
		want    *Config
		wantErr bool
	}{
		{name: "defaults", args: nil,
			want: &Config{ServerEndpointAddr: "127.0.0.1:50051", RequestTimeout: 90 * time.Second}},
		{name: "flags", args: []string{"-a", "127.0.0.1:9090", "-t", "10s"},
			want: &Config{ServerEndpointAddr: "127.0.0.1:9090", RequestTimeout: 10 * time.Second}},
		{name: "file", args: []string{"-c", file},
			want: &Config{ServerEndpointAddr: "10.0.0.5:50051", RequestTimeout: 30 * time.Second}},
		{name: "flags override file", args: []string{"-config", file, "-a", "h:1"},
			want: &Config{ServerEndpointAddr: "h:1", RequestTimeout: 30 * time.Second}},
		{name: "partial file keeps defaults", args: []string{"-c", partial},
			want: &Config{ServerEndpointAddr: "127.0.0.1:50051", RequestTimeout: 2 * time.Second}},
		{name: "unknown flags ignored", args: []string{"-x", "1", "-a", "h:2"},
			want: &Config{ServerEndpointAddr: "h:2", RequestTimeout: 90 * time.Second}},
		{name: "bad duration", args: []string{"-t", "abc"}, wantErr: true},
		{name: "missing file", args: []string{"-c", filepath.Join(t.TempDir(), "nope.json")}, wantErr: true},
		{name: "bad json", args: []string{"-c", writeFile(t, `{`)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadConfig(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.want, got))
		})
	}
}
