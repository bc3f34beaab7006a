package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd", "-s", "https://events.lau.edu", "-t", "30"}, expectPanic: false,
			expected: &Config{ServerURL: "https://events.lau.edu", RequestTimeout: 30 * time.Second}},
		{name: "Test2 paths", args: []string{"cmd", "-d", "/tmp/cl.db", "-k", "/tmp/cl.key"}, expectPanic: false,
			expected: &Config{DatabasePath: "/tmp/cl.db", KeyPath: "/tmp/cl.key"}},
		{name: "Test3 incorrect timeout", args: []string{"cmd", "-s", "https://events.lau.edu", "-t", "abc"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
