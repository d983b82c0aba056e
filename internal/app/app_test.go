package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name      string
		mutate    func(c *Config)
		expectErr string
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "json format", mutate: func(c *Config) { c.LogFormat = "json" }},
		{name: "debug level", mutate: func(c *Config) { c.LogLevel = "debug" }},
		{name: "bad format", mutate: func(c *Config) { c.LogFormat = "xml" }, expectErr: "invalid log-format"},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, expectErr: "invalid log-level"},
		{
			name:      "list with receipt",
			mutate:    func(c *Config) { c.ListMenu, c.Receipt = true, true },
			expectErr: "cannot be combined",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)

			got, err := NewConfig(cfg)
			if tc.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, cfg, *got)
		})
	}
}

func TestRun_BuiltInMenu(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	cfg := DefaultConfig()
	testApp, out, logs := SetupAppTest(t, &cfg, "Taco\nBurrito\n")

	// --- Act ---
	err := testApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "Items: Total: $3.00\nItems: Total: $10.50\nItems: \n\n", out.String())
	assert.Contains(t, logs.String(), "Order complete.")
	assert.Contains(t, logs.String(), "menu=built-in", "order loop logs should carry the menu source")
	assert.NotContains(t, out.String(), "Order complete.", "logs must not reach the order output")
}

func TestRun_MenuFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	src := `
item "Horchata" {
  price = "2.25"
}
`
	path := filepath.Join(t.TempDir(), "drinks.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0600))

	cfg := DefaultConfig()
	cfg.MenuPath = path
	cfg.Prompt = "> "
	testApp, out, logs := SetupAppTest(t, &cfg, "horchata\ntaco\nHORCHATA\n")

	// --- Act ---
	err := testApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	// "taco" is not on the file's menu, so the built-in menu was replaced.
	assert.Equal(t, "> Total: $2.25\n> > Total: $4.50\n> \n\n", out.String())
	assert.Contains(t, logs.String(), "menu="+path)
}

func TestRun_ListMenu(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.ListMenu = true
	testApp, out, _ := SetupAppTest(t, &cfg, "taco\n")

	err := testApp.Run(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Super Quesadilla  $9.50\n")
	assert.NotContains(t, out.String(), "Total:")
}

func TestNewApp_MissingMenuFile(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.MenuPath = filepath.Join(t.TempDir(), "missing.hcl")

	_, err := NewApp(Streams{Out: &SafeBuffer{}, Err: &SafeBuffer{}}, &cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load menu")
}
