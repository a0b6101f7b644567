package casestudy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())

	cs, ok := c.Get("coffee-chain-profitability")
	require.True(t, ok)
	assert.Equal(t, "Coffee Chain Profitability Decline", cs.Title)
	assert.NotEmpty(t, cs.Prompt)
	assert.Len(t, cs.KeyQuestions, 3)
	assert.Equal(t, "flat", cs.Data["rent"])

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestListIsSortedByID(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	list := c.List()
	require.Len(t, list, 4)
	assert.Equal(t, "coffee-chain-profitability", list[0].ID)
	assert.Equal(t, "saas-pricing-redesign", list[3].ID)
	assert.Equal(t, "Technology", list[3].Industry)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		msg  string
	}{
		{"bad yaml", "cases: [", "parsing case studies"},
		{"missing id", "cases:\n  - title: x\n    prompt: p\n", "has no id"},
		{"missing prompt", "cases:\n  - id: a\n", "has no prompt"},
		{"duplicate", "cases:\n  - id: a\n    prompt: p\n  - id: a\n    prompt: q\n", "duplicate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cases:\n  - id: custom\n    title: Custom\n    prompt: Size the market.\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	cs, ok := c.Get("custom")
	require.True(t, ok)
	assert.Equal(t, "Size the market.", cs.Prompt)

	_, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())
}
