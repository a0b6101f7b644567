package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmcode/interview-coach/pkg/model"
)

func TestParseModelFlag(t *testing.T) {
	p, err := parseModelFlag("")
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = parseModelFlag("GPT-4")
	require.NoError(t, err)
	assert.Equal(t, model.ProviderOpenAI, *p)

	_, err = parseModelFlag("llama")
	assert.Error(t, err)
}

func TestReadText(t *testing.T) {
	got, err := readText("inline", "ignored.txt")
	require.NoError(t, err)
	assert.Equal(t, "inline", got)

	path := filepath.Join(t.TempDir(), "answer.txt")
	require.NoError(t, os.WriteFile(path, []byte("from file"), 0o600))
	got, err = readText("", path)
	require.NoError(t, err)
	assert.Equal(t, "from file", got)

	_, err = readText("", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestReadCaseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
id: airline
title: Airline Entry
prompt: Should the airline enter Asia?
keyQuestions:
  - Which routes?
data:
  fleet: "40 aircraft"
`), 0o600))

	cs, err := readCaseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "airline", cs.ID)
	assert.Equal(t, []string{"Which routes?"}, cs.KeyQuestions)
	assert.Equal(t, "40 aircraft", cs.Data["fleet"])
}
