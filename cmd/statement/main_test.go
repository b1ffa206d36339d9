package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"STATEMENT_CONFIG", "STATEMENT_CATALOG", "STATEMENT_INVOICE", "STATEMENT_SCENARIO",
		"STATEMENT_FORMAT", "STATEMENT_OUTPUT", "STATEMENT_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"-log-level=error"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Scenario(t *testing.T) {
	clearEnv(t)

	code, out, _ := runCLI(t, "-scenario=bigco-legacy")

	require.Equal(t, 0, code)
	assert.Equal(t, "Statement for BigCo\n"+
		"  Hamlet: $650.00 (55 seats)\n"+
		"  As You Like It: $490.00 (35 seats)\n"+
		"  Othello: $500.00 (40 seats)\n"+
		"Amount owed is $1,640.00\n"+
		"You earned 47 credits\n", out)
}

func TestRun_FilesToXML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	catalog := filepath.Join(dir, "plays.yaml")
	invoice := filepath.Join(dir, "invoice.yaml")
	require.NoError(t, os.WriteFile(catalog, []byte("plays:\n  john: {name: King John, base_audience: 2648, genre: history}\n"), 0o644))
	require.NoError(t, os.WriteFile(invoice, []byte("customer: BigCo\nperformances:\n  - {play_id: john, audience: 39}\n"), 0o644))

	code, out, _ := runCLI(t, "-catalog="+catalog, "-invoice="+invoice, "-format=xml")

	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<totalAmount>490.00</totalAmount>")
	assert.Contains(t, out, "<totalCredits>9</totalCredits>")
}

func TestRun_WritesOutputFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bigco.pdf")

	code, out, _ := runCLI(t, "-scenario=bigco", "-format=pdf", "-out="+path)

	require.Equal(t, 0, code)
	assert.Empty(t, out)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")))
}

func TestRun_ConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "statement.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scenario: bigco\nformat: text\n"), 0o644))

	code, out, _ := runCLI(t, "-config="+path)

	require.Equal(t, 0, code)
	assert.Contains(t, out, "Amount owed is $2,930.00\n")
}

func TestRun_InvalidInput(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	catalog := filepath.Join(dir, "plays.json")
	invoice := filepath.Join(dir, "invoice.json")
	require.NoError(t, os.WriteFile(catalog, []byte(`{"plays": {"cats": {"name": "Cats", "base_audience": 100, "genre": "musical"}}}`), 0o644))
	require.NoError(t, os.WriteFile(invoice, []byte(`{"customer": "X", "performances": [{"play_id": "cats", "audience": 10}]}`), 0o644))

	tests := map[string][]string{
		"no input":       {},
		"unknown format": {"-scenario=bigco", "-format=html"},
		"unknown scene":  {"-scenario=macbeth"},
		"unknown genre":  {"-catalog=" + catalog, "-invoice=" + invoice},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			code, out, _ := runCLI(t, args...)
			assert.Equal(t, 2, code)
			assert.Empty(t, out, "no partial output")
		})
	}
}

func TestRun_LogsFailureToStderr(t *testing.T) {
	clearEnv(t)

	code, out, errOut := runCLI(t, "-scenario=macbeth")

	require.Equal(t, 2, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, `"msg":"statement failed"`)
	assert.Contains(t, errOut, "macbeth")
}

func TestRun_LogLevelFiltersStderr(t *testing.T) {
	clearEnv(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-log-level=info", "-scenario=bigco"}, &stdout, &stderr)

	require.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Amount owed is $2,930.00\n")
	assert.Contains(t, stderr.String(), `"level":"info"`)
}
