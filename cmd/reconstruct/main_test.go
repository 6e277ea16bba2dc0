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

func testdata(name string) string {
	return filepath.Join("..", "..", "app", "testdata", name)
}

func TestRunSingleFile(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-log", "error", "-trace", "-input", testdata("testcase1.json")}, strings.NewReader(""), &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	s := out.String()
	assert.Contains(t, s, "Number of roots (n): 4")
	assert.Contains(t, s, "Polynomial degree: 2")
	assert.Contains(t, s, `Root 2: base=2, value="111" -> decimal=7`)
	assert.Contains(t, s, "L_1(0) = -3")
	assert.Contains(t, s, "The constant term c = 3")
	assert.Contains(t, s, strings.Repeat("=", 60))
}

func TestRunPrompt(t *testing.T) {
	var out, errOut bytes.Buffer
	in := strings.NewReader(testdata("testcase2.json") + "\n")
	code := run([]string{"-log", "error"}, in, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), "Enter JSON filename: ")
	assert.Contains(t, out.String(), "The constant term c = 79836264049851")
}

func TestRunPromptDefault(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	var out, errOut bytes.Buffer
	code := run([]string{"-log", "error"}, strings.NewReader("\n"), &out, &errOut)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "File 'testcase.json' not found!")
}

func TestRunMultipleFiles(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-log", "error", testdata("testcase1.json"), testdata("testcase2.json")}, strings.NewReader(""), &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), "testcase1.json: 3")
	assert.Contains(t, out.String(), "testcase2.json: 79836264049851")
}

func TestRunErrors(t *testing.T) {
	broken := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"keys":`), 0o644))

	var out, errOut bytes.Buffer
	code := run([]string{"-log", "error", "-input", broken}, strings.NewReader(""), &out, &errOut)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "Invalid JSON")

	errOut.Reset()
	code = run([]string{"-log", "error", "-input", testdata("non_integer.json")}, strings.NewReader(""), &out, &errOut)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "not an integer")

	errOut.Reset()
	code = run([]string{"-field", "p-256"}, strings.NewReader(""), &out, &errOut)
	assert.Equal(t, 1, code)

	code = run([]string{"-nosuchflag"}, strings.NewReader(""), &out, &errOut)
	assert.Equal(t, 2, code)
}

func TestRunFieldAndStore(t *testing.T) {
	ledger := filepath.Join(t.TempDir(), "ledger")
	args := []string{"-log", "error", "-field", "bn256", "-store", ledger, "-input", testdata("testcase1.json")}

	var out, errOut bytes.Buffer
	require.Equal(t, 0, run(args, strings.NewReader(""), &out, &errOut), errOut.String())
	assert.Contains(t, out.String(), "Working modulo the bn256 group order")
	assert.Contains(t, out.String(), "The constant term c = 3")

	out.Reset()
	require.Equal(t, 0, run(args, strings.NewReader(""), &out, &errOut), errOut.String())
	assert.Contains(t, out.String(), "(result taken from the ledger)")
}

func TestRunTraceWithLedger(t *testing.T) {
	ledger := filepath.Join(t.TempDir(), "ledger")
	args := []string{"-log", "error", "-trace", "-store", ledger, "-input", testdata("testcase1.json")}

	var out, errOut bytes.Buffer
	require.Equal(t, 0, run(args, strings.NewReader(""), &out, &errOut), errOut.String())

	out.Reset()
	require.Equal(t, 0, run(args, strings.NewReader(""), &out, &errOut), errOut.String())
	assert.Contains(t, out.String(), "(result taken from the ledger)")
	assert.Contains(t, out.String(), "L_1(0) = -3")
}
