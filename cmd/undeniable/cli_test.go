package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestDirectoryCheckEmbedded(t *testing.T) {
	out, _, err := run(t, "directory", "check")
	require.NoError(t, err)

	var report struct {
		Source    string   `json:"source"`
		Kept      int      `json:"kept"`
		Companies []string `json:"companies"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "embedded", report.Source)
	assert.Equal(t, len(report.Companies), report.Kept)
	assert.Contains(t, report.Companies, "Aetna")
}

func TestDirectoryCheckFileReportsDrops(t *testing.T) {
	path := filepath.Join(t.TempDir(), "companies.csv")
	csv := "name,email\nAcme,claims@acme.example\n,orphan@acme.example\nBad,not-an-email\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o600))

	out, _, err := run(t, "directory", "check", "--source", "file", "--path", path, "-o", "yaml")
	require.NoError(t, err)

	var report struct {
		Source  string `yaml:"source"`
		Kept    int    `yaml:"kept"`
		Dropped []struct {
			Line    int    `yaml:"line"`
			Company string `yaml:"company"`
			Reason  string `yaml:"reason"`
		} `yaml:"dropped"`
		Companies []string `yaml:"companies"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, 1, report.Kept)
	assert.Equal(t, []string{"Acme"}, report.Companies)
	require.Len(t, report.Dropped, 2)
	assert.Equal(t, 3, report.Dropped[0].Line)
	assert.Equal(t, "Bad", report.Dropped[1].Company)

	_, _, err = run(t, "directory", "check", "--source", "file", "--path", path, "--strict")
	assert.Error(t, err)
}

func TestDirectoryCheckFailures(t *testing.T) {
	_, _, err := run(t, "directory", "check", "-o", "toml")
	assert.Error(t, err)

	_, _, err = run(t, "directory", "check", "--source", "file", "--path", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	_, _, err = run(t, "directory", "check", "--source", "ftp")
	assert.Error(t, err)
}

func TestRenderText(t *testing.T) {
	out, _, err := run(t, "render",
		"--name", "Jane Doe", "--company", "Aetna", "--residence", "CA", "--care", "NY", "--claim", "A123", "--mailto")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "To: claims@aetna.example\nSubject: Appeal Request: Claim #A123\n\n"))
	assert.Contains(t, out, "in CA and in NY where my care was provided")
	assert.Contains(t, out, "Sincerely,\nJane Doe\n")
	assert.Contains(t, out, "mailto:claims@aetna.example?subject=Appeal%20Request%3A%20Claim%20%23A123&body=")
}

func TestRenderUnlistedJSON(t *testing.T) {
	out, _, err := run(t, "render", "--company", "Other - not listed", "-o", "json")
	require.NoError(t, err)

	var email struct {
		To        string `json:"to"`
		Subject   string `json:"subject"`
		Body      string `json:"body"`
		ErrorCode string `json:"error_code"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &email))
	assert.Empty(t, email.To)
	assert.Equal(t, "error-company-unlisted", email.ErrorCode)
	assert.Equal(t, "Appeal Request: Claim #[CLAIM NUMBER]", email.Subject)
	assert.Contains(t, email.Body, "[NAME]")
}

func TestRenderTextWarnsOnUnresolved(t *testing.T) {
	out, errOut, err := run(t, "render", "--company", "Nobody Mutual")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "To: [EMAIL ADDRESS]\n"))
	assert.Contains(t, errOut, "warning: Email not found")
}

func TestRenderEml(t *testing.T) {
	out, _, err := run(t, "render", "--company", "Aetna", "--claim", "A123", "--eml")
	require.NoError(t, err)
	assert.Contains(t, out, "To: claims@aetna.example\r\n")
	assert.Contains(t, out, "X-Unsent: 1\r\n")
}

func TestRenderStripsMarkup(t *testing.T) {
	out, _, err := run(t, "render", "--name", "<b>Jane</b> <script>x()</script>Doe", "-o", "yaml")
	require.NoError(t, err)

	var email struct {
		Body string `yaml:"body"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &email))
	assert.NotContains(t, email.Body, "<")
	assert.True(t, strings.HasSuffix(email.Body, "Sincerely,\nJane Doe"))
}
