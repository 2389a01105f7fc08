package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `PROFESSIONAL SUMMARY
Data engineer focused on reliable pipelines.

SKILLS & QUALIFICATIONS
Languages: Go, Python, SQL

EDUCATION
BSc Computer Science`

const sampleRequest = `profile:
  name: Jane Doe
  email: jane@example.com
  job_title: Data Engineer
  years_of_experience: 4-5
  domain: Fintech
job_description: Design and operate batch and streaming pipelines for the analytics platform.
work_responsibilities: Maintained Airflow DAGs, migrated warehouse tables and tuned Spark jobs.
skills: "Languages: Go, Python"
export_format: docx
`

func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"LLM_PROVIDER", "LLM_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "LLM_BASE_URL", "LLM_MODEL"} {
		t.Setenv(key, "")
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	isolateEnv(t)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestJobCode(t *testing.T) {
	out, err := execute(t, "jobcode", "--job-title", "Machine Learning Engineer", "--name", "Alice Y Jones", "--year", "2025")
	require.NoError(t, err)
	assert.Equal(t, "MLE-AYJ-2025\n", out)
}

func TestJobCodeDefaults(t *testing.T) {
	out, err := execute(t, "jobcode", "--year", "2024")
	require.NoError(t, err)
	assert.Equal(t, "SE-JD-2024\n", out)
}

func TestRenderHTMLToStdout(t *testing.T) {
	input := writeFile(t, "resume.txt", sampleResume)

	out, err := execute(t, "render", input, "--format", "html", "--output", "-", "--name", "Jane Doe")
	require.NoError(t, err)
	assert.Contains(t, out, "<html")
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "reliable pipelines")
}

func TestRenderDocxToFile(t *testing.T) {
	input := writeFile(t, "resume.txt", sampleResume)
	output := filepath.Join(t.TempDir(), "out.docx")

	out, err := execute(t, "render", input, "--output", output, "--name", "Jane Doe")
	require.NoError(t, err)
	assert.Contains(t, out, output)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))
}

func TestRenderErrors(t *testing.T) {
	_, err := execute(t, "render", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read resume text")

	blank := writeFile(t, "blank.txt", "   \n")
	_, err = execute(t, "render", blank, "--output", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume text is required")

	input := writeFile(t, "resume.txt", sampleResume)
	_, err = execute(t, "render", input, "--format", "pdf", "--output", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")
}

func TestGenerateOffline(t *testing.T) {
	request := writeFile(t, "request.yaml", sampleRequest)
	output := filepath.Join(t.TempDir(), "preview.html")

	out, err := execute(t, "generate", request, "--offline", "--format", "html", "--output", output)
	require.NoError(t, err)
	assert.Contains(t, out, offlineMessage)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Jane Doe")
	assert.Contains(t, string(data), "Maintained Airflow DAGs")
}

func TestGenerateRejectsInvalidRequest(t *testing.T) {
	short := strings.Replace(sampleRequest,
		"job_description: Design and operate batch and streaming pipelines for the analytics platform.",
		"job_description: Too short", 1)
	request := writeFile(t, "request.yaml", short)

	_, err := execute(t, "generate", request, "--offline", "--output", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid request")
}

func TestGenerateRejectsUnknownKeys(t *testing.T) {
	request := writeFile(t, "request.yaml", sampleRequest+"salary: 1000000\n")

	_, err := execute(t, "generate", request, "--offline", "--output", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse request file")
}

func TestGenerateWithProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"PROFESSIONAL SUMMARY\nShips data platforms.\n\nSKILLS\nLanguages: Go"}}]}`))
	}))
	defer srv.Close()

	configFile := writeFile(t, "config.yaml", "llm:\n  provider: openai\n  api_key: test-key\n  base_url: "+srv.URL+"\n")
	request := writeFile(t, "request.yaml", sampleRequest)
	output := filepath.Join(t.TempDir(), "resume.html")

	out, err := execute(t, "--config", configFile, "generate", request, "--format", "html", "--output", output)
	require.NoError(t, err)
	assert.Contains(t, out, "Resume generated successfully")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Ships data platforms.")
}
