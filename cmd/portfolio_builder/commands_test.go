package main

import (
	"archive/zip"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-builder/internal/export"
	"github.com/jonathan/portfolio-builder/internal/types"
)

func seedFile(t *testing.T, mutate func(*types.PortfolioState)) string {
	t.Helper()
	st := types.SeedState()
	if mutate != nil {
		mutate(&st)
	}
	data, err := json.Marshal(st)
	require.NoError(t, err)
	return writeFile(t, t.TempDir(), "portfolio.json", data)
}

func TestTemplatesCommand(t *testing.T) {
	out, _, err := execute(t, "templates")
	require.NoError(t, err)
	assert.Contains(t, out, "TEMPLATES (10)")
	assert.Contains(t, out, "* simple")
	assert.Contains(t, out, "mobile")
}

func TestRenderCommand_Static(t *testing.T) {
	path := seedFile(t, func(st *types.PortfolioState) { st.UserData.Name = "Jordan Park" })

	out, stderr, err := execute(t, "render", "--state", path, "--template", "simple")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "Jordan Park")
}

func TestRenderCommand_LiveToFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "nested", "preview.html")

	out, _, err := execute(t, "render", "--mode", "live", "--template", "simple", "--out", dest)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Alex Chen")
}

func TestRenderCommand_UnknownTemplateFallsBack(t *testing.T) {
	out, stderr, err := execute(t, "render", "--template", "no-such-template")
	require.NoError(t, err)
	assert.Contains(t, stderr, `template "no-such-template" not found, using "simple"`)
	assert.Contains(t, out, "Alex Chen")
}

func TestRenderCommand_BadMode(t *testing.T) {
	_, _, err := execute(t, "render", "--mode", "pdf")
	assert.ErrorContains(t, err, `unknown mode "pdf"`)
}

func TestRenderCommand_MissingStateFile(t *testing.T) {
	_, _, err := execute(t, "render", "--state", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to read")
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()

	out, _, err := execute(t, "export", "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "100% done")
	assert.Contains(t, out, "EXPORT")

	path := filepath.Join(dir, "Alex-Chen-portfolio-source.zip")
	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{export.FileIndex, export.FileReadme, export.FileManifest, export.FileDeployment}, names)
}

func TestVerifyCommand(t *testing.T) {
	out, _, err := execute(t, "verify")
	require.NoError(t, err)
	assert.Contains(t, out, "10/10 templates equivalent")
}

func TestValidateCommand(t *testing.T) {
	t.Run("seed", func(t *testing.T) {
		out, _, err := execute(t, "validate")
		require.NoError(t, err)
		assert.Contains(t, out, "PORTFOLIO")
		assert.Contains(t, out, "Alex Chen")
	})

	t.Run("file without ids", func(t *testing.T) {
		path := seedFile(t, func(st *types.PortfolioState) {
			for i := range st.Projects {
				st.Projects[i].ID = ""
			}
		})
		out, _, err := execute(t, "validate", "--state", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Projects: 3")
	})

	t.Run("schema failure", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "bad.json", []byte(`[]`))
		out, _, err := execute(t, "validate", "--state", path)
		require.Error(t, err)
		assert.Contains(t, out, "VALIDATION FAILED")
	})
}

func TestSnapshotCommand_UnknownTemplate(t *testing.T) {
	_, _, err := execute(t, "snapshot", "--templates", "simple,nope", "--out", t.TempDir())
	assert.ErrorContains(t, err, `unknown template "nope"`)
}

func TestSnapshotCommand(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping browser test in short mode")
	}
	if os.Getenv("CHROME_PATH") == "" {
		if _, err := exec.LookPath("chromium"); err != nil {
			if _, err := exec.LookPath("google-chrome"); err != nil {
				t.Skip("Chrome not available")
			}
		}
	}

	dir := t.TempDir()
	out, _, err := execute(t, "snapshot", "--templates", "simple,frontend", "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "simple.png")

	for _, name := range []string{"simple.png", "frontend.png"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}
