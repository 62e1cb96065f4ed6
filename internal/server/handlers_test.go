package server

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-builder/internal/db"
	"github.com/jonathan/portfolio-builder/internal/export"
	"github.com/jonathan/portfolio-builder/internal/session"
	"github.com/jonathan/portfolio-builder/internal/types"
)

func TestCreateSession_Seed(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/sessions", nil, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeSession(t, rec)
	assert.NotEmpty(t, resp.ID)
	assert.Empty(t, resp.OwnerID)
	assert.Equal(t, types.SeedState().UserData.Name, resp.State.UserData.Name)
	require.NotNil(t, resp.Bio)
	assert.Equal(t, session.BioIdle, resp.Bio.Status)
}

func TestCreateSession_FromBodyAndTemplate(t *testing.T) {
	env := newTestEnv(t)
	body := `{"userData":{"name":"Jo Park"},"skills":[{"name":"Go","level":"expert"}]}`
	rec := env.do(t, http.MethodPost, "/sessions?template=minimal", body, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	resp := decodeSession(t, rec)
	assert.Equal(t, "Jo Park", resp.State.UserData.Name)
	assert.Equal(t, "minimal", resp.State.SelectedTemplate)
	assert.Equal(t, uint64(1), resp.Version)
}

func TestCreateSession_SchemaViolation(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/sessions", `{"userData":{}}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSession_Unknown(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/sessions/nope", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, session.ErrNotFound.Error(), decodeError(t, rec))
}

func TestImportSession(t *testing.T) {
	env := newTestEnv(t)
	id := env.createSession(t, "")

	body := `{"selectedTemplate":"backend","userData":{"name":"Sam"},"projects":[{"title":"Queue"}]}`
	rec := env.do(t, http.MethodPut, "/sessions/"+id, body, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decodeSession(t, rec)
	assert.Equal(t, "Sam", resp.State.UserData.Name)
	require.Len(t, resp.State.Projects, 1)
	assert.NotEmpty(t, resp.State.Projects[0].ID)
	assert.Equal(t, "backend", rec.Header().Get("X-Template-Used"))
	assert.Equal(t, "false", rec.Header().Get("X-Template-Fallback"))

	rec = env.do(t, http.MethodPut, "/sessions/"+id, `{"projects":[]}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPut, "/sessions/"+id, nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteSession(t *testing.T) {
	env := newTestEnv(t)
	id := env.createSession(t, "")

	rec := env.do(t, http.MethodDelete, "/sessions/"+id, nil, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodGet, "/sessions/"+id, nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListSessions(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/sessions", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := env.signIn(t, "ada@example.com")
	other := env.signIn(t, "bob@example.com")
	mine := env.createSession(t, token)
	env.createSession(t, other)
	env.createSession(t, "")

	rec = env.do(t, http.MethodGet, "/sessions", nil, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Sessions []session.Summary `json:"sessions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Sessions, 1)
	assert.Equal(t, mine, body.Sessions[0].SessionID)
	assert.Equal(t, types.SeedState().SelectedTemplate, body.Sessions[0].TemplateID)

	rec = env.do(t, http.MethodGet, "/sessions?limit=zero", nil, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPortfolioSchema(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/schemas/portfolio", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/schema+json", rec.Header().Get("Content-Type"))

	var schema map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &schema))
	assert.Equal(t, "object", schema["type"])
}

func TestEdit_UserData(t *testing.T) {
	env := newTestEnv(t)
	id := env.createSession(t, "")

	rec := env.do(t, http.MethodPatch, "/sessions/"+id+"/user", map[string]string{"name": "Riley"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeSession(t, rec)
	assert.Equal(t, "Riley", resp.State.UserData.Name)
	assert.Equal(t, types.SeedState().UserData.Title, resp.State.UserData.Title)

	rec = env.do(t, http.MethodPatch, "/sessions/"+id+"/user", map[string]string{"email": "not-an-email"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPatch, "/sessions/"+id+"/user", "{", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEdit_Projects(t *testing.T) {
	env := newTestEnv(t)
	id := env.createSession(t, "")
	base := "/sessions/" + id + "/projects"

	rec := env.do(t, http.MethodPost, base, types.ProjectData{Title: "CLI"}, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeSession(t, rec)
	added := resp.State.Projects[len(resp.State.Projects)-1]
	assert.Equal(t, "CLI", added.Title)
	assert.NotEmpty(t, added.ID)

	rec = env.do(t, http.MethodPost, base, types.ProjectData{ID: added.ID, Title: "Again"}, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = env.do(t, http.MethodPatch, base+"/"+added.ID, map[string]string{"description": "A tool"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decodeSession(t, rec)
	assert.Equal(t, "A tool", resp.State.Projects[len(resp.State.Projects)-1].Description)

	rec = env.do(t, http.MethodPatch, base+"/missing", map[string]string{"title": "x"}, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodDelete, base+"/"+added.ID, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeSession(t, rec).State.Projects, len(types.SeedState().Projects))

	rec = env.do(t, http.MethodPut, base, []types.ProjectData{{Title: "Only"}}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeSession(t, rec).State.Projects, 1)
}

func TestEdit_ExperienceEducationSkills(t *testing.T) {
	env := newTestEnv(t)
	id := env.createSession(t, "")
	base := "/sessions/" + id

	rec := env.do(t, http.MethodPost, base+"/experience", types.ExperienceData{Company: "Acme", Position: "Engineer"}, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	exp := decodeSession(t, rec).State.Experience
	last := exp[len(exp)-1]

	rec = env.do(t, http.MethodPatch, base+"/experience/"+last.ID, map[string]string{"position": "Lead"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	exp = decodeSession(t, rec).State.Experience
	assert.Equal(t, "Lead", exp[len(exp)-1].Position)

	rec = env.do(t, http.MethodPost, base+"/experience", types.ExperienceData{Company: "NoPosition"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPut, base+"/education", []types.EducationData{{Institution: "MIT"}}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	edu := decodeSession(t, rec).State.Education
	require.Len(t, edu, 1)

	rec = env.do(t, http.MethodDelete, base+"/education/"+edu[0].ID, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeSession(t, rec).State.Education)

	rec = env.do(t, http.MethodPost, base+"/skills", types.SkillData{Name: "Rust", Level: types.SkillLevel("guru")}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPut, base+"/skills", []types.SkillData{{Name: "Go", Level: "expert"}}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	skills := decodeSession(t, rec).State.Skills
	require.Len(t, skills, 1)

	rec = env.do(t, http.MethodDelete, base+"/skills/"+skills[0].ID, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeSession(t, rec).State.Skills)
}

func TestEdit_DesignAndReset(t *testing.T) {
	env := newTestEnv(t)
	id := env.createSession(t, "")
	base := "/sessions/" + id

	rec := env.do(t, http.MethodPatch, base+"/design", map[string]any{"darkMode": true, "layout": "grid"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	design := decodeSession(t, rec).State.DesignOptions
	assert.True(t, design.DarkMode)
	assert.Equal(t, types.Layout("grid"), design.Layout)

	rec = env.do(t, http.MethodPatch, base+"/design", map[string]any{"layout": "diagonal"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, base+"/reset", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, types.SeedState().DesignOptions, decodeSession(t, rec).State.DesignOptions)
}

func TestSelectTemplate_UnknownFallsBack(t *testing.T) {
	env := newTestEnv(t)
	id := env.createSession(t, "")

	rec := env.do(t, http.MethodPut, "/sessions/"+id+"/template", map[string]string{"id": "vaporwave"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "vaporwave", decodeSession(t, rec).State.SelectedTemplate)
	assert.Equal(t, "true", rec.Header().Get("X-Template-Fallback"))
	assert.Equal(t, "vaporwave", rec.Header().Get("X-Template-Requested"))
	assert.Equal(t, "simple", rec.Header().Get("X-Template-Used"))

	rec = env.do(t, http.MethodGet, "/sessions/"+id+"/preview", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", rec.Header().Get("X-Template-Fallback"))
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "<!DOCTYPE html>")
}

func TestPreviewTree(t *testing.T) {
	env := newTestEnv(t)
	id := env.createSession(t, "")
	env.do(t, http.MethodPut, "/sessions/"+id+"/template", map[string]string{"id": "frontend"}, "")

	rec := env.do(t, http.MethodGet, "/sessions/"+id+"/preview/tree", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp treeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "frontend", resp.Resolution.Used)
	assert.False(t, resp.Resolution.FellBack)
	require.NotNil(t, resp.Tree)
	assert.Contains(t, resp.Tree.Root.Texts(), strings.ToUpper(types.SeedState().UserData.Name))
}

func TestExport_RequiresAuth(t *testing.T) {
	env := newTestEnv(t)
	id := env.createSession(t, "")
	path := "/sessions/" + id + "/export"

	rec := env.do(t, http.MethodGet, path, nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "/login?next="+url.QueryEscape(path), body["login_url"])

	rec = env.do(t, http.MethodGet, path, nil, "", "Accept", "text/html,application/xhtml+xml")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?next="+url.QueryEscape(path), rec.Header().Get("Location"))

	rec = env.do(t, http.MethodPost, "/sessions/"+id+"/exports", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func zipFiles(t *testing.T, data []byte) map[string]bool {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	files := make(map[string]bool)
	for _, f := range zr.File {
		files[f.Name] = true
	}
	return files
}

func TestExportZip(t *testing.T) {
	env := newTestEnv(t)
	token := env.signIn(t, "owner@example.com")
	id := env.createSession(t, token)

	rec := env.do(t, http.MethodGet, "/sessions/"+id+"/export", nil, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/zip", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")

	files := zipFiles(t, rec.Body.Bytes())
	assert.True(t, files[export.FileIndex])
	assert.True(t, files[export.FileReadme])
}

func TestCreateExport_StreamsProgressAndStores(t *testing.T) {
	env := newTestEnv(t)
	token := env.signIn(t, "owner@example.com")
	id := env.createSession(t, token)

	rec := env.do(t, http.MethodPost, "/sessions/"+id+"/exports", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	stream := rec.Body.String()
	assert.Contains(t, stream, "event: progress")
	require.Contains(t, stream, "event: complete")

	var result exportResult
	for _, line := range strings.Split(stream, "\n") {
		if data, ok := strings.CutPrefix(line, "data: "); ok && strings.Contains(data, "export_id") {
			require.NoError(t, json.Unmarshal([]byte(data), &result))
		}
	}
	require.NotEmpty(t, result.ExportID)
	assert.Equal(t, "/exports/"+result.ExportID, result.DownloadURL)
	assert.Equal(t, 1, env.objects.Len())

	rec = env.do(t, http.MethodGet, "/sessions/"+id+"/exports", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), result.ExportID)

	rec = env.do(t, http.MethodGet, result.DownloadURL, nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, zipFiles(t, rec.Body.Bytes())[export.FileIndex])

	other := env.signIn(t, "other@example.com")
	rec = env.do(t, http.MethodGet, result.DownloadURL, nil, other)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

type failingExports struct {
	*MemoryStore
}

func (f failingExports) CreateExport(context.Context, db.Export) (uuid.UUID, error) {
	return uuid.Nil, errors.New("insert failed")
}

func TestCreateExport_RecordFailureRemovesArchive(t *testing.T) {
	env := newTestEnv(t, func(d *Deps, _ *session.Options) {
		d.Exports = failingExports{MemoryStore: NewMemoryStore()}
	})
	token := env.signIn(t, "owner@example.com")
	id := env.createSession(t, token)

	rec := env.do(t, http.MethodPost, "/sessions/"+id+"/exports", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	stream := rec.Body.String()
	assert.Contains(t, stream, "event: error")
	assert.Contains(t, stream, "failed to record export")
	assert.NotContains(t, stream, "event: complete")
	assert.Zero(t, env.objects.Len())
}

func TestDownloadExport_Unknown(t *testing.T) {
	env := newTestEnv(t)
	token := env.signIn(t, "owner@example.com")

	rec := env.do(t, http.MethodGet, "/exports/not-a-uuid", nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, "/exports/6f1c1c4e-3d3b-4d59-8d8f-2b1e7f0f6a10", nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOwnedSession_Access(t *testing.T) {
	env := newTestEnv(t)
	owner := env.signIn(t, "owner@example.com")
	id := env.createSession(t, owner)

	rec := env.do(t, http.MethodGet, "/sessions/"+id, nil, owner)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decodeSession(t, rec).OwnerID)

	rec = env.do(t, http.MethodGet, "/sessions/"+id, nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	intruder := env.signIn(t, "intruder@example.com")
	rec = env.do(t, http.MethodPatch, "/sessions/"+id+"/user", map[string]string{"name": "x"}, intruder)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGenerateBio(t *testing.T) {
	env := newTestEnv(t, func(_ *Deps, o *session.Options) {
		o.Bio = &fakeBio{text: "I build reliable systems."}
	})
	id := env.createSession(t, "")

	rec := env.do(t, http.MethodPost, "/sessions/"+id+"/bio", map[string]string{
		"skills":     "Go, Postgres",
		"experience": "Six years of backend work",
	}, "")
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	env.sessions.Wait()

	rec = env.do(t, http.MethodGet, "/sessions/"+id+"/bio", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var status session.BioStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, session.BioDone, status.Status)

	rec = env.do(t, http.MethodGet, "/sessions/"+id, nil, "")
	assert.Equal(t, "I build reliable systems.", decodeSession(t, rec).State.UserData.Bio)
}

func TestGenerateBio_FailureKeepsBio(t *testing.T) {
	env := newTestEnv(t, func(_ *Deps, o *session.Options) {
		o.Bio = &fakeBio{err: errors.New("quota exceeded")}
	})
	id := env.createSession(t, "")

	rec := env.do(t, http.MethodPost, "/sessions/"+id+"/bio", map[string]string{"experience": "Some work"}, "")
	require.Equal(t, http.StatusAccepted, rec.Code)
	env.sessions.Wait()

	rec = env.do(t, http.MethodGet, "/sessions/"+id+"/bio", nil, "")
	var status session.BioStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, session.BioFailed, status.Status)
	assert.NotEmpty(t, status.Message)

	rec = env.do(t, http.MethodGet, "/sessions/"+id, nil, "")
	assert.Equal(t, types.SeedState().UserData.Bio, decodeSession(t, rec).State.UserData.Bio)
}

func TestGenerateBio_Errors(t *testing.T) {
	env := newTestEnv(t)
	id := env.createSession(t, "")

	rec := env.do(t, http.MethodPost, "/sessions/"+id+"/bio", map[string]string{"skills": "Go", "experience": " "}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/sessions/"+id+"/bio", map[string]string{"skills": "Go", "experience": "Years"}, "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
