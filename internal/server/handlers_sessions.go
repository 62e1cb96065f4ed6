package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/jonathan/portfolio-builder/internal/schemas"
	"github.com/jonathan/portfolio-builder/internal/server/middleware"
	"github.com/jonathan/portfolio-builder/internal/session"
	"github.com/jonathan/portfolio-builder/internal/state"
	"github.com/jonathan/portfolio-builder/internal/templates"
	"github.com/jonathan/portfolio-builder/internal/types"
)

// maxStateBytes bounds imported and created states
const maxStateBytes = 1 << 20

type sessionResponse struct {
	ID      string               `json:"id"`
	OwnerID string               `json:"owner_id,omitempty"`
	Version uint64               `json:"version"`
	State   types.PortfolioState `json:"state"`
	Bio     *session.BioStatus   `json:"bio,omitempty"`
}

// session loads the session named by the path and checks that the caller may
// use it. Sessions created while signed in belong to that user; anonymous
// sessions are open to whoever holds the id.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := s.sessions.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return nil, false
	}
	if sess.OwnerID == "" {
		return sess, true
	}
	userID, err := middleware.GetUserID(r)
	if err != nil {
		middleware.Unauthorized(w, r)
		return nil, false
	}
	if userID.String() != sess.OwnerID {
		s.fail(w, r, &ErrForbidden{})
		return nil, false
	}
	return sess, true
}

func ownerOf(r *http.Request) string {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		return ""
	}
	return userID.String()
}

// decodeJSON reads a JSON body into v
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxStateBytes)).Decode(v); err != nil {
		return &ErrValidation{Field: "body", Message: fmt.Sprintf("invalid JSON: %v", err)}
	}
	return nil
}

// readState reads a whole portfolio state and checks it against the JSON schema
func readState(r *http.Request) (*types.PortfolioState, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxStateBytes+1))
	if err != nil {
		return nil, &ErrValidation{Field: "body", Message: "failed to read body"}
	}
	if len(body) > maxStateBytes {
		return nil, &ErrValidation{Field: "body", Message: "state too large"}
	}
	if len(body) == 0 {
		return nil, nil
	}
	st, err := schemas.DecodePortfolio(body)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *Server) writeSession(w http.ResponseWriter, status int, sess *session.Session) {
	st, version := sess.Store.Snapshot()
	bio := sess.Bio()
	jsonResponse(w, status, sessionResponse{
		ID:      sess.ID,
		OwnerID: sess.OwnerID,
		Version: version,
		State:   st,
		Bio:     &bio,
	})
}

// handleCreateSession starts a session from the seed, or from the state in the
// body when one is sent. ?template= picks the initial template.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	initial, err := readState(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	sess, err := s.sessions.Create(r.Context(), ownerOf(r), initial)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if id := r.URL.Query().Get("template"); id != "" {
		if _, err := s.sessions.Dispatch(r.Context(), sess.ID, state.SelectTemplate{ID: id}); err != nil {
			s.fail(w, r, err)
			return
		}
	}
	s.writeSession(w, http.StatusCreated, sess)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	s.writeSession(w, http.StatusOK, sess)
}

// handleImportSession replaces the whole state with the body
func (s *Server) handleImportSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	st, err := readState(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if st == nil {
		s.fail(w, r, &ErrValidation{Field: "body", Message: "state is required"})
		return
	}
	s.apply(w, r, sess, state.Reset{State: *st}, http.StatusOK)
}

// maxListedSessions caps GET /sessions
const maxListedSessions = 50

// handleListSessions lists the caller's sessions. ?limit narrows the list.
func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	limit := maxListedSessions
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			s.fail(w, r, &ErrValidation{Field: "limit", Message: "must be a positive integer"})
			return
		}
		limit = min(n, maxListedSessions)
	}
	list, err := s.sessions.List(r.Context(), ownerOf(r), limit)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if list == nil {
		list = []session.Summary{}
	}
	jsonResponse(w, http.StatusOK, map[string]any{"sessions": list})
}

// handlePortfolioSchema serves the JSON Schema that imports are validated against
func (s *Server) handlePortfolioSchema(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/schema+json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = io.WriteString(w, schemas.PortfolioSchema())
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	if err := s.sessions.Delete(r.Context(), sess.ID); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// apply dispatches a and writes the committed state. The template resolution
// of the new state is reported in headers.
func (s *Server) apply(w http.ResponseWriter, r *http.Request, sess *session.Session, a state.Action, status int) {
	if _, err := s.sessions.Dispatch(r.Context(), sess.ID, a); err != nil {
		s.fail(w, r, err)
		return
	}
	st, _ := sess.Store.Snapshot()
	if _, res, err := s.engine.Resolve(st.SelectedTemplate); err == nil {
		setResolutionHeaders(w, res)
	}
	s.writeSession(w, status, sess)
}

// edit decodes the body into a T and dispatches the action built from it
func edit[T any](s *Server, w http.ResponseWriter, r *http.Request, status int, build func(T) state.Action) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var body T
	if err := decodeJSON(r, &body); err != nil {
		s.fail(w, r, err)
		return
	}
	s.apply(w, r, sess, build(body), status)
}

// remove dispatches an action that needs only the item id from the path
func (s *Server) remove(w http.ResponseWriter, r *http.Request, build func(id string) state.Action) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	s.apply(w, r, sess, build(r.PathValue("itemID")), http.StatusOK)
}

type templateSelection struct {
	ID string `json:"id"`
}

func (s *Server) handleSelectTemplate(w http.ResponseWriter, r *http.Request) {
	edit(s, w, r, http.StatusOK, func(b templateSelection) state.Action {
		return state.SelectTemplate{ID: b.ID}
	})
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	edit(s, w, r, http.StatusOK, func(p types.UserDataPatch) state.Action {
		return state.UpdateUserData{Patch: p}
	})
}

func (s *Server) handleReplaceProjects(w http.ResponseWriter, r *http.Request) {
	edit(s, w, r, http.StatusOK, func(list []types.ProjectData) state.Action {
		return state.ReplaceProjects{Projects: list}
	})
}

func (s *Server) handleAddProject(w http.ResponseWriter, r *http.Request) {
	edit(s, w, r, http.StatusCreated, func(p types.ProjectData) state.Action {
		return state.AddProject{Project: p}
	})
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	edit(s, w, r, http.StatusOK, func(p types.ProjectPatch) state.Action {
		return state.UpdateProject{ID: r.PathValue("itemID"), Patch: p}
	})
}

func (s *Server) handleRemoveProject(w http.ResponseWriter, r *http.Request) {
	s.remove(w, r, func(id string) state.Action { return state.RemoveProject{ID: id} })
}

func (s *Server) handleReplaceExperience(w http.ResponseWriter, r *http.Request) {
	edit(s, w, r, http.StatusOK, func(list []types.ExperienceData) state.Action {
		return state.ReplaceExperience{Experience: list}
	})
}

func (s *Server) handleAddExperience(w http.ResponseWriter, r *http.Request) {
	edit(s, w, r, http.StatusCreated, func(e types.ExperienceData) state.Action {
		return state.AddExperience{Experience: e}
	})
}

func (s *Server) handleUpdateExperience(w http.ResponseWriter, r *http.Request) {
	edit(s, w, r, http.StatusOK, func(p types.ExperiencePatch) state.Action {
		return state.UpdateExperience{ID: r.PathValue("itemID"), Patch: p}
	})
}

func (s *Server) handleRemoveExperience(w http.ResponseWriter, r *http.Request) {
	s.remove(w, r, func(id string) state.Action { return state.RemoveExperience{ID: id} })
}

func (s *Server) handleReplaceEducation(w http.ResponseWriter, r *http.Request) {
	edit(s, w, r, http.StatusOK, func(list []types.EducationData) state.Action {
		return state.ReplaceEducation{Education: list}
	})
}

func (s *Server) handleAddEducation(w http.ResponseWriter, r *http.Request) {
	edit(s, w, r, http.StatusCreated, func(e types.EducationData) state.Action {
		return state.AddEducation{Education: e}
	})
}

func (s *Server) handleRemoveEducation(w http.ResponseWriter, r *http.Request) {
	s.remove(w, r, func(id string) state.Action { return state.RemoveEducation{ID: id} })
}

func (s *Server) handleReplaceSkills(w http.ResponseWriter, r *http.Request) {
	edit(s, w, r, http.StatusOK, func(list []types.SkillData) state.Action {
		return state.ReplaceSkills{Skills: list}
	})
}

func (s *Server) handleAddSkill(w http.ResponseWriter, r *http.Request) {
	edit(s, w, r, http.StatusCreated, func(sk types.SkillData) state.Action {
		return state.AddSkill{Skill: sk}
	})
}

func (s *Server) handleRemoveSkill(w http.ResponseWriter, r *http.Request) {
	s.remove(w, r, func(id string) state.Action { return state.RemoveSkill{ID: id} })
}

func (s *Server) handleUpdateDesign(w http.ResponseWriter, r *http.Request) {
	edit(s, w, r, http.StatusOK, func(p types.DesignOptionsPatch) state.Action {
		return state.UpdateDesignOptions{Patch: p}
	})
}

// handleReset restores the seed state
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	s.apply(w, r, sess, state.Reset{State: types.SeedState()}, http.StatusOK)
}

// setResolutionHeaders reports which template served the response
func setResolutionHeaders(w http.ResponseWriter, res templates.Resolution) {
	w.Header().Set("X-Template-Requested", res.Requested)
	w.Header().Set("X-Template-Used", res.Used)
	w.Header().Set("X-Template-Fallback", strconv.FormatBool(res.FellBack))
}
