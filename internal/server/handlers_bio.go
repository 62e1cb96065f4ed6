package server

import (
	"net/http"
	"strings"

	"github.com/jonathan/portfolio-builder/internal/llm"
)

// bioRequest is what the editor sends: the skills field as typed, comma
// separated, and free-form experience
type bioRequest struct {
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
}

// handleGenerateBio starts background bio generation. An empty skills field
// falls back to the skills already in the portfolio.
func (s *Server) handleGenerateBio(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var body bioRequest
	if err := decodeJSON(r, &body); err != nil {
		s.fail(w, r, err)
		return
	}

	st, _ := sess.Store.Snapshot()
	skills := llm.SplitSkills(body.Skills)
	if len(skills) == 0 {
		skills = st.SkillNames()
	}
	req := llm.BioRequest{
		Skills:     skills,
		Experience: strings.TrimSpace(body.Experience),
		Name:       st.UserData.Name,
		Title:      st.UserData.Title,
	}
	if err := s.sessions.GenerateBio(r.Context(), sess.ID, req); err != nil {
		s.fail(w, r, err)
		return
	}
	jsonResponse(w, http.StatusAccepted, sess.Bio())
}

// handleBioStatus reports the state of the last bio request
func (s *Server) handleBioStatus(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	jsonResponse(w, http.StatusOK, sess.Bio())
}
