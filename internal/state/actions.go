package state

import (
	"github.com/google/uuid"

	"github.com/jonathan/portfolio-builder/internal/types"
)

// Action is one state transition. Actions are applied to a private copy, so a
// failing action leaves the store untouched.
type Action interface {
	Name() string
	apply(s *types.PortfolioState) error
}

// SelectTemplate sets the selected template id. Unknown ids are accepted; the
// renderers fall back to the default.
type SelectTemplate struct {
	ID string `json:"id"`
}

// UpdateUserData merges a partial user record
type UpdateUserData struct {
	Patch types.UserDataPatch
}

// ReplaceProjects replaces the whole project list
type ReplaceProjects struct {
	Projects []types.ProjectData
}

// AddProject appends a project. An empty id gets a fresh UUID.
type AddProject struct {
	Project types.ProjectData
}

// UpdateProject merges a partial project into the project with ID
type UpdateProject struct {
	ID    string
	Patch types.ProjectPatch
}

// RemoveProject drops the project with ID. Unknown ids are ignored.
type RemoveProject struct {
	ID string
}

// ReplaceExperience replaces the whole experience list
type ReplaceExperience struct {
	Experience []types.ExperienceData
}

// AddExperience appends an experience entry
type AddExperience struct {
	Experience types.ExperienceData
}

// UpdateExperience merges a partial entry into the experience with ID
type UpdateExperience struct {
	ID    string
	Patch types.ExperiencePatch
}

// RemoveExperience drops the experience with ID
type RemoveExperience struct {
	ID string
}

// ReplaceEducation replaces the whole education list
type ReplaceEducation struct {
	Education []types.EducationData
}

// AddEducation appends an education entry
type AddEducation struct {
	Education types.EducationData
}

// RemoveEducation drops the education entry with ID
type RemoveEducation struct {
	ID string
}

// ReplaceSkills replaces the whole skill list
type ReplaceSkills struct {
	Skills []types.SkillData
}

// AddSkill appends a skill
type AddSkill struct {
	Skill types.SkillData
}

// RemoveSkill drops the skill with ID
type RemoveSkill struct {
	ID string
}

// UpdateDesignOptions merges partial design options
type UpdateDesignOptions struct {
	Patch types.DesignOptionsPatch
}

// Reset replaces the whole state, typically with the seed or an import.
// Entries without an id get a fresh one.
type Reset struct {
	State types.PortfolioState
}

func (SelectTemplate) Name() string      { return "select_template" }
func (UpdateUserData) Name() string      { return "update_user_data" }
func (ReplaceProjects) Name() string     { return "replace_projects" }
func (AddProject) Name() string          { return "add_project" }
func (UpdateProject) Name() string       { return "update_project" }
func (RemoveProject) Name() string       { return "remove_project" }
func (ReplaceExperience) Name() string   { return "replace_experience" }
func (AddExperience) Name() string       { return "add_experience" }
func (UpdateExperience) Name() string    { return "update_experience" }
func (RemoveExperience) Name() string    { return "remove_experience" }
func (ReplaceEducation) Name() string    { return "replace_education" }
func (AddEducation) Name() string        { return "add_education" }
func (RemoveEducation) Name() string     { return "remove_education" }
func (ReplaceSkills) Name() string       { return "replace_skills" }
func (AddSkill) Name() string            { return "add_skill" }
func (RemoveSkill) Name() string         { return "remove_skill" }
func (UpdateDesignOptions) Name() string { return "update_design_options" }
func (Reset) Name() string               { return "reset" }

func (a SelectTemplate) apply(s *types.PortfolioState) error {
	s.SelectedTemplate = a.ID
	return nil
}

func (a UpdateUserData) apply(s *types.PortfolioState) error {
	if err := a.Patch.Validate(); err != nil {
		return &ValidationError{Action: a.Name(), Cause: err}
	}
	a.Patch.Apply(&s.UserData)
	return nil
}

func (a ReplaceProjects) apply(s *types.PortfolioState) error {
	next := types.PortfolioState{Projects: a.Projects}.Clone().Projects
	for i := range next {
		if next[i].ID == "" {
			next[i].ID = uuid.NewString()
		}
	}
	if err := uniqueIDs("project", next, func(p types.ProjectData) string { return p.ID }); err != nil {
		return err
	}
	s.Projects = next
	return nil
}

func (a AddProject) apply(s *types.PortfolioState) error {
	p := types.PortfolioState{Projects: []types.ProjectData{a.Project}}.Clone().Projects[0]
	id, err := assignID("project", p.ID, s.Projects, func(p types.ProjectData) string { return p.ID })
	if err != nil {
		return err
	}
	p.ID = id
	s.Projects = append(s.Projects, p)
	return nil
}

func (a UpdateProject) apply(s *types.PortfolioState) error {
	i := indexOf(s.Projects, a.ID, func(p types.ProjectData) string { return p.ID })
	if i < 0 {
		return &NotFoundError{Kind: "project", ID: a.ID}
	}
	a.Patch.Apply(&s.Projects[i])
	return nil
}

func (a RemoveProject) apply(s *types.PortfolioState) error {
	s.Projects = without(s.Projects, a.ID, func(p types.ProjectData) string { return p.ID })
	return nil
}

func (a ReplaceExperience) apply(s *types.PortfolioState) error {
	next := append([]types.ExperienceData{}, a.Experience...)
	for i := range next {
		if next[i].ID == "" {
			next[i].ID = uuid.NewString()
		}
	}
	if err := uniqueIDs("experience", next, func(e types.ExperienceData) string { return e.ID }); err != nil {
		return err
	}
	s.Experience = next
	return nil
}

func (a AddExperience) apply(s *types.PortfolioState) error {
	e := a.Experience
	id, err := assignID("experience", e.ID, s.Experience, func(e types.ExperienceData) string { return e.ID })
	if err != nil {
		return err
	}
	e.ID = id
	s.Experience = append(s.Experience, e)
	return nil
}

func (a UpdateExperience) apply(s *types.PortfolioState) error {
	i := indexOf(s.Experience, a.ID, func(e types.ExperienceData) string { return e.ID })
	if i < 0 {
		return &NotFoundError{Kind: "experience", ID: a.ID}
	}
	a.Patch.Apply(&s.Experience[i])
	return nil
}

func (a RemoveExperience) apply(s *types.PortfolioState) error {
	s.Experience = without(s.Experience, a.ID, func(e types.ExperienceData) string { return e.ID })
	return nil
}

func (a ReplaceEducation) apply(s *types.PortfolioState) error {
	next := append([]types.EducationData{}, a.Education...)
	for i := range next {
		if next[i].ID == "" {
			next[i].ID = uuid.NewString()
		}
	}
	if err := uniqueIDs("education", next, func(e types.EducationData) string { return e.ID }); err != nil {
		return err
	}
	s.Education = next
	return nil
}

func (a AddEducation) apply(s *types.PortfolioState) error {
	e := a.Education
	id, err := assignID("education", e.ID, s.Education, func(e types.EducationData) string { return e.ID })
	if err != nil {
		return err
	}
	e.ID = id
	s.Education = append(s.Education, e)
	return nil
}

func (a RemoveEducation) apply(s *types.PortfolioState) error {
	s.Education = without(s.Education, a.ID, func(e types.EducationData) string { return e.ID })
	return nil
}

func (a ReplaceSkills) apply(s *types.PortfolioState) error {
	next := append([]types.SkillData{}, a.Skills...)
	for i := range next {
		if next[i].ID == "" {
			next[i].ID = uuid.NewString()
		}
	}
	if err := uniqueIDs("skill", next, func(sk types.SkillData) string { return sk.ID }); err != nil {
		return err
	}
	s.Skills = next
	return nil
}

func (a AddSkill) apply(s *types.PortfolioState) error {
	sk := a.Skill
	id, err := assignID("skill", sk.ID, s.Skills, func(sk types.SkillData) string { return sk.ID })
	if err != nil {
		return err
	}
	sk.ID = id
	s.Skills = append(s.Skills, sk)
	return nil
}

func (a RemoveSkill) apply(s *types.PortfolioState) error {
	s.Skills = without(s.Skills, a.ID, func(sk types.SkillData) string { return sk.ID })
	return nil
}

func (a UpdateDesignOptions) apply(s *types.PortfolioState) error {
	if err := a.Patch.Validate(); err != nil {
		return &ValidationError{Action: a.Name(), Cause: err}
	}
	a.Patch.Apply(&s.DesignOptions)
	return nil
}

func (a Reset) apply(s *types.PortfolioState) error {
	*s = WithIDs(a.State)
	return nil
}

// WithIDs returns a copy of st in which every list entry without an id has a
// fresh one
func WithIDs(st types.PortfolioState) types.PortfolioState {
	next := st.Clone()
	for i := range next.Projects {
		next.Projects[i].ID = orNewID(next.Projects[i].ID)
	}
	for i := range next.Experience {
		next.Experience[i].ID = orNewID(next.Experience[i].ID)
	}
	for i := range next.Education {
		next.Education[i].ID = orNewID(next.Education[i].ID)
	}
	for i := range next.Skills {
		next.Skills[i].ID = orNewID(next.Skills[i].ID)
	}
	return next
}

func orNewID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

func indexOf[T any](list []T, id string, key func(T) string) int {
	for i, v := range list {
		if key(v) == id {
			return i
		}
	}
	return -1
}

func without[T any](list []T, id string, key func(T) string) []T {
	out := make([]T, 0, len(list))
	for _, v := range list {
		if key(v) != id {
			out = append(out, v)
		}
	}
	return out
}

func assignID[T any](kind, id string, list []T, key func(T) string) (string, error) {
	if id == "" {
		return uuid.NewString(), nil
	}
	if indexOf(list, id, key) >= 0 {
		return "", &DuplicateIDError{Kind: kind, ID: id}
	}
	return id, nil
}

func uniqueIDs[T any](kind string, list []T, key func(T) string) error {
	seen := make(map[string]bool, len(list))
	for _, v := range list {
		id := key(v)
		if seen[id] {
			return &DuplicateIDError{Kind: kind, ID: id}
		}
		seen[id] = true
	}
	return nil
}
