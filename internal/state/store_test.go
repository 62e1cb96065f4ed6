package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-builder/internal/types"
)

func strPtr(s string) *string { return &s }

func TestStore_SelectTemplate(t *testing.T) {
	s := NewStore(types.SeedState())
	got, err := s.Dispatch(SelectTemplate{ID: "frontend"})
	require.NoError(t, err)
	assert.Equal(t, "frontend", got.SelectedTemplate)
	assert.Equal(t, uint64(1), s.Version())

	// unknown ids are stored as-is
	got, err = s.Dispatch(SelectTemplate{ID: "nonexistent-id"})
	require.NoError(t, err)
	assert.Equal(t, "nonexistent-id", got.SelectedTemplate)
}

func TestStore_UpdateUserData(t *testing.T) {
	s := NewStore(types.SeedState())
	got, err := s.Dispatch(UpdateUserData{Patch: types.UserDataPatch{Name: strPtr("Jane Doe"), Phone: strPtr("")}})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.UserData.Name)
	assert.Empty(t, got.UserData.Phone)
	assert.Equal(t, "Mobile App Developer", got.UserData.Title)

	_, err = s.Dispatch(UpdateUserData{Patch: types.UserDataPatch{Email: strPtr("not-an-email")}})
	assert.Error(t, err)
	snap, _ := s.Snapshot()
	assert.Equal(t, "alex.chen@example.com", snap.UserData.Email)
}

func TestStore_AddProjectAssignsID(t *testing.T) {
	s := NewStore(types.SeedState())
	got, err := s.Dispatch(AddProject{Project: types.ProjectData{Title: "New"}})
	require.NoError(t, err)
	require.Len(t, got.Projects, 4)
	assert.NotEmpty(t, got.Projects[3].ID)
}

func TestStore_AddDuplicateID(t *testing.T) {
	s := NewStore(types.SeedState())
	_, err := s.Dispatch(AddSkill{Skill: types.SkillData{ID: "1", Name: "Go", Level: types.LevelExpert}})
	var dup *DuplicateIDError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "skill", dup.Kind)
	assert.Equal(t, uint64(0), s.Version())
}

func TestStore_UpdateProject(t *testing.T) {
	s := NewStore(types.SeedState())
	techs := []string{"Go"}
	got, err := s.Dispatch(UpdateProject{ID: "2", Patch: types.ProjectPatch{Title: strPtr("Renamed"), Technologies: &techs}})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Projects[1].Title)
	assert.Equal(t, []string{"Go"}, got.Projects[1].Technologies)
	assert.Equal(t, "E-Commerce Mobile App", got.Projects[0].Title)

	_, err = s.Dispatch(UpdateProject{ID: "missing", Patch: types.ProjectPatch{Title: strPtr("x")}})
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestStore_RemoveIsNoOpForUnknownID(t *testing.T) {
	s := NewStore(types.SeedState())
	got, err := s.Dispatch(RemoveProject{ID: "missing"})
	require.NoError(t, err)
	assert.Len(t, got.Projects, 3)

	got, err = s.Dispatch(RemoveProject{ID: "1"})
	require.NoError(t, err)
	require.Len(t, got.Projects, 2)
	assert.Equal(t, "2", got.Projects[0].ID)
}

func TestStore_ExperienceAndEducation(t *testing.T) {
	s := NewStore(types.SeedState())
	got, err := s.Dispatch(UpdateExperience{ID: "2", Patch: types.ExperiencePatch{EndDate: strPtr("")}})
	require.NoError(t, err)
	assert.Empty(t, got.Experience[1].EndDate)

	got, err = s.Dispatch(AddEducation{Education: types.EducationData{Institution: "MIT", Degree: "MSc"}})
	require.NoError(t, err)
	assert.Len(t, got.Education, 2)

	got, err = s.Dispatch(RemoveEducation{ID: "1"})
	require.NoError(t, err)
	assert.Len(t, got.Education, 1)
	assert.Equal(t, "MIT", got.Education[0].Institution)

	got, err = s.Dispatch(ReplaceExperience{Experience: nil})
	require.NoError(t, err)
	assert.Empty(t, got.Experience)
}

func TestStore_ReplaceRejectsDuplicates(t *testing.T) {
	s := NewStore(types.SeedState())
	_, err := s.Dispatch(ReplaceSkills{Skills: []types.SkillData{
		{ID: "a", Name: "Go", Level: types.LevelExpert},
		{ID: "a", Name: "Rust", Level: types.LevelBeginner},
	}})
	var dup *DuplicateIDError
	assert.ErrorAs(t, err, &dup)
}

func TestStore_InvalidLevelRejected(t *testing.T) {
	s := NewStore(types.SeedState())
	_, err := s.Dispatch(AddSkill{Skill: types.SkillData{Name: "Go", Level: "guru"}})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "add_skill", verr.Action)
}

func TestStore_DesignOptions(t *testing.T) {
	s := NewStore(types.SeedState())
	dark := true
	radius := types.RadiusLarge
	got, err := s.Dispatch(UpdateDesignOptions{Patch: types.DesignOptionsPatch{DarkMode: &dark, BorderRadius: &radius}})
	require.NoError(t, err)
	assert.True(t, got.DesignOptions.DarkMode)
	assert.Equal(t, types.RadiusLarge, got.DesignOptions.BorderRadius)
	assert.Equal(t, "#3b82f6", got.DesignOptions.PrimaryColor)

	bad := types.BorderRadius("huge")
	_, err = s.Dispatch(UpdateDesignOptions{Patch: types.DesignOptionsPatch{BorderRadius: &bad}})
	assert.Error(t, err)
}

func TestStore_Reset(t *testing.T) {
	s := NewStore(types.SeedState())
	_, err := s.Dispatch(RemoveSkill{ID: "1"})
	require.NoError(t, err)
	got, err := s.Dispatch(Reset{State: types.SeedState()})
	require.NoError(t, err)
	assert.Equal(t, types.SeedState(), got)
}

func TestStore_ResetAssignsMissingIDs(t *testing.T) {
	s := NewStore(types.SeedState())
	imported := types.PortfolioState{
		SelectedTemplate: "modern",
		UserData:         types.UserData{Name: "Jane Doe"},
		Skills:           []types.SkillData{{Name: "Go", Level: types.LevelExpert}},
		Projects:         []types.ProjectData{{ID: "keep", Title: "Site"}},
	}
	got, err := s.Dispatch(Reset{State: imported})
	require.NoError(t, err)
	require.Len(t, got.Skills, 1)
	assert.NotEmpty(t, got.Skills[0].ID)
	assert.Equal(t, "keep", got.Projects[0].ID)
	assert.Empty(t, imported.Skills[0].ID, "input is not mutated")
}

func TestStore_SnapshotIsIsolated(t *testing.T) {
	s := NewStore(types.SeedState())
	snap, _ := s.Snapshot()
	snap.Projects[0].Technologies[0] = "mutated"
	snap.Skills = nil

	again, _ := s.Snapshot()
	assert.Equal(t, "React Native", again.Projects[0].Technologies[0])
	assert.Len(t, again.Skills, 12)
}

func TestStore_Subscribe(t *testing.T) {
	s := NewStore(types.SeedState())
	ch, cancel := s.Subscribe()

	for i := 0; i < 3; i++ {
		_, err := s.Dispatch(SelectTemplate{ID: "modern"})
		require.NoError(t, err)
	}
	// coalesced to the latest version
	assert.Equal(t, uint64(3), <-ch)

	cancel()
	cancel()
	_, ok := <-ch
	assert.False(t, ok)
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	s := NewStore(types.SeedState())
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Dispatch(AddSkill{Skill: types.SkillData{Name: "Go", Level: types.LevelAdvanced}})
		}()
	}
	wg.Wait()
	snap, version := s.Snapshot()
	assert.Len(t, snap.Skills, 32)
	assert.Equal(t, uint64(20), version)
}
