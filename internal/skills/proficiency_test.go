package skills

import (
	"testing"
	"unicode/utf8"

	"github.com/jonathan/portfolio-builder/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestScale_Percent(t *testing.T) {
	tests := []struct {
		level    types.SkillLevel
		linear   int
		generous int
	}{
		{types.LevelBeginner, 25, 50},
		{types.LevelIntermediate, 50, 70},
		{types.LevelAdvanced, 75, 85},
		{types.LevelExpert, 90, 95},
		{"EXPERT", 90, 95},
		{" advanced ", 75, 85},
		{"legendary", 50, 60},
		{"", 50, 60},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			assert.Equal(t, tt.linear, LinearScale.Percent(tt.level))
			assert.Equal(t, tt.generous, ProficiencyPercent(tt.level, GenerousScale))
		})
	}
}

func TestScale_PercentClamps(t *testing.T) {
	s := Scale{Beginner: -5, Expert: 140, Default: 50}
	assert.Equal(t, 0, s.Percent(types.LevelBeginner))
	assert.Equal(t, 100, s.Percent(types.LevelExpert))
}

func TestScale_Average(t *testing.T) {
	list := []types.SkillData{
		{Level: types.LevelExpert},
		{Level: types.LevelAdvanced},
		{Level: types.LevelAdvanced},
	}
	// (95+85+85)/3 = 88.33
	assert.Equal(t, 88, GenerousScale.Average(list))
	assert.Equal(t, 0, GenerousScale.Average(nil))
}

func TestAccents_For(t *testing.T) {
	a := Accents{Expert: "from-orange-500 to-red-500", Default: "from-gray-400 to-gray-500"}
	assert.Equal(t, "from-orange-500 to-red-500", a.For("Expert"))
	assert.Equal(t, "from-gray-400 to-gray-500", a.For("unknown"))
	assert.Equal(t, "", a.For(types.LevelBeginner))
}

func TestLevelLabel(t *testing.T) {
	assert.Equal(t, "Expert", LevelLabel(types.LevelExpert))
	assert.Equal(t, "Intermediate", LevelLabel("INTERMEDIATE"))
	assert.Equal(t, "Guru", LevelLabel("guru"))
	assert.Equal(t, "", LevelLabel("  "))

	label := LevelLabel("élite")
	assert.True(t, utf8.ValidString(label))
	assert.Equal(t, "Élite", label)
}
