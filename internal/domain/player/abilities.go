package player

import "strings"

// Skill categories group the rated abilities for display.
const (
	SkillCategoryTechnical = "technical"
	SkillCategoryPhysical  = "physical"
	SkillCategoryMental    = "mental"
)

// SkillCatalog maps every rateable skill to its category. Criteria naming a
// skill outside this catalog are rejected rather than silently ignored.
var SkillCatalog = map[string]string{
	"ball_control": SkillCategoryTechnical,
	"dribbling":    SkillCategoryTechnical,
	"passing":      SkillCategoryTechnical,
	"crossing":     SkillCategoryTechnical,
	"shooting":     SkillCategoryTechnical,
	"finishing":    SkillCategoryTechnical,
	"first_touch":  SkillCategoryTechnical,

	"pace":     SkillCategoryPhysical,
	"strength": SkillCategoryPhysical,
	"stamina":  SkillCategoryPhysical,
	"agility":  SkillCategoryPhysical,
	"balance":  SkillCategoryPhysical,
	"jumping":  SkillCategoryPhysical,

	"positioning":     SkillCategoryMental,
	"vision":          SkillCategoryMental,
	"composure":       SkillCategoryMental,
	"decision_making": SkillCategoryMental,
	"teamwork":        SkillCategoryMental,
	"work_rate":       SkillCategoryMental,
}

func IsSkillName(name string) bool {
	_, ok := SkillCatalog[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Abilities is the per-player rating sheet plus measured athletic results.
// A missing rating means the skill was never assessed; it is distinct from
// a rating of zero and never satisfies a minimum-threshold filter.
type Abilities struct {
	PlayerID              string
	Ratings               map[string]int // skill name -> 1-10
	Sprint10mSecs         *float64
	Sprint30mSecs         *float64
	EnduranceBeepLevel    *float64
	EnduranceCooperMetres *int
}

// Rating returns the stored rating for a skill and whether it was assessed.
func (a Abilities) Rating(name string) (int, bool) {
	v, ok := a.Ratings[name]
	return v, ok
}
