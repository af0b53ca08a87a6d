package model

// Course is a row of the courses table. JSON keys mirror the column names so
// the API serves rows exactly as stored.
type Course struct {
	Code                          string  `db:"code" json:"code"`
	Name                          *string `db:"name" json:"name"`
	Description                   *string `db:"desc" json:"desc"`
	Prerequisite                  *string `db:"Prerequisite" json:"Prerequisite"`
	Corequisite                   *string `db:"Corequisite" json:"Corequisite"`
	RecommendedPreparation        *string `db:"RecommendedPreparation" json:"RecommendedPreparation"`
	DistributionRequirementStatus *string `db:"DistributionRequirementStatus" json:"DistributionRequirementStatus"`
	BreadthRequirement            *string `db:"BreadthRequirement" json:"BreadthRequirement"`
	Exclusion                     *string `db:"Exclusion" json:"Exclusion"`
	LectureTimes                  *string `db:"lectimes" json:"lectimes"`
}

// Breadth returns the raw breadth requirement text, or "" when absent.
func (c Course) Breadth() string {
	return deref(c.BreadthRequirement)
}

// Distribution returns the raw distribution requirement sentence, or "" when absent.
func (c Course) Distribution() string {
	return deref(c.DistributionRequirementStatus)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
