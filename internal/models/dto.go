package models

import "fmt"

// Role selects the shape of the analyze response. It never changes the
// analysis itself.
type Role string

const (
	RoleRecruiter Role = "recruiter"
	RoleApplier   Role = "applier"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleRecruiter:
		return RoleRecruiter, nil
	case RoleApplier:
		return RoleApplier, nil
	default:
		return "", fmt.Errorf("invalid role %q: must be 'recruiter' or 'applier'", s)
	}
}

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	Slot         string `json:"slot"`
}

type RecruiterResponse struct {
	MatchPercentage float64  `json:"match_percentage"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	HireSummary     string   `json:"hire_summary"`
}

type ApplierResponse struct {
	MatchPercentage   float64  `json:"match_percentage"`
	MatchedSkills     []string `json:"matched_skills"`
	MissingSkills     []string `json:"missing_skills"`
	BasicImprovements []string `json:"basic_improvements"`
}
