package domain

import (
	"errors"
	"sort"
)

// CategoryAll is the filter sentinel that matches every item.
const CategoryAll = "All"

var ErrProjectNotFound = errors.New("project not found")

// SortKey selects the ordering applied by SortProjects.
type SortKey string

const (
	SortByDate     SortKey = "date"
	SortByName     SortKey = "name"
	SortByCategory SortKey = "category"
)

// Project is a read-only portfolio entry.
type Project struct {
	ID          string   `json:"id" bson:"_id"`
	Slug        string   `json:"slug" bson:"slug"`
	Name        string   `json:"name" bson:"name"`
	Category    string   `json:"category" bson:"category"`
	Description string   `json:"description" bson:"description"`
	Role        string   `json:"role" bson:"role"`
	Duration    string   `json:"duration" bson:"duration"`
	TechStack   []string `json:"tech_stack" bson:"tech_stack"`
	Points      []string `json:"points" bson:"points"`
	Year        int      `json:"year" bson:"year"`
	Featured    bool     `json:"featured,omitempty" bson:"featured,omitempty"`
}

// Skill is a read-only ability entry with a 0-100 proficiency.
type Skill struct {
	Name        string `json:"name" bson:"_id"`
	Category    string `json:"category" bson:"category"`
	Proficiency int    `json:"proficiency" bson:"proficiency"`
}

// Experience is one work-history entry.
type Experience struct {
	Company  string   `json:"company" bson:"company"`
	Role     string   `json:"role" bson:"role"`
	Duration string   `json:"duration" bson:"duration"`
	Location string   `json:"location,omitempty" bson:"location,omitempty"`
	Points   []string `json:"points" bson:"points"`
}

// FilterProjectsByCategory returns the projects whose category exactly equals
// category. The CategoryAll sentinel returns every project. The result is
// always a fresh slice; the input is never mutated.
func FilterProjectsByCategory(projects []Project, category string) []Project {
	if category == CategoryAll {
		out := make([]Project, len(projects))
		copy(out, projects)
		return out
	}
	out := make([]Project, 0)
	for _, p := range projects {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// SortProjects returns a sorted copy of projects. Sorting is stable: ties
// keep their original relative order. An unknown key returns the copy
// unchanged.
func SortProjects(projects []Project, key SortKey) []Project {
	out := make([]Project, len(projects))
	copy(out, projects)

	switch key {
	case SortByDate:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Year > out[j].Year })
	case SortByName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case SortByCategory:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	}
	return out
}

// SortSkillsByProficiency returns a copy of skills sorted by proficiency,
// highest first. Ties keep their original relative order. Callers get the
// same ordering no matter how the backing store returned the skills.
func SortSkillsByProficiency(skills []Skill) []Skill {
	out := make([]Skill, len(skills))
	copy(out, skills)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Proficiency > out[j].Proficiency })
	return out
}

// FilterSkillsByCategory mirrors FilterProjectsByCategory for skills.
func FilterSkillsByCategory(skills []Skill, category string) []Skill {
	if category == CategoryAll {
		out := make([]Skill, len(skills))
		copy(out, skills)
		return out
	}
	out := make([]Skill, 0)
	for _, s := range skills {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}
