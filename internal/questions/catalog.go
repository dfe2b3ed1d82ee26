package questions

import (
	"fmt"

	"interview-practice/internal/domain"
)

// Role описывает позицию, для которой можно пройти интервью
type Role struct {
	ID      string
	Title   string
	Domains []string
}

// ModeInfo описывает режим интервью для экрана выбора
type ModeInfo struct {
	Mode        domain.Mode
	Title       string
	Description string
	Features    []string
}

var roles = []Role{
	{
		ID:      "software-engineer",
		Title:   "Software Engineer",
		Domains: []string{"Frontend", "Backend", "Full Stack", "Mobile", "DevOps"},
	},
	{
		ID:      "product-manager",
		Title:   "Product Manager",
		Domains: []string{"Consumer Products", "B2B SaaS", "Mobile Apps", "Platform", "Growth"},
	},
	{
		ID:      "data-analyst",
		Title:   "Data Analyst",
		Domains: []string{"Business Intelligence", "Marketing Analytics", "Financial Analysis", "Operations", "Product Analytics"},
	},
	{
		ID:      "data-scientist",
		Title:   "Data Scientist",
		Domains: []string{"Machine Learning", "Deep Learning", "NLP", "Computer Vision", "Recommendation Systems"},
	},
	{
		ID:      "system-designer",
		Title:   "System Designer",
		Domains: []string{"Distributed Systems", "Microservices", "Scalability", "Cloud Architecture", "Database Design"},
	},
}

var modes = []ModeInfo{
	{
		Mode:        domain.ModeTechnical,
		Title:       "Technical Interview",
		Description: "Test your technical knowledge and problem-solving skills",
		Features: []string{
			"Algorithm & Data Structures",
			"System Design Questions",
			"Domain-specific Technical Questions",
			"Code Review & Optimization",
			"Architecture Discussions",
		},
	},
	{
		Mode:        domain.ModeBehavioral,
		Title:       "Behavioral Interview",
		Description: "Practice soft skills and situational responses",
		Features: []string{
			"STAR Method Questions",
			"Leadership & Teamwork",
			"Conflict Resolution",
			"Project Management",
			"Career Goals & Motivation",
		},
	},
}

// Roles возвращает каталог ролей в порядке отображения
func Roles() []Role {
	out := make([]Role, len(roles))
	copy(out, roles)
	return out
}

// Modes возвращает каталог режимов интервью
func Modes() []ModeInfo {
	out := make([]ModeInfo, len(modes))
	copy(out, modes)
	return out
}

// FindRole ищет роль по ID
func FindRole(id string) (Role, error) {
	for _, r := range roles {
		if r.ID == id {
			return r, nil
		}
	}
	return Role{}, fmt.Errorf("роль %q не найдена", id)
}

// RoleTitle возвращает название роли или сам ID, если роль неизвестна
func RoleTitle(id string) string {
	if r, err := FindRole(id); err == nil {
		return r.Title
	}
	return id
}
