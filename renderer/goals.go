package renderer

import (
	"github.com/psahay/finplan"
)

// goalsReport is the data shape fed to the goals template.
type goalsReport struct {
	AsOf  finplan.Date
	Goals []*finplan.GoalProgress
}

// GoalsMarkdown renders the derived progress of every goal.
func GoalsMarkdown(on finplan.Date, goals []*finplan.GoalProgress) string {
	partials := map[string]string{
		"goal_row": "goal_row.md",
	}
	return renderTemplate("goals", "goals.md", partials, goalsReport{AsOf: on, Goals: goals})
}
