package classify

import (
	"strings"

	"jobpulse/internal/model"
)

// Signals holds the keyword sets the classifier scores against.
type Signals struct {
	Junior  []string // entry-level seniority terms
	Middle  []string // mid-level seniority terms
	Senior  []string // senior+ terms, take precedence over junior/middle
	ITRoles []string // role/technology terms establishing relevance
	Remote  []string // remote-work terms
}

// Classification is the verdict for one job.
type Classification struct {
	Level    model.Level
	Relevant bool // at least one IT role term matched
	Remote   bool // at least one remote term matched
}

// Classifier scores a job's raw text against keyword signal sets.
// Matching is case-insensitive substring matching; classification is a pure
// function of the job's text, so the same input always yields the same verdict.
type Classifier struct {
	junior []string
	middle []string
	senior []string
	roles  []string
	remote []string
}

// New builds a Classifier from the given signal sets. All terms are lowercased
// once up front.
func New(sig Signals) *Classifier {
	return &Classifier{
		junior: lowerAll(sig.Junior),
		middle: lowerAll(sig.Middle),
		senior: lowerAll(sig.Senior),
		roles:  lowerAll(sig.ITRoles),
		remote: lowerAll(sig.Remote),
	}
}

// Classify assigns a level and relevance verdict to the job.
// Senior signals veto junior/middle: a listing mentioning both "junior" and
// "5+ years senior" is Senior. With no seniority signal at all the level is
// Unknown.
func (c *Classifier) Classify(job model.Job) Classification {
	text := strings.ToLower(job.RawText)

	level := model.LevelUnknown
	switch {
	case containsAny(text, c.senior):
		level = model.LevelSenior
	case containsAny(text, c.middle):
		level = model.LevelMiddle
	case containsAny(text, c.junior):
		level = model.LevelJunior
	}

	return Classification{
		Level:    level,
		Relevant: containsAny(text, c.roles),
		Remote:   containsAny(text, c.remote),
	}
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if term != "" && strings.Contains(text, term) {
			return true
		}
	}
	return false
}

func lowerAll(terms []string) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = strings.ToLower(t)
	}
	return out
}
