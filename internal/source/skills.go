package source

import (
	"sort"
	"strings"
	"unicode"
)

const maxSkills = 5

// techStack is scanned against title+description to surface skills when the
// provider supplies no tags.
var techStack = []string{
	"Python", "JavaScript", "TypeScript", "React", "Vue", "Angular",
	"Node.js", "Django", "Flask", "FastAPI", "Express", "Next.js",
	"PostgreSQL", "MongoDB", "MySQL", "Redis", "SQLite",
	"Docker", "Kubernetes", "AWS", "Azure", "GCP",
	"Git", "CI/CD", "REST API", "GraphQL",
	"HTML", "CSS", "SASS", "Tailwind",
	"Figma", "Sketch",
	"Java", "C#", "Go", "Rust", "PHP", "Ruby", "Swift", "Kotlin",
}

// extractSkills merges provider tags with tech-stack keywords found in text.
// Tags longer than 24 characters are dropped (usually sentences, not skills).
// The result is sorted and capped at maxSkills for stable message rendering.
func extractSkills(tags []string, text string) []string {
	seen := make(map[string]bool)
	var skills []string

	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			skills = append(skills, s)
		}
	}

	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" && len(tag) < 25 {
			add(titleCase(tag))
		}
	}

	lower := strings.ToLower(text)
	for _, tech := range techStack {
		if strings.Contains(lower, strings.ToLower(tech)) {
			add(tech)
		}
	}

	sort.Strings(skills)
	if len(skills) > maxSkills {
		skills = skills[:maxSkills]
	}
	return skills
}

// titleCase capitalizes the first letter of each word, e.g. "react native"
// becomes "React Native".
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
