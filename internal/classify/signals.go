package classify

// Default signal sets. The config file may override any of them; empty lists
// fall back to these.

var DefaultJuniorSignals = []string{
	"junior", "jr", "jr.", "entry level", "entry-level", "entry",
	"trainee", "graduate", "начинающий", "начальный",
	"0-1 year", "0-2 years", "1 year", "1+ year", "1-2 years",
	"no experience", "без опыта", "beginner",
}

var DefaultMiddleSignals = []string{
	"middle", "mid-level", "mid level", "intermediate",
	"2-3 years", "2-4 years", "3-5 years", "2+ years", "3+ years",
}

var DefaultSeniorSignals = []string{
	"senior", "sr.", "sr ", "lead", "principal", "staff engineer",
	"architect", "head of", "director", "manager", "vp",
	"vice president", "cto", "cfo", "chief", "c-level",
	"старший", "ведущий", "руководитель", "главный",
}

var DefaultITRoles = []string{
	"developer", "engineer", "programmer", "designer", "qa", "tester",
	"analyst", "frontend", "backend", "full-stack", "fullstack",
	"devops", "product manager", "data scientist", "data analyst",
	"mobile", "ios", "android", "react", "vue", "angular",
	"python", "javascript", "java", "php", "ruby", "go", "rust",
	"node", "web developer", "software", "support engineer",
	"разработчик", "программист", "инженер", "тестировщик",
}

var DefaultRemoteKeywords = []string{
	"remote", "удаленно", "удалённо", "work from home", "дистанционно", "wfh",
}

// DefaultSignals returns the built-in signal sets.
func DefaultSignals() Signals {
	return Signals{
		Junior:  DefaultJuniorSignals,
		Middle:  DefaultMiddleSignals,
		Senior:  DefaultSeniorSignals,
		ITRoles: DefaultITRoles,
		Remote:  DefaultRemoteKeywords,
	}
}
