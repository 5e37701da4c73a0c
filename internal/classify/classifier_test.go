package classify

import (
	"testing"

	"jobpulse/internal/model"
)

func testSignals() Signals {
	return Signals{
		Junior:  []string{"junior", "entry level", "trainee"},
		Middle:  []string{"middle", "2+ years"},
		Senior:  []string{"senior", "lead", "architect"},
		ITRoles: []string{"python", "django", "developer", "engineer"},
		Remote:  []string{"remote", "work from home"},
	}
}

func textJob(raw string) model.Job {
	return model.Job{Title: "t", Company: "c", RawText: raw}
}

func TestClassify_Levels(t *testing.T) {
	c := New(testSignals())

	tests := []struct {
		name string
		text string
		want model.Level
	}{
		{"junior signal", "Junior Python Developer, remote, Django", model.LevelJunior},
		{"middle signal", "Python developer, 2+ years experience", model.LevelMiddle},
		{"senior signal", "Senior Backend Engineer", model.LevelSenior},
		{"senior vetoes junior", "Junior Python Developer, remote, Django, 5+ years senior architect", model.LevelSenior},
		{"senior vetoes middle", "Middle developer reporting to the lead", model.LevelSenior},
		{"no seniority signal", "Python developer, remote", model.LevelUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(textJob(tt.text))
			if got.Level != tt.want {
				t.Errorf("Classify(%q).Level = %s, want %s", tt.text, got.Level, tt.want)
			}
		})
	}
}

func TestClassify_Relevance(t *testing.T) {
	c := New(testSignals())

	got := c.Classify(textJob("Junior Accountant, remote"))
	if got.Relevant {
		t.Error("expected accountant to be irrelevant (no IT role term)")
	}
	if got.Level != model.LevelJunior {
		t.Errorf("level = %s, want Junior (level is independent of relevance)", got.Level)
	}

	got = c.Classify(textJob("Junior Python Developer, remote, Django"))
	if !got.Relevant {
		t.Error("expected python/django listing to be relevant")
	}
}

func TestClassify_RemoteDetection(t *testing.T) {
	c := New(testSignals())

	if got := c.Classify(textJob("Python developer, remote")); !got.Remote {
		t.Error("expected remote=true for text containing 'remote'")
	}
	if got := c.Classify(textJob("Python developer, onsite Berlin")); got.Remote {
		t.Error("expected remote=false for onsite listing")
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	c := New(Signals{
		Junior:  []string{"JUNIOR"},
		ITRoles: []string{"PyThOn"},
	})

	got := c.Classify(textJob("jUnIoR python developer"))
	if !got.Relevant || got.Level != model.LevelJunior {
		t.Errorf("case-insensitive match failed: %+v", got)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	c := New(testSignals())
	job := textJob("Junior Python Developer, remote, Django")

	first := c.Classify(job)
	second := c.Classify(job)
	if first != second {
		t.Errorf("classification not deterministic: %+v vs %+v", first, second)
	}
}

func TestClassify_SeniorPhraseFlipsJuniorText(t *testing.T) {
	// Junior text classifies Junior; appending a senior phrase flips it
	// to Senior.
	c := New(testSignals())

	base := "Junior Python Developer, remote, Django"
	got := c.Classify(textJob(base))
	if !got.Relevant || got.Level != model.LevelJunior {
		t.Fatalf("base text: got %+v, want relevant Junior", got)
	}

	got = c.Classify(textJob(base + " 5+ years senior architect"))
	if got.Level != model.LevelSenior {
		t.Errorf("appended senior phrase: level = %s, want Senior", got.Level)
	}
}
