package publish

import (
	"strings"
	"testing"
	"time"

	"jobpulse/internal/model"
)

func TestRender_FullJob(t *testing.T) {
	posted := time.Date(2026, time.August, 14, 9, 0, 0, 0, time.UTC)
	job := model.Job{
		Title:      "Junior Go Developer",
		Company:    "Gopher Inc",
		Location:   "Worldwide",
		Salary:     "50000-75000 USD",
		Skills:     []string{"Go", "Docker"},
		URL:        "https://example.com/jobs/42",
		Source:     "remotive",
		PostedAt:   &posted,
		Employment: "full_time",
		Level:      model.LevelJunior,
	}

	msg := Render(job)

	for _, want := range []string{
		"🟢 <b>Junior Go Developer</b>",
		"Gopher Inc",
		"Worldwide",
		"50000-75000 USD",
		"Junior",
		"📅 <b>Дата публикации:</b> 14 авг 2026",
		"⏰ Полная занятость",
		"  • Go",
		"  • Docker",
		`<a href="https://example.com/jobs/42">`,
		"Источник: remotive",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestRender_EscapesHTML(t *testing.T) {
	job := model.Job{
		Title:   "C++ <senior> Developer",
		Company: "Ampersand & Sons",
		Level:   model.LevelMiddle,
	}

	msg := Render(job)

	if strings.Contains(msg, "<senior>") {
		t.Error("title HTML was not escaped")
	}
	if !strings.Contains(msg, "&lt;senior&gt;") {
		t.Error("expected escaped title in message")
	}
	if !strings.Contains(msg, "Ampersand &amp; Sons") {
		t.Error("expected escaped company in message")
	}
}

func TestRender_Placeholders(t *testing.T) {
	job := model.Job{
		Title:   "Developer",
		Company: "Acme",
		Level:   model.LevelUnknown,
	}

	msg := Render(job)

	for _, want := range []string{"Не указана", "Не указан", "Не указаны", "Описание не указано"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing placeholder %q", want)
		}
	}
	if !strings.Contains(msg, "⚪") {
		t.Error("unknown level should use the neutral emoji")
	}
	if !strings.Contains(msg, "Дата публикации:</b> Недавно") {
		t.Error("missing date should render as Недавно")
	}
	if !strings.Contains(msg, "⏰ Не указана") {
		t.Error("missing employment should render as Не указана")
	}
}

func TestFormatEmployment(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"full_time", "⏰ Полная занятость"},
		{"Полная занятость", "⏰ Полная занятость"},
		{"part-time", "⏱ Частичная занятость"},
		{"Частичная занятость", "⏱ Частичная занятость"},
		{"contract", "📝 Контракт"},
		{"Контракт", "📝 Контракт"},
		{"Стажировка", "⏰ Стажировка"},
		{"", "⏰ Не указана"},
	}
	for _, tc := range tests {
		if got := formatEmployment(tc.input); got != tc.want {
			t.Errorf("formatEmployment(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestFormatPostedDate(t *testing.T) {
	d := time.Date(2026, time.January, 3, 12, 0, 0, 0, time.UTC)
	if got := formatPostedDate(&d); got != "3 янв 2026" {
		t.Errorf("formatPostedDate = %q, want 3 янв 2026", got)
	}
	if got := formatPostedDate(nil); got != "Недавно" {
		t.Errorf("formatPostedDate(nil) = %q, want Недавно", got)
	}
}
