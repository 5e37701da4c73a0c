package publish

import (
	"fmt"
	"html"
	"strings"
	"time"

	"jobpulse/internal/model"
)

func levelEmoji(level model.Level) string {
	switch level {
	case model.LevelJunior:
		return "🟢"
	case model.LevelMiddle:
		return "🟡"
	case model.LevelSenior:
		return "🔴"
	}
	return "⚪"
}

// Render formats a job as an HTML Telegram message. All job-derived text is
// escaped; the channel posts in Russian, matching its audience.
func Render(job model.Job) string {
	salary := job.Salary
	if salary == "" {
		salary = "Не указана"
	}
	location := job.Location
	if location == "" {
		location = "Remote"
	}
	description := job.Description
	if description == "" {
		description = "Описание не указано"
	}
	level := string(job.Level)
	if job.Level == model.LevelUnknown || job.Level == "" {
		level = "Не указан"
	}

	parts := []string{
		fmt.Sprintf("%s <b>%s</b>", levelEmoji(job.Level), html.EscapeString(job.Title)),
		"",
		"🏢 <b>Компания:</b> " + html.EscapeString(job.Company),
		"📍 <b>Локация:</b> " + html.EscapeString(location),
		"💵 <b>Зарплата:</b> " + html.EscapeString(salary),
		"🎯 <b>Уровень:</b> " + html.EscapeString(level),
		"📅 <b>Дата публикации:</b> " + formatPostedDate(job.PostedAt),
		formatEmployment(job.Employment),
		"",
		"📋 <b>Описание:</b>",
		html.EscapeString(description),
		"",
		"<b>🛠 Навыки:</b>",
	}

	if len(job.Skills) > 0 {
		for _, skill := range job.Skills {
			parts = append(parts, "  • "+html.EscapeString(skill))
		}
	} else {
		parts = append(parts, "  Не указаны")
	}

	parts = append(parts,
		"",
		fmt.Sprintf(`🔗 <a href="%s">Откликнуться на вакансию</a>`, html.EscapeString(job.URL)),
		"📌 Источник: "+html.EscapeString(job.Source),
	)

	return strings.Join(parts, "\n")
}

var monthsRu = [...]string{
	"янв", "фев", "мар", "апр", "май", "июн",
	"июл", "авг", "сен", "окт", "ноя", "дек",
}

func formatPostedDate(t *time.Time) string {
	if t == nil {
		return "Недавно"
	}
	return fmt.Sprintf("%d %s %d", t.Day(), monthsRu[t.Month()-1], t.Year())
}

func formatEmployment(emp string) string {
	lower := strings.ToLower(emp)
	switch {
	case strings.Contains(lower, "full") || strings.Contains(lower, "полная"):
		return "⏰ Полная занятость"
	case strings.Contains(lower, "part") || strings.Contains(lower, "частичная"):
		return "⏱ Частичная занятость"
	case strings.Contains(lower, "contract") || strings.Contains(lower, "контракт"):
		return "📝 Контракт"
	case emp != "":
		return "⏰ " + html.EscapeString(emp)
	}
	return "⏰ Не указана"
}
