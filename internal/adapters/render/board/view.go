package board

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/jobboard-cli/internal/application"
	"github.com/bnema/jobboard-cli/internal/domain"
)

const descriptionWidth = 72

type RenderOptions struct {
	Now time.Time
}

func renderSearch(result application.SearchResult, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Job Offers"),
		s.header.Render(pageSummary(result)),
	}
	if note := sourceNote(result.Source, s); note != "" {
		lines = append(lines, note)
	}

	if len(result.Jobs) == 0 {
		lines = append(lines, s.empty.Render("No job offers match your search."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, job := range result.Jobs {
		lines = append(lines, s.section.Render(renderJobSummary(job, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func pageSummary(result application.SearchResult) string {
	summary := fmt.Sprintf("results: %d", result.Total)
	if result.Page.Size <= 0 || result.Total == 0 {
		return summary
	}

	pages := int(math.Ceil(float64(result.Total) / float64(result.Page.Size)))
	return fmt.Sprintf("%s (page %d of %d)", summary, result.Page.Number, pages)
}

func sourceNote(source application.Source, s styles) string {
	if source != application.SourceFallback {
		return ""
	}
	return s.fallback.Render("offline: showing the local demo catalog")
}

func renderJobSummary(job domain.JobPosting, opts RenderOptions, s styles) string {
	title := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.job.Render(job.Title),
		" ",
		s.meta.Render("#"+job.ID),
	)

	parts := []string{title, s.company.Render(companyLine(job))}

	meta := []string{s.badge.Render(job.Type.Label())}
	if salary := formatSalary(job.Salary); salary != "" {
		meta = append(meta, salary)
	}
	if posted := formatPosted(job.CreatedAt, opts.Now); posted != "" {
		meta = append(meta, posted)
	}
	parts = append(parts, s.meta.Render(strings.Join(meta, " · ")))

	if summary := truncate(job.Description, descriptionWidth); summary != "" {
		parts = append(parts, s.detail.Render(summary))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func companyLine(job domain.JobPosting) string {
	location := strings.TrimSpace(job.Location)
	if location == "" {
		location = "location n/a"
	}
	if !job.HasCompany() {
		return location
	}
	return fmt.Sprintf("%s · %s", job.Company.Name, location)
}

func renderJob(detail application.JobDetail, opts RenderOptions, s styles) string {
	job := detail.Job
	lines := []string{s.title.Render(job.Title)}
	if note := sourceNote(detail.Source, s); note != "" {
		lines = append(lines, note)
	}

	lines = append(lines,
		field("location", job.Location, s),
		field("type", job.Type.Label(), s),
	)
	if salary := formatSalary(job.Salary); salary != "" {
		lines = append(lines, field("salary", salary, s))
	}
	if posted := formatPosted(job.CreatedAt, opts.Now); posted != "" {
		lines = append(lines, field("posted", posted, s))
	}

	if description := strings.TrimSpace(job.Description); description != "" {
		lines = append(lines, s.section.Render(s.detail.Render(description)))
	}

	if len(job.Requirements) > 0 {
		requirements := []string{s.label.Render("Requirements")}
		for _, requirement := range job.Requirements {
			requirements = append(requirements, s.bullet.Render("  - ")+s.detail.Render(requirement))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, requirements...)))
	}

	if job.HasCompany() {
		lines = append(lines, s.section.Render(renderCompany(*job.Company, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderCompany(company domain.Company, s styles) string {
	parts := []string{s.label.Render("About " + company.Name)}
	if company.Industry != "" {
		parts = append(parts, field("industry", company.Industry, s))
	}
	if company.Website != "" {
		parts = append(parts, field("website", company.Website, s))
	}
	if description := strings.TrimSpace(company.Description); description != "" {
		parts = append(parts, s.detail.Render(description))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderFacets(result application.FacetsResult, s styles) string {
	lines := []string{s.title.Render("Filters")}
	if note := sourceNote(result.Source, s); note != "" {
		lines = append(lines, note)
	}

	jobTypes := make([]string, 0, len(result.Facets.JobTypes))
	for _, jobType := range result.Facets.JobTypes {
		jobTypes = append(jobTypes, fmt.Sprintf("%s (%s)", jobType.Label(), jobType))
	}

	lines = append(lines,
		s.section.Render(facetBlock("Locations", result.Facets.Locations, s)),
		s.section.Render(facetBlock("Industries", result.Facets.Industries, s)),
		s.section.Render(facetBlock("Job types", jobTypes, s)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func facetBlock(name string, values []string, s styles) string {
	parts := []string{s.label.Render(name)}
	if len(values) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(parts, s.empty.Render("  none"))...)
	}
	for _, value := range values {
		parts = append(parts, s.bullet.Render("  - ")+s.detail.Render(value))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderSession(status application.SessionStatus, opts RenderOptions, s styles) string {
	session := status.Session
	lines := []string{s.title.Render("Session")}

	switch session.State() {
	case domain.SessionLoggedIn:
		lines = append(lines, s.ok.Render("logged in"))
	case domain.SessionLoggingIn:
		lines = append(lines, s.meta.Render("logging in"))
	default:
		lines = append(lines, s.empty.Render("logged out"))
	}

	if session.Error != "" {
		lines = append(lines, s.warning.Render(session.Error))
	}

	if session.IsAuthenticated {
		actor := session.Actor
		lines = append(lines,
			field("kind", string(actor.Kind()), s),
			field("name", actor.DisplayName(), s),
			field("email", actor.Email(), s),
			field("id", actor.ID(), s),
		)
	}

	if status.HasToken {
		lines = append(lines, field("token", tokenLine(status, opts.Now), s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func tokenLine(status application.SessionStatus, now time.Time) string {
	kind := "api"
	if status.OfflineToken {
		kind = "offline"
		if status.TokenVerified {
			kind = "offline (verified)"
		}
	}
	if status.TokenExpiresAt.IsZero() {
		return kind + ", no expiry"
	}
	return fmt.Sprintf("%s, %s", kind, formatExpiry(status.TokenExpiresAt, now))
}

func renderApplication(app domain.Application, s styles) string {
	lines := []string{
		s.ok.Render("Application submitted"),
		field("job", app.JobID, s),
		field("status", string(app.Status), s),
	}
	if app.ID != "" {
		lines = append(lines, field("reference", app.ID, s))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func field(name, value string, s styles) string {
	if strings.TrimSpace(value) == "" {
		value = "n/a"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render(name+":"), " ", s.detail.Render(value))
}

func formatSalary(salary *domain.Salary) string {
	if salary == nil || (salary.Min == 0 && salary.Max == 0) {
		return ""
	}

	currency := strings.TrimSpace(salary.Currency)
	switch {
	case salary.Min > 0 && salary.Max > 0 && salary.Min != salary.Max:
		return strings.TrimSpace(fmt.Sprintf("%s - %s %s", formatAmount(salary.Min), formatAmount(salary.Max), currency))
	case salary.Max > 0:
		return strings.TrimSpace(fmt.Sprintf("up to %s %s", formatAmount(salary.Max), currency))
	default:
		return strings.TrimSpace(fmt.Sprintf("from %s %s", formatAmount(salary.Min), currency))
	}
}

func formatAmount(amount float64) string {
	whole := strconv.FormatInt(int64(math.Round(amount)), 10)
	if len(whole) <= 3 {
		return whole
	}

	var b strings.Builder
	lead := len(whole) % 3
	if lead > 0 {
		b.WriteString(whole[:lead])
	}
	for i := lead; i < len(whole); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(whole[i : i+3])
	}
	return b.String()
}

func formatPosted(createdAt, now time.Time) string {
	if createdAt.IsZero() {
		return ""
	}
	if now.IsZero() || createdAt.After(now) {
		return "posted " + createdAt.Format("02 Jan 2006")
	}

	days := int(now.Sub(createdAt).Hours() / 24)
	switch days {
	case 0:
		return "posted today"
	case 1:
		return "posted yesterday"
	default:
		return fmt.Sprintf("posted %d days ago", days)
	}
}

func formatExpiry(expiresAt, now time.Time) string {
	if now.IsZero() {
		return "expires " + expiresAt.Format(time.RFC3339)
	}
	if !expiresAt.After(now) {
		return "expired"
	}

	remaining := expiresAt.Sub(now)
	if remaining < 24*time.Hour {
		hours := int(math.Ceil(remaining.Hours()))
		if hours < 1 {
			hours = 1
		}
		suffix := "hours"
		if hours == 1 {
			suffix = "hour"
		}
		return fmt.Sprintf("expires in %d %s (%s)", hours, suffix, expiresAt.Format("15:04"))
	}

	days := int(math.Ceil(remaining.Hours() / 24))
	suffix := "days"
	if days == 1 {
		suffix = "day"
	}

	return fmt.Sprintf("expires in %d %s (%s)", days, suffix, expiresAt.Format("15:04 on 02 Jan"))
}

func truncate(text string, width int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	return strings.TrimSpace(string(runes[:width-3])) + "..."
}
