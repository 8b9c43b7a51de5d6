package domain

import (
	"regexp"
	"strconv"
	"strings"

	"missionctl/internal/platform/classify"
	"missionctl/internal/platform/markdown"
	"missionctl/internal/platform/slug"
)

type Column string

const (
	ColumnIdentified Column = "identified"
	ColumnRadar      Column = "radar"
	ColumnApplied    Column = "applied"
	ColumnInterview  Column = "interview"
	ColumnOffer      Column = "offer"
	ColumnClosed     Column = "closed"
)

// Columns is the board order.
var Columns = []Column{ColumnIdentified, ColumnRadar, ColumnApplied, ColumnInterview, ColumnOffer, ColumnClosed}

// ColumnPolicy checks terminal outcomes first so "offer declined" closes the
// card and "rejected after interview" never lands in interview.
var ColumnPolicy = classify.Policy{
	Rules: []classify.Rule{
		{Keyword: "reject", Bucket: string(ColumnClosed)},
		{Keyword: "withdr", Bucket: string(ColumnClosed)},
		{Keyword: "closed", Bucket: string(ColumnClosed)},
		{Keyword: "declin", Bucket: string(ColumnClosed)},
		{Keyword: "ghost", Bucket: string(ColumnClosed)},
		{Keyword: "no longer", Bucket: string(ColumnClosed)},
		{Keyword: "offer", Bucket: string(ColumnOffer)},
		{Keyword: "interview", Bucket: string(ColumnInterview)},
		{Keyword: "screen", Bucket: string(ColumnInterview)},
		{Keyword: "onsite", Bucket: string(ColumnInterview)},
		{Keyword: "technical", Bucket: string(ColumnInterview)},
		{Keyword: "applied", Bucket: string(ColumnApplied)},
		{Keyword: "submitted", Bucket: string(ColumnApplied)},
		{Keyword: "sent", Bucket: string(ColumnApplied)},
		{Keyword: "radar", Bucket: string(ColumnRadar)},
		{Keyword: "watch", Bucket: string(ColumnRadar)},
		{Keyword: "research", Bucket: string(ColumnRadar)},
	},
	Default: string(ColumnIdentified),
}

func ColumnFor(status string) Column {
	return Column(ColumnPolicy.Classify(status))
}

type Job struct {
	ID            string
	Company       string
	Role          string
	Status        string
	Column        Column
	ATSScore      *int
	NextAction    string
	Salary        string
	CompanyDomain string
	UpdatedAt     string
}

// ATSRecord is one tailored-CV submission with its score.
type ATSRecord struct {
	Company string
	Role    string
	Score   *int
	Date    string
}

var atsValue = regexp.MustCompile(`^(\d{1,3})\s*(?:%|/\s*100)?$`)

// ParseATS accepts "87", "87%" and "87/100". Anything else, or a value
// outside 0..100, has no score.
func ParseATS(raw string) *int {
	m := atsValue.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 0 || n > 100 {
		return nil
	}
	return &n
}

func JobID(company, role string) string {
	return slug.Make(strings.TrimSpace(company + " " + role))
}

// CompanyKey normalizes a company name for ATS lookups.
func CompanyKey(company string) string {
	return strings.ToLower(strings.TrimSpace(company))
}

// ParsePipeline maps the Company | Role | Status | ATS | Next Action | Salary |
// Domain | Updated table. Rows without a company are skipped.
func ParsePipeline(section string) []Job {
	out := make([]Job, 0)
	for _, row := range markdown.ParseTableRows(section) {
		company := markdown.Cell(row, 0)
		if company == "" {
			continue
		}
		role := markdown.Cell(row, 1)
		status := markdown.Cell(row, 2)
		out = append(out, Job{
			ID:            JobID(company, role),
			Company:       company,
			Role:          role,
			Status:        status,
			Column:        ColumnFor(status),
			ATSScore:      ParseATS(markdown.Cell(row, 3)),
			NextAction:    markdown.Cell(row, 4),
			Salary:        markdown.Cell(row, 5),
			CompanyDomain: markdown.Cell(row, 6),
			UpdatedAt:     markdown.Cell(row, 7),
		})
	}
	return out
}

// ParseCVHistory maps the Company | Role | ATS | Date table.
func ParseCVHistory(doc string) []ATSRecord {
	out := make([]ATSRecord, 0)
	for _, row := range markdown.ParseTableRows(doc) {
		company := markdown.Cell(row, 0)
		if company == "" {
			continue
		}
		out = append(out, ATSRecord{
			Company: company,
			Role:    markdown.Cell(row, 1),
			Score:   ParseATS(markdown.Cell(row, 2)),
			Date:    markdown.Cell(row, 3),
		})
	}
	return out
}

// LatestATS keeps the most recent scored record per company. Dates compare as
// YYYY-MM-DD strings; on equal dates the later record wins.
func LatestATS(records []ATSRecord) map[string]int {
	out := map[string]int{}
	dates := map[string]string{}
	for _, r := range records {
		if r.Score == nil {
			continue
		}
		key := CompanyKey(r.Company)
		if prev, ok := dates[key]; ok && r.Date < prev {
			continue
		}
		dates[key] = r.Date
		out[key] = *r.Score
	}
	return out
}

// Board groups jobs by column, keeping input order inside each column. Every
// column is present.
func Board(jobs []Job) map[Column][]Job {
	out := make(map[Column][]Job, len(Columns))
	for _, c := range Columns {
		out[c] = []Job{}
	}
	for _, j := range jobs {
		col := j.Column
		if _, ok := out[col]; !ok {
			col = ColumnFor(j.Status)
		}
		out[col] = append(out[col], j)
	}
	return out
}
