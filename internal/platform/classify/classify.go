// Package classify maps free-text status values onto fixed buckets using an
// ordered keyword table.
package classify

import "strings"

// Rule sends any value containing Keyword to Bucket.
type Rule struct {
	Keyword string
	Bucket  string
}

// Policy is evaluated top to bottom; the first matching rule wins and values
// matching nothing land in Default.
type Policy struct {
	Rules   []Rule
	Default string
}

func (p Policy) Classify(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return p.Default
	}
	for _, rule := range p.Rules {
		if rule.Keyword != "" && strings.Contains(value, rule.Keyword) {
			return rule.Bucket
		}
	}
	return p.Default
}

// Buckets lists every bucket the policy can produce, default first, then in
// rule order without repeats.
func (p Policy) Buckets() []string {
	out := []string{p.Default}
	seen := map[string]struct{}{p.Default: {}}
	for _, rule := range p.Rules {
		if _, ok := seen[rule.Bucket]; ok {
			continue
		}
		seen[rule.Bucket] = struct{}{}
		out = append(out, rule.Bucket)
	}
	return out
}
