package catalog

import "strings"

// Criteria is one catalog query: an optional free-text term plus per-facet
// token sets. An empty set means no constraint on that facet.
type Criteria struct {
	FreeText   string
	Categories map[string]bool
	Platforms  map[string]bool
	Licenses   map[string]bool
	Statuses   map[string]bool
	Types      map[string]bool
	Languages  map[string]bool
}

// ParseCriteria builds a Criteria from raw query-parameter strings. Facet
// parameters are comma-separated token lists; tokens are trimmed,
// lower-cased and empty tokens dropped.
func ParseCriteria(q, category, platform, license, status, softwareType, language string) Criteria {
	return Criteria{
		FreeText:   strings.ToLower(strings.TrimSpace(q)),
		Categories: parseTokens(category),
		Platforms:  parseTokens(platform),
		Licenses:   parseTokens(license),
		Statuses:   parseTokens(status),
		Types:      parseTokens(softwareType),
		Languages:  parseTokens(language),
	}
}

func parseTokens(s string) map[string]bool {
	set := map[string]bool{}
	for _, part := range strings.Split(s, ",") {
		token := strings.ToLower(strings.TrimSpace(part))
		if token != "" {
			set[token] = true
		}
	}
	return set
}

// Evaluate returns the entries matching c, preserving their relative order.
// All criteria combine with logical AND; entries were sorted at load time so
// no re-sorting happens here.
func Evaluate(entries []Entry, c Criteria) []Entry {
	matched := []Entry{}
	for _, e := range entries {
		if c.matches(e) {
			matched = append(matched, e)
		}
	}
	return matched
}

func (c Criteria) matches(e Entry) bool {
	if !matchesAny(e.Categories, c.Categories) {
		return false
	}
	if !matchesAny(e.Platforms, c.Platforms) {
		return false
	}
	if !matchesExact(e.License, c.Licenses) {
		return false
	}
	if !matchesExact(e.DevelopmentStatus, c.Statuses) {
		return false
	}
	if !matchesExact(e.SoftwareType, c.Types) {
		return false
	}
	if !matchesAny(e.Languages, c.Languages) {
		return false
	}
	if c.FreeText != "" {
		haystack := strings.ToLower(strings.Join([]string{
			e.Name, e.ShortDescription, e.LongDescription, e.URL,
		}, " "))
		if !strings.Contains(haystack, c.FreeText) {
			return false
		}
	}
	return true
}

// matchesAny implements any-of matching: pass when no tokens are required or
// the entry's values (lower-cased, empties skipped) intersect them.
func matchesAny(values []string, required map[string]bool) bool {
	if len(required) == 0 {
		return true
	}
	for _, v := range values {
		if v == "" {
			continue
		}
		if required[strings.ToLower(v)] {
			return true
		}
	}
	return false
}

// matchesExact is the single-valued variant: the entry's value itself must
// be one of the required tokens.
func matchesExact(value string, required map[string]bool) bool {
	if len(required) == 0 {
		return true
	}
	return required[strings.ToLower(value)]
}
