package catalog

// Facets holds the distinct values observed for each filterable attribute,
// each list sorted in byte order.
type Facets struct {
	Categories          []string `json:"categories"`
	Platforms           []string `json:"platforms"`
	Licenses            []string `json:"licenses"`
	DevelopmentStatuses []string `json:"developmentStatuses"`
	SoftwareTypes       []string `json:"softwareTypes"`
	Languages           []string `json:"languages"`
}

// BuildFacets derives the filter vocabulary from a set of entries. It is
// pure and order-independent: the same entries yield the same facets no
// matter how they are arranged.
func BuildFacets(entries []Entry) Facets {
	categories := map[string]struct{}{}
	platforms := map[string]struct{}{}
	licenses := map[string]struct{}{}
	statuses := map[string]struct{}{}
	types := map[string]struct{}{}
	languages := map[string]struct{}{}

	for _, e := range entries {
		for _, v := range e.Categories {
			categories[v] = struct{}{}
		}
		for _, v := range e.Platforms {
			platforms[v] = struct{}{}
		}
		for _, v := range e.Languages {
			languages[v] = struct{}{}
		}
		if e.License != "" {
			licenses[e.License] = struct{}{}
		}
		if e.DevelopmentStatus != "" {
			statuses[e.DevelopmentStatus] = struct{}{}
		}
		if e.SoftwareType != "" {
			types[e.SoftwareType] = struct{}{}
		}
	}

	return Facets{
		Categories:          sortedSet(categories),
		Platforms:           sortedSet(platforms),
		Licenses:            sortedSet(licenses),
		DevelopmentStatuses: sortedSet(statuses),
		SoftwareTypes:       sortedSet(types),
		Languages:           sortedSet(languages),
	}
}
