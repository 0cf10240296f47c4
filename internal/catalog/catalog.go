package catalog

// Entry is the canonical, normalized form of one software description record.
// All scalar fields are plain strings (empty, never absent) and all list
// fields are non-nil slices, so every Entry is safe to serialize and filter
// without nil checks.
type Entry struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	ShortDescription  string         `json:"shortDescription"`
	LongDescription   string         `json:"longDescription"`
	Categories        []string       `json:"categories"`
	Platforms         []string       `json:"platforms"`
	License           string         `json:"license"`
	DevelopmentStatus string         `json:"developmentStatus"`
	SoftwareType      string         `json:"softwareType"`
	URL               string         `json:"url"`
	LandingURL        string         `json:"landingURL"`
	ReleaseDate       string         `json:"releaseDate"`
	SoftwareVersion   string         `json:"softwareVersion"`
	Languages         []string       `json:"languages"`
	SourceFile        string         `json:"sourceFile"`
	Raw               map[string]any `json:"raw"`
}

// Summary is the projection of an Entry returned by the list endpoint.
type Summary struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	ShortDescription  string   `json:"shortDescription"`
	Categories        []string `json:"categories"`
	Platforms         []string `json:"platforms"`
	License           string   `json:"license"`
	DevelopmentStatus string   `json:"developmentStatus"`
	SoftwareType      string   `json:"softwareType"`
	URL               string   `json:"url"`
	LandingURL        string   `json:"landingURL"`
	ReleaseDate       string   `json:"releaseDate"`
}

// Summary returns the list-endpoint projection of the entry.
func (e Entry) Summary() Summary {
	return Summary{
		ID:                e.ID,
		Name:              e.Name,
		ShortDescription:  e.ShortDescription,
		Categories:        e.Categories,
		Platforms:         e.Platforms,
		License:           e.License,
		DevelopmentStatus: e.DevelopmentStatus,
		SoftwareType:      e.SoftwareType,
		URL:               e.URL,
		LandingURL:        e.LandingURL,
		ReleaseDate:       e.ReleaseDate,
	}
}

// Catalog is an immutable snapshot of all loaded entries plus everything
// derived from them. It is built once by Load and never mutated afterwards,
// so it can be shared freely across concurrent readers.
type Catalog struct {
	// Entries is sorted by case-insensitive name.
	Entries []Entry
	// Index maps entry id to the entry. On duplicate ids the last loaded
	// file wins.
	Index map[string]Entry
	// Errors holds one human-readable message per file that failed to load.
	Errors []string
	// Facets lists every distinct filterable value observed in Entries.
	Facets Facets
}
