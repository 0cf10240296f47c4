// Command seed writes a set of sample software description files into the
// catalog directory so the API has something to serve during local
// development.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type description struct {
	ShortDescription string `yaml:"shortDescription"`
	LongDescription  string `yaml:"longDescription"`
}

type legal struct {
	License string `yaml:"license"`
}

type localisation struct {
	AvailableLanguages []string `yaml:"availableLanguages"`
}

type record struct {
	Name              string                 `yaml:"name"`
	Description       map[string]description `yaml:"description"`
	Categories        []string               `yaml:"categories"`
	Platforms         []string               `yaml:"platforms"`
	Legal             legal                  `yaml:"legal"`
	DevelopmentStatus string                 `yaml:"developmentStatus"`
	SoftwareType      string                 `yaml:"softwareType"`
	URL               string                 `yaml:"url"`
	LandingURL        string                 `yaml:"landingURL"`
	ReleaseDate       string                 `yaml:"releaseDate"`
	SoftwareVersion   string                 `yaml:"softwareVersion"`
	Localisation      localisation           `yaml:"localisation"`
}

func main() {
	dir := os.Getenv("CATALOG_DIR")
	if dir == "" {
		dir = "yaml_files"
	}
	count := 50

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatalf("Failed to create catalog directory: %v", err)
	}

	categories := []string{"it-development", "collaboration", "document-management", "data-visualization", "communications"}
	platforms := []string{"web", "linux", "windows", "mac", "android", "ios"}
	licenses := []string{"MIT", "AGPL-3.0-only", "Apache-2.0", "EUPL-1.2", "GPL-3.0-or-later"}
	statuses := []string{"stable", "beta", "development"}
	types := []string{"standalone/web", "standalone/desktop", "library", "addon"}
	languages := []string{"en", "it", "de", "fr", "es"}

	log.Printf("Generating %d sample records in %s...", count, dir)

	for i := 0; i < count; i++ {
		name := fmt.Sprintf("Sample App %02d", i+1)
		lang := languages[rand.Intn(len(languages))]

		r := record{
			Name: name,
			Description: map[string]description{
				"en": {
					ShortDescription: fmt.Sprintf("%s does one thing well.", name),
					LongDescription:  fmt.Sprintf("%s is a sample application generated for local development of the catalog API.", name),
				},
			},
			Categories:        pick(categories, 1+rand.Intn(2)),
			Platforms:         pick(platforms, 1+rand.Intn(3)),
			Legal:             legal{License: licenses[rand.Intn(len(licenses))]},
			DevelopmentStatus: statuses[rand.Intn(len(statuses))],
			SoftwareType:      types[rand.Intn(len(types))],
			URL:               fmt.Sprintf("https://example.org/sample-app-%02d", i+1),
			LandingURL:        fmt.Sprintf("https://example.org/sample-app-%02d/home", i+1),
			ReleaseDate:       fmt.Sprintf("202%d-0%d-01", rand.Intn(5), 1+rand.Intn(9)),
			SoftwareVersion:   fmt.Sprintf("%d.%d.%d", 1+rand.Intn(3), rand.Intn(10), rand.Intn(10)),
			Localisation:      localisation{AvailableLanguages: []string{"en", lang}},
		}

		data, err := yaml.Marshal(r)
		if err != nil {
			log.Fatalf("Failed to marshal record: %v", err)
		}
		path := filepath.Join(dir, fmt.Sprintf("sample-app-%02d.yml", i+1))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
	}

	log.Printf("Done.")
}

func pick(values []string, n int) []string {
	shuffled := make([]string, len(values))
	copy(shuffled, values)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
