package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads every *.yml file in dir and builds a Catalog. Per-file failures
// are recorded in Catalog.Errors and never abort the batch; a missing
// directory yields an empty catalog with a single diagnostic, so the service
// can still start and report the problem through /health.
func Load(dir string) *Catalog {
	var entries []Entry
	errs := []string{}

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		errs = append(errs, fmt.Sprintf("YAML directory not found: %s", dir))
	} else {
		paths, _ := filepath.Glob(filepath.Join(dir, "*.yml"))
		sort.Strings(paths)
		for _, path := range paths {
			entry, err := loadFile(path)
			if err != nil {
				errs = append(errs, err.Error())
				continue
			}
			entries = append(entries, entry)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})

	index := make(map[string]Entry, len(entries))
	for _, e := range entries {
		index[e.ID] = e
	}

	return &Catalog{
		Entries: entries,
		Index:   index,
		Errors:  errs,
		Facets:  BuildFacets(entries),
	}
}

func loadFile(path string) (Entry, error) {
	name := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, fmt.Errorf("Failed to read %s: %v", name, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Entry{}, fmt.Errorf("Failed to read %s: %v", name, err)
	}

	root := resolve(&doc)
	if root == nil || root.Kind != yaml.MappingNode {
		return Entry{}, fmt.Errorf("Invalid YAML format in %s", name)
	}

	id := strings.TrimSuffix(name, filepath.Ext(name))
	return Normalize(id, name, root), nil
}
