package catalog

import (
	"encoding/base64"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Normalize converts one parsed YAML document into an Entry. It never fails:
// absent or wrongly typed fields degrade to empty strings and empty slices.
// The id is supplied by the caller (the source file's base name), never
// derived from record content.
func Normalize(id, sourceFile string, root *yaml.Node) Entry {
	root = resolve(root)
	desc := mapChild(root, "description")

	short, long := pickDescription(desc)

	return Entry{
		ID:                id,
		Name:              scalarField(root, "name"),
		ShortDescription:  short,
		LongDescription:   long,
		Categories:        stringList(mapChild(root, "categories")),
		Platforms:         stringList(mapChild(root, "platforms")),
		License:           scalarField(mapChild(root, "legal"), "license"),
		DevelopmentStatus: scalarField(root, "developmentStatus"),
		SoftwareType:      scalarField(root, "softwareType"),
		URL:               scalarField(root, "url"),
		LandingURL:        scalarField(root, "landingURL"),
		ReleaseDate:       scalarField(root, "releaseDate"),
		SoftwareVersion:   scalarField(root, "softwareVersion"),
		Languages:         extractLanguages(root, desc),
		SourceFile:        sourceFile,
		Raw:               rawMap(root),
	}
}

// resolve follows document and alias nodes down to the node that carries
// actual content.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch n.Kind {
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return nil
			}
			n = n.Content[0]
		case yaml.AliasNode:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}

// mapChild returns the value node for key, or nil when n is not a mapping or
// the key is absent.
func mapChild(n *yaml.Node, key string) *yaml.Node {
	n = resolve(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

// scalarValue stringifies a scalar node. Binary scalars are base64-decoded
// with invalid UTF-8 byte sequences replaced by U+FFFD; if the base64 text
// itself is broken the raw scalar text is used verbatim. Non-scalar and null
// nodes yield "".
func scalarValue(n *yaml.Node) string {
	n = resolve(n)
	if n == nil || n.Kind != yaml.ScalarNode || n.Tag == "!!null" {
		return ""
	}
	if n.Tag == "!!binary" {
		return decodeBinary(n.Value)
	}
	return n.Value
}

func decodeBinary(value string) string {
	// The YAML spec allows whitespace inside base64 content.
	compact := strings.Join(strings.Fields(value), "")
	decoded, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		return value
	}
	return strings.ToValidUTF8(string(decoded), "�")
}

// scalarField reads key from a mapping and trims the result.
func scalarField(n *yaml.Node, key string) string {
	return strings.TrimSpace(scalarValue(mapChild(n, key)))
}

// stringList coerces a node into a list of strings: sequences keep their
// element order with null elements dropped, and any other non-null value is
// wrapped into a one-element list. Every kept element is stringified, even
// nested mappings and sequences.
func stringList(n *yaml.Node) []string {
	n = resolve(n)
	if n == nil || n.Tag == "!!null" {
		return []string{}
	}
	if n.Kind != yaml.SequenceNode {
		return []string{stringifyNode(n)}
	}
	out := make([]string, 0, len(n.Content))
	for _, item := range n.Content {
		item = resolve(item)
		if item == nil || item.Tag == "!!null" {
			continue
		}
		out = append(out, stringifyNode(item))
	}
	return out
}

// stringifyNode renders any node as a string: scalars through the usual
// permissive decode, collections through a compact YAML re-encode.
func stringifyNode(n *yaml.Node) string {
	if n.Kind == yaml.ScalarNode {
		return scalarValue(n)
	}
	data, err := yaml.Marshal(n)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// pickDescription selects the short and long description from the
// language-keyed description mapping: the "en" block when present, otherwise
// the first mapping-valued block in document order.
func pickDescription(desc *yaml.Node) (string, string) {
	desc = resolve(desc)
	if desc == nil || desc.Kind != yaml.MappingNode {
		return "", ""
	}
	if en := mapChild(desc, "en"); en != nil {
		return scalarField(en, "shortDescription"), scalarField(en, "longDescription")
	}
	for i := 0; i+1 < len(desc.Content); i += 2 {
		block := resolve(desc.Content[i+1])
		if block != nil && block.Kind == yaml.MappingNode {
			return scalarField(block, "shortDescription"), scalarField(block, "longDescription")
		}
	}
	return "", ""
}

// extractLanguages unions the description mapping's language keys with the
// declared localisation.availableLanguages list and returns them sorted.
func extractLanguages(root, desc *yaml.Node) []string {
	set := map[string]struct{}{}
	desc = resolve(desc)
	if desc != nil && desc.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(desc.Content); i += 2 {
			set[desc.Content[i].Value] = struct{}{}
		}
	}
	available := resolve(mapChild(mapChild(root, "localisation"), "availableLanguages"))
	if available != nil && available.Kind == yaml.SequenceNode {
		for _, item := range available.Content {
			if lang := scalarValue(item); lang != "" {
				set[lang] = struct{}{}
			}
		}
	}
	return sortedSet(set)
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// rawMap converts the document into plain Go values for the detail endpoint.
// Binary scalars get the same permissive decode as everywhere else.
func rawMap(root *yaml.Node) map[string]any {
	root = resolve(root)
	if root == nil || root.Kind != yaml.MappingNode {
		return map[string]any{}
	}
	m, _ := nodeToAny(root).(map[string]any)
	if m == nil {
		return map[string]any{}
	}
	return m
}

func nodeToAny(n *yaml.Node) any {
	n = resolve(n)
	if n == nil {
		return nil
	}
	switch n.Kind {
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			m[n.Content[i].Value] = nodeToAny(n.Content[i+1])
		}
		return m
	case yaml.SequenceNode:
		s := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			s = append(s, nodeToAny(item))
		}
		return s
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!null":
			return nil
		case "!!bool":
			if b, err := strconv.ParseBool(n.Value); err == nil {
				return b
			}
		case "!!int":
			if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
				return i
			}
		case "!!float":
			if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
				return f
			}
		case "!!binary":
			return decodeBinary(n.Value)
		}
		return n.Value
	default:
		return nil
	}
}
