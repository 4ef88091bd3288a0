package helpers

import (
	"regexp"
	"strings"
)

// ParsedName holds the components of a personal name.
type ParsedName struct {
	Given  string
	Family string
	Suffix string
}

// NameParser parses personal names into components.
type NameParser struct{}

var (
	// Suffixes that appear after a name
	suffixes = []string{"Jr.", "Jr", "Sr.", "Sr", "III", "II", "IV", "PhD", "Ph.D.", "MD", "M.D."}

	// Name prefixes (nobiliary particles)
	prefixes = []string{"van", "von", "de", "del", "della", "di", "da", "le", "la", "du", "des", "den", "der", "ter", "ten", "mc", "mac"}

	// Pattern for "Last, First Middle" format
	invertedNameRegex = regexp.MustCompile(`^([^,]+),\s*(.+)$`)
)

// Parse splits a creatorName such as "Doe, Jane" or "Jane van Doe" into
// given and family parts. Middle names stay with the given name.
func (p *NameParser) Parse(name string) ParsedName {
	name = CollapseSpace(name)
	if name == "" {
		return ParsedName{}
	}

	var result ParsedName

	if matches := invertedNameRegex.FindStringSubmatch(name); matches != nil {
		result.Family = strings.TrimSpace(matches[1])
		result.Given, result.Suffix = extractSuffix(strings.TrimSpace(matches[2]))
		return result
	}

	name, result.Suffix = extractSuffix(name)
	parts := strings.Fields(name)
	if len(parts) == 1 {
		result.Family = parts[0]
		return result
	}

	familyStart := len(parts) - 1
	for familyStart > 1 && isPrefix(parts[familyStart-1]) {
		familyStart--
	}
	result.Given = strings.Join(parts[:familyStart], " ")
	result.Family = strings.Join(parts[familyStart:], " ")
	return result
}

// extractSuffix extracts a suffix from a name string.
func extractSuffix(name string) (string, string) {
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, ", "+suffix) {
			return strings.TrimSuffix(name, ", "+suffix), suffix
		}
		if strings.HasSuffix(name, " "+suffix) {
			return strings.TrimSuffix(name, " "+suffix), suffix
		}
	}
	return name, ""
}

// isPrefix checks if a word is a nobiliary particle.
func isPrefix(word string) bool {
	lower := strings.ToLower(word)
	for _, prefix := range prefixes {
		if lower == prefix {
			return true
		}
	}
	return false
}
