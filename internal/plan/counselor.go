package plan

import (
	"regexp"
	"strings"
)

// Counselor is one parsed entry from the AI's free-text listing.
type Counselor struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty,omitempty"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

// Placeholders for fields the AI omitted.
const (
	unknownName        = "Unknown Counselor"
	addressUnavailable = "Address not available"
	phoneUnavailable   = "Contact unavailable"
)

// Blocks start at markdown list markers: "- ", "* " or "1. " after a newline.
var listMarker = regexp.MustCompile(`\n\s*(?:[-*]|\d+\.)\s+`)

// ParseCounselors extracts counselor records from a free-text markdown
// listing. The response is split into blocks on list-marker boundaries, then
// each block is scanned line by line for Name/Specialty/Address/Phone labels
// (case-insensitive, "**" emphasis stripped). A block without a Name label
// takes its first unlabeled non-empty line as the name; blocks that yield no
// name at all are dropped silently. Malformed input never fails: worst case
// the result is empty.
func ParseCounselors(markdown string) []Counselor {
	if strings.TrimSpace(markdown) == "" {
		return nil
	}

	var counselors []Counselor
	blocks := listMarker.Split("\n"+markdown, -1)
	// blocks[0] is preamble before the first marker ("Here are some
	// counselors:"), never an entry.
	for _, block := range blocks[1:] {
		if strings.TrimSpace(block) == "" {
			continue
		}

		c := Counselor{Name: unknownName, Address: addressUnavailable, Phone: phoneUnavailable}
		for _, line := range strings.Split(block, "\n") {
			clean := strings.TrimSpace(strings.ReplaceAll(line, "**", ""))
			// Labels are matched after stripping emphasis, so "**Name**: X"
			// and "**Name:** X" both resolve.
			lower := strings.ToLower(clean)

			switch {
			case strings.Contains(lower, "name:"):
				if v := labelValue(clean, "name:"); v != "" {
					c.Name = v
				}
			case strings.Contains(lower, "specialty:"):
				c.Specialty = labelValue(clean, "specialty:")
			case strings.Contains(lower, "address:"):
				if v := labelValue(clean, "address:"); v != "" {
					c.Address = v
				}
			case strings.Contains(lower, "phone:"):
				if v := labelValue(clean, "phone:"); v != "" {
					c.Phone = v
				}
			case clean != "" && c.Name == unknownName:
				c.Name = clean
			}
		}

		if c.Name != unknownName {
			counselors = append(counselors, c)
		}
	}
	return counselors
}

// labelValue returns the text after the first case-insensitive occurrence of
// the label within the already-cleaned line.
func labelValue(clean, label string) string {
	idx := strings.Index(strings.ToLower(clean), label)
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(clean[idx+len(label):])
}
