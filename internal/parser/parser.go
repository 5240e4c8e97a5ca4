// Package parser extracts post metadata from Markdown content with YAML
// frontmatter.
package parser

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Words-per-minute rate used for the reading-time label.
const readingRate = 200

// Result holds the output of parsing a Markdown post.
type Result struct {
	Frontmatter map[string]interface{}
	Body        string
	Title       string
	Description string
	PublishedAt time.Time
	Tags        []string
	HeroImage   any
	ReadingTime string
}

// Parse extracts frontmatter and derived post fields from raw Markdown
// bytes. Missing fields degrade to zero values rather than errors: a post
// without a date sorts as the zero time, a post without tags has none.
func Parse(data []byte) (*Result, error) {
	fm, body, err := splitFrontmatter(data)
	if err != nil {
		return nil, err
	}

	return &Result{
		Frontmatter: fm,
		Body:        body,
		Title:       deriveTitle(fm, body),
		Description: deriveDescription(fm, body),
		PublishedAt: parseDate(fm),
		Tags:        extractTags(fm),
		HeroImage:   heroImage(fm),
		ReadingTime: readingTime(body),
	}, nil
}

// splitFrontmatter separates YAML frontmatter (between leading ---
// delimiters) from the Markdown body. If no frontmatter is found the
// entire content is body; invalid YAML falls back the same way.
func splitFrontmatter(data []byte) (map[string]interface{}, string, error) {
	const delim = "---"
	trimmed := bytes.TrimLeft(data, "\n\r")

	if !bytes.HasPrefix(trimmed, []byte(delim)) {
		return nil, string(data), nil
	}

	rest := trimmed[len(delim):]
	idx := bytes.Index(rest, []byte("\n"+delim))
	if idx < 0 {
		// No closing delimiter — treat everything as body.
		return nil, string(data), nil
	}

	yamlBlock := rest[:idx]
	afterDelim := rest[idx+1+len(delim):]
	body := strings.TrimLeft(string(afterDelim), "\n\r")

	var fm map[string]interface{}
	if err := yaml.Unmarshal(yamlBlock, &fm); err != nil {
		return nil, string(data), nil
	}

	return fm, body, nil
}

// deriveTitle returns the frontmatter "title" if present, otherwise the
// first H1 heading, otherwise empty string.
func deriveTitle(fm map[string]interface{}, body string) string {
	if s := stringField(fm, "title"); s != "" {
		return s
	}
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(trimmed[2:])
		}
	}
	return ""
}

// deriveDescription returns the frontmatter "description" if present,
// otherwise the first non-heading paragraph line of the body.
func deriveDescription(fm map[string]interface{}, body string) string {
	if s := stringField(fm, "description"); s != "" {
		return s
	}
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		return trimmed
	}
	return ""
}

// parseDate reads the frontmatter "date" field. yaml.v3 already decodes
// ISO timestamps into time.Time; date-only strings are parsed here.
func parseDate(fm map[string]interface{}) time.Time {
	if fm == nil {
		return time.Time{}
	}
	switch v := fm["date"].(type) {
	case time.Time:
		return v
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02", "Jan 2 2006"} {
			if ts, err := time.Parse(layout, v); err == nil {
				return ts
			}
		}
	}
	return time.Time{}
}

// extractTags collects the frontmatter "tags" list, trimmed and deduplicated.
func extractTags(fm map[string]interface{}) []string {
	if fm == nil {
		return nil
	}
	list, ok := fm["tags"].([]interface{})
	if !ok {
		return nil
	}
	seen := make(map[string]struct{}, len(list))
	var out []string
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// heroImage returns the frontmatter "heroImage" value as-is. It is an
// opaque display payload; no shape is enforced.
func heroImage(fm map[string]interface{}) any {
	if fm == nil {
		return nil
	}
	return fm["heroImage"]
}

// readingTime returns a "N min read" label at readingRate words per
// minute, never less than one minute for non-empty bodies.
func readingTime(body string) string {
	words := len(strings.Fields(body))
	if words == 0 {
		return ""
	}
	mins := (words + readingRate - 1) / readingRate
	return fmt.Sprintf("%d min read", mins)
}

func stringField(fm map[string]interface{}, key string) string {
	if fm == nil {
		return ""
	}
	if s, ok := fm[key].(string); ok {
		return s
	}
	return ""
}
