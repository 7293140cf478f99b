package report

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// nextHeading finds the start of the heading that terminates a spliced
// section: the next same-or-higher-level heading after it.
var nextHeading = regexp.MustCompile(`\n#{1,2} `)

// ReplaceSection splices section into doc. The first heading matching
// cfg.SectionPattern is replaced together with its content up to the
// next `#`/`##` heading or end of document; everything outside that
// span stays byte-identical. When no heading matches, the section is
// inserted before the first configured anchor heading, or appended at
// the end of the document.
func ReplaceSection(doc, section string, cfg Config) (string, error) {
	headingRe, err := regexp.Compile("(?m)" + cfg.SectionPattern)
	if err != nil {
		return "", fmt.Errorf("section pattern: %w", err)
	}
	if loc := headingRe.FindStringIndex(doc); loc != nil {
		end := len(doc)
		if next := nextHeading.FindStringIndex(doc[loc[1]:]); next != nil {
			end = loc[1] + next[0] // keep the newline before the next heading
		}
		return doc[:loc[0]] + section + doc[end:], nil
	}
	for _, anchor := range cfg.Anchors {
		if idx := strings.Index(doc, "\n"+anchor); idx >= 0 {
			return doc[:idx] + "\n" + section + "\n" + doc[idx:], nil
		}
	}
	return doc + "\n\n" + section + "\n", nil
}

// UpdateFile replaces the section in the document at path. The whole
// content is read, the whole replacement computed, and the whole result
// written; the file is never left partially updated.
func UpdateFile(path, section string, cfg Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	updated, err := ReplaceSection(string(b), section, cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
