// Package docs holds the embedded user manual, one markdown file per topic.
// The set of topics is fixed at build time.
package docs

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.md
var pages embed.FS

// Topic returns the content of a single manual page.
func Topic(name string) (string, error) {
	content, err := pages.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// Topics concatenates the named manual pages in order. The name "*" expands
// to every topic.
func Topics(names ...string) (string, error) {
	var expanded []string
	for _, name := range names {
		if name == "*" {
			expanded = append(expanded, All()...)
			continue
		}
		expanded = append(expanded, name)
	}

	var b strings.Builder
	for _, name := range expanded {
		content, err := Topic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// All lists every topic except the readme, sorted. The embedded filesystem
// cannot change at runtime, so listing cannot fail.
func All() []string {
	entries, err := pages.ReadDir(".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name == "readme" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
