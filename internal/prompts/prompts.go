// Package prompts reads prompt files for batch assessment. A prompt file is
// a sequence of blank-line-separated blocks; the first line of each block is
// the category name and every following non-blank line is one prompt.
package prompts

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Category groups prompts under a named heading, in file order.
type Category struct {
	Name    string
	Prompts []string
}

// Set holds all categories parsed from one prompt file.
type Set struct {
	Categories []Category
}

// TotalPrompts returns the number of prompts across all categories.
func (s *Set) TotalPrompts() int {
	total := 0
	for _, c := range s.Categories {
		total += len(c.Prompts)
	}
	return total
}

// ParseFile reads and parses a prompt file from disk.
func ParseFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open prompts file: %w", err)
	}
	defer f.Close()

	set, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return set, nil
}

// Parse reads blank-line-separated category blocks. A blank line closes the
// current block; the next non-blank line starts a new category.
func Parse(r io.Reader) (*Set, error) {
	set := &Set{}
	var current *Category

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			current = nil
			continue
		}
		if current == nil {
			set.Categories = append(set.Categories, Category{Name: line})
			current = &set.Categories[len(set.Categories)-1]
			continue
		}
		current.Prompts = append(current.Prompts, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read prompts: %w", err)
	}

	return set, nil
}
