// Package prompt holds the fixed instruction templates that prefix the
// content sent for summarization.
package prompt

import (
	"fmt"
	"strings"
)

// Default template selectors.
const (
	Outline  = 0
	Detailed = 1
	Partial  = 2
)

var defaultTemplates = []string{
	"Provide an in-depth, summary of the following content in a structured outline. " +
		"Include any additional relevant information or insight applying the concepts of smart brevity. " +
		"Enhance the summary by incorporating a conclusion block when necessary to clarify or support explanations. " +
		"Ignore sponsorship messages and focus on the overall idea \n The output result should be in markdown markup\n",
	"system: I need you to create a comprehensive, detailed summary of the provided content in a clearly structured outline. " +
		"Make sure to add any significant information or insights that are related to smart brevity principles. " +
		"To strengthen the summary, don't hesitate to include a conclusion section if it helps in clarifying or supporting explanations. " +
		"Please specifically omit any messages pertaining to sponsorship, and prioritize the overarching idea. " +
		"The finalized product should be delivered in markdown format.",
	"system: I need you to create a comprehensive, detailed summary of the provided content in a clearly structured outline. " +
		"This is a partial input, therefore don't provide introduction or conclusions unless the content mentions it. " +
		"Please specifically omit any messages pertaining to sponsorship, and prioritize the overarching idea. " +
		"The finalized product should be delivered in markdown format with top level topics as headers and subtopics as items in a list. " +
		"Don't use enumerations.",
}

var defaultNames = map[string]int{
	"outline":  Outline,
	"detailed": Detailed,
	"partial":  Partial,
}

// UnknownPromptError is returned for a selector outside the catalog.
type UnknownPromptError struct {
	Selector string
	Size     int
}

func (e *UnknownPromptError) Error() string {
	return fmt.Sprintf("unknown prompt %s: catalog has %d templates (0-%d)", e.Selector, e.Size, e.Size-1)
}

// Catalog is an immutable, indexed set of prompt templates. Each template has
// an implicit trailing slot where the content is appended.
type Catalog struct {
	templates []string
	names     map[string]int
}

// New builds a catalog from templates. The slice is copied.
func New(templates ...string) *Catalog {
	return &Catalog{
		templates: append([]string(nil), templates...),
		names:     map[string]int{},
	}
}

// Default returns the built-in catalog with the outline, detailed and
// partial-input templates, also reachable by those names.
func Default() *Catalog {
	c := New(defaultTemplates...)
	for name, idx := range defaultNames {
		c.names[name] = idx
	}
	return c
}

// FromConfig returns the default catalog when templates is empty, otherwise
// a catalog over the configured templates.
func FromConfig(templates []string) *Catalog {
	if len(templates) == 0 {
		return Default()
	}
	return New(templates...)
}

// Template returns the template for selector.
func (c *Catalog) Template(selector int) (string, error) {
	if selector < 0 || selector >= len(c.templates) {
		return "", &UnknownPromptError{Selector: fmt.Sprint(selector), Size: len(c.templates)}
	}
	return c.templates[selector], nil
}

// Lookup resolves a named template to its selector.
func (c *Catalog) Lookup(name string) (int, error) {
	idx, ok := c.names[strings.ToLower(name)]
	if !ok {
		return 0, &UnknownPromptError{Selector: fmt.Sprintf("%q", name), Size: len(c.templates)}
	}
	return idx, nil
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	return len(c.templates)
}
