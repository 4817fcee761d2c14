package report

import "strings"

// Renderable is anything that can emit its content into a Section.
// Implementations append lines and/or subsections; they must not retain
// the section beyond the call.
type Renderable interface {
	RenderTo(s *Section)
}

// element is the ordered union of the two things a Section can hold:
// a nested subsection or a plain text line. Exactly one field is set.
type element struct {
	sub  *Section
	line string
}

// Section is a named node in a report tree. It holds an ordered mix of
// text lines and nested subsections; order is insertion order.
//
// The zero value is not usable; construct via NewSection or AddSection.
type Section struct {
	title    string
	elements []element
}

// NewSection returns an empty section with the given title.
func NewSection(title string) *Section {
	return &Section{title: title}
}

// Title returns the section's title.
func (s *Section) Title() string { return s.title }

// AddSection creates a subsection with the given title, appends it in
// order, and returns it for further population.
func (s *Section) AddSection(title string) *Section {
	child := NewSection(title)
	s.elements = append(s.elements, element{sub: child})

	return child
}

// Add lets a Renderable emit its content directly into this section.
func (s *Section) Add(r Renderable) {
	r.RenderTo(s)
}

// AddText appends a plain text line to this section.
func (s *Section) AddText(line string) {
	s.elements = append(s.elements, element{line: line})
}

// Sections returns the direct subsections in insertion order.
// The returned slice is a copy; the subsections themselves are shared.
func (s *Section) Sections() []*Section {
	var subs []*Section
	for _, e := range s.elements {
		if e.sub != nil {
			subs = append(subs, e.sub)
		}
	}

	return subs
}

// Lines returns the direct text lines in insertion order.
func (s *Section) Lines() []string {
	var lines []string
	for _, e := range s.elements {
		if e.sub == nil {
			lines = append(lines, e.line)
		}
	}

	return lines
}

// String flattens the tree into indented plain text. Each nesting level
// indents by two spaces; titles precede their content. Deterministic for
// a given tree.
func (s *Section) String() string {
	var b strings.Builder
	s.write(&b, 0)

	return b.String()
}

// write renders this section at the given depth into b.
func (s *Section) write(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent)
	b.WriteString(s.title)
	b.WriteString("\n")
	for _, e := range s.elements {
		if e.sub != nil {
			e.sub.write(b, depth+1)
			continue
		}
		b.WriteString(indent)
		b.WriteString("  ")
		b.WriteString(e.line)
		b.WriteString("\n")
	}
}
