// Package termio adapts the rendering surface to a terminal: containers and
// text targets become labelled lines on a writer, classes become plain state
// the views can query back.
package termio

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"

	"github.com/zafahi/tralashop/internal/core/port"
)

var _ port.RenderSurface = (*Surface)(nil)

var (
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
	spacePattern = regexp.MustCompile(`\s+`)
)

// Surface keeps the last markup and class state per target and echoes every
// content change to the writer as readable text.
type Surface struct {
	mu      sync.Mutex
	w       io.Writer
	content map[string]string
	classes map[string]map[string]bool
}

func New(w io.Writer) *Surface {
	return &Surface{
		w:       w,
		content: make(map[string]string),
		classes: make(map[string]map[string]bool),
	}
}

func (s *Surface) SetContent(containerID, markup string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.content[containerID] = markup
	fmt.Fprintf(s.w, "[%s]\n%s\n", containerID, indent(stripMarkup(markup)))
}

func (s *Surface) SetText(targetID, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.content[targetID] = text
	fmt.Fprintf(s.w, "[%s] %s\n", targetID, text)
}

func (s *Surface) AddClass(targetID, class string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.classes[targetID] == nil {
		s.classes[targetID] = make(map[string]bool)
	}
	if !s.classes[targetID][class] {
		s.classes[targetID][class] = true
		fmt.Fprintf(s.w, "[%s] +%s\n", targetID, class)
	}
}

func (s *Surface) RemoveClass(targetID, class string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.classes[targetID][class] {
		delete(s.classes[targetID], class)
		fmt.Fprintf(s.w, "[%s] -%s\n", targetID, class)
	}
}

func (s *Surface) HasClass(targetID, class string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.classes[targetID][class]
}

// Content returns the last markup or text set on the target.
func (s *Surface) Content(targetID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.content[targetID]
}

// stripMarkup flattens markup into plain text: block boundaries become line
// breaks, remaining tags disappear, whitespace collapses.
func stripMarkup(markup string) string {
	for _, boundary := range []string{"</div>", "</h2>", "</h3>", "</h4>", "</p>", "</button>", "</form>"} {
		markup = strings.ReplaceAll(markup, boundary, boundary+"\n")
	}

	var lines []string
	for _, line := range strings.Split(markup, "\n") {
		line = tagPattern.ReplaceAllString(line, " ")
		line = strings.TrimSpace(spacePattern.ReplaceAllString(line, " "))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func indent(text string) string {
	if text == "" {
		return "  (empty)"
	}
	return "  " + strings.ReplaceAll(text, "\n", "\n  ")
}
