package parser

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

type sectionKind int

const (
	sectionScore sectionKind = iota
	sectionAssessment
	sectionStrengths
	sectionImprovements
	sectionExample
	sectionBreakdown
	sectionApproach
	sectionNextSteps
)

// heading builds a case-insensitive pattern for a section label at the start
// of a line. Markdown markers and "N." numbering may precede the keyword; the
// rest of the label line up to an optional colon is consumed with it.
func heading(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^[ \t#>*_]*(?:\d+[.)][ \t]*)?[ \t#*_]*(?:` + keyword + `)[^:\n]*:?[ \t*_]*`)
}

var headings = map[sectionKind]*regexp.Regexp{
	sectionScore:        heading(`overall[ \t]+score\b|score[ \t*_]*:`),
	sectionAssessment:   heading(`(?:overall[ \t]+)?(?:assessment|impression|summary)\b`),
	sectionStrengths:    heading(`(?:key[ \t]+)?strengths?\b`),
	sectionImprovements: heading(`areas?\b|(?:key[ \t]+)?improvements?\b`),
	sectionExample:      heading(`(?:an[ \t]+)?example\b`),
	sectionBreakdown:    heading(`score[ \t]+breakdown\b`),
	sectionApproach:     heading(`(?:recommended|model|ideal)[ \t]+(?:approach|solution)\b`),
	sectionNextSteps:    heading(`suggested\b|(?:recommended[ \t]+)?next[ \t]+steps\b`),
}

type span struct {
	kind       sectionKind
	start, end int
}

// document is raw model output with every known section heading located.
type document struct {
	text  string
	spans []span
}

func newDocument(raw string) *document {
	d := &document{text: stripFences(raw)}
	for kind, re := range headings {
		for _, loc := range re.FindAllStringIndex(d.text, -1) {
			d.spans = append(d.spans, span{kind: kind, start: loc[0], end: loc[1]})
		}
	}
	sort.Slice(d.spans, func(i, j int) bool {
		if d.spans[i].start == d.spans[j].start {
			return d.spans[i].kind < d.spans[j].kind
		}
		return d.spans[i].start < d.spans[j].start
	})
	return d
}

// section returns the body of the first heading of kind, ending at the next
// heading of any kind. ok is false when the heading does not occur.
func (d *document) section(kind sectionKind) (string, bool) {
	for _, s := range d.spans {
		if s.kind != kind {
			continue
		}
		end := len(d.text)
		for _, next := range d.spans {
			if next.start >= s.end {
				end = next.start
				break
			}
		}
		return strings.TrimSpace(d.text[s.end:end]), true
	}
	return "", false
}

// breakdownSection returns the body of the score breakdown. It ends at a
// heading of one of the stop kinds, at the overall score heading, or at any
// other heading whose line is not itself a "<category>: <int>" entry, so
// categories named like section labels stay in the block.
func (d *document) breakdownSection(stop ...sectionKind) (string, bool) {
	for _, s := range d.spans {
		if s.kind != sectionBreakdown {
			continue
		}
		end := len(d.text)
		for _, next := range d.spans {
			if next.start < s.end {
				continue
			}
			if next.kind == sectionScore || containsKind(stop, next.kind) || !breakdownLineRe.MatchString(d.lineAt(next.start)) {
				end = next.start
				break
			}
		}
		return strings.TrimSpace(d.text[s.end:end]), true
	}
	return "", false
}

func (d *document) lineAt(pos int) string {
	line := d.text[pos:]
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimRight(line, "\r")
}

func containsKind(kinds []sectionKind, k sectionKind) bool {
	for _, c := range kinds {
		if c == k {
			return true
		}
	}
	return false
}

// tail returns everything after the first heading of kind.
func (d *document) tail(kind sectionKind) (string, bool) {
	for _, s := range d.spans {
		if s.kind == kind {
			return strings.TrimSpace(d.text[s.end:]), true
		}
	}
	return "", false
}

var scoreRe = regexp.MustCompile(`(?i)(\d{1,3})[ \t]*(?:/[ \t]*100\b|out[ \t]+of[ \t]+100\b)`)

// firstScore returns the first integer written as N/100 or "N out of 100".
func firstScore(text string) int {
	m := scoreRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	return clampScore(atoi(m[1]))
}

var bulletRe = regexp.MustCompile(`^[ \t]*(?:[-•*–]+|\d+[.)])[ \t]*`)

// listItems splits a section body into lines with bullet markers removed.
func listItems(body string) []string {
	items := []string{}
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(bulletRe.ReplaceAllString(line, ""))
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

var breakdownLineRe = regexp.MustCompile(`^[ \t]*(?:[-•*–]+|\d+[.)])?[ \t]*[*_]*([A-Za-z][A-Za-z0-9 &/'’-]*?)[*_]*[ \t]*:[ \t]*[*_]*(\d{1,3})[ \t]*(?:/[ \t]*100)?[*_]*[ \t]*(?:[-–(].*)?$`)

// breakdown collects "<category>: <int>[/100]" lines, skipping the rest.
func breakdown(body string) map[string]int {
	scores := map[string]int{}
	for _, line := range strings.Split(body, "\n") {
		m := breakdownLineRe.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		scores[name] = clampScore(atoi(m[2]))
	}
	return scores
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

var fenceRe = regexp.MustCompile("```[a-zA-Z]*\n|```")

// stripFences removes markdown code fences such as ```text ... ```
func stripFences(text string) string {
	return strings.TrimSpace(fenceRe.ReplaceAllString(text, ""))
}
