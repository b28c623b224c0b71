package org2typst

import (
	"strings"
)

// Match is one recognized construct and its byte span in the source.
type Match struct {
	Start     int
	End       int
	Construct Construct
}

// Scan returns the non-overlapping constructs of source in order.
//
// Each recognizer remembers its next match. At every step the earliest
// match wins, ties going to the recognizer listed first; the cursor then
// jumps past it and any recognizer whose cached match starts before the
// cursor searches again from there.
func Scan(source string) []Match {
	var matches []Match

	next := make([][]int, len(recognizers))
	done := make([]bool, len(recognizers))
	pos := 0

	for pos <= len(source) {
		best := -1
		for i := range recognizers {
			if done[i] {
				continue
			}
			if next[i] == nil || next[i][0] < pos {
				next[i] = findFrom(recognizers[i], source, pos)
				if next[i] == nil {
					done[i] = true
					continue
				}
			}
			if best < 0 || next[i][0] < next[best][0] {
				best = i
			}
		}
		if best < 0 {
			break
		}

		loc := next[best]
		matches = append(matches, Match{
			Start:     loc[0],
			End:       loc[1],
			Construct: recognizers[best].build(source, loc),
		})
		pos = loc[1]
		next[best] = nil
	}

	return matches
}

// findFrom runs r over source[pos:] and returns absolute submatch offsets.
func findFrom(r recognizer, source string, pos int) []int {
	loc := r.re.FindStringSubmatchIndex(source[pos:])
	if loc == nil {
		return nil
	}
	for i := range loc {
		if loc[i] >= 0 {
			loc[i] += pos
		}
	}
	return loc
}

// Transform rewrites every recognized construct of source into Typst and
// copies everything else through unchanged. It does not add the template
// or the bibliography; see Assemble.
func Transform(source string, opts Options) Body {
	opts = opts.withDefaults()

	body := Body{Stats: make(Stats)}
	var b strings.Builder
	b.Grow(len(source))

	last := 0
	for _, m := range Scan(source) {
		b.WriteString(source[last:m.Start])
		b.WriteString(render(m.Construct, opts, &body.Metadata))
		body.Stats[m.Construct.Kind()]++
		last = m.End
	}
	b.WriteString(source[last:])

	body.Text = b.String()
	return body
}

// render produces the Typst fragment for c. The first title declaration
// fills meta; later ones render as nothing.
func render(c Construct, opts Options, meta *Metadata) string {
	switch v := c.(type) {
	case TitleAuthor:
		if meta.Declared {
			return ""
		}
		author := strings.TrimRight(v.Author, " ")
		meta.Declared = true
		meta.Title = v.Title
		if !v.HasAuthor || author == "" {
			author = opts.DefaultAuthor
			meta.AuthorDefaulted = true
		}
		meta.Author = author
		return SetupCall(v.Title, author)
	case Heading:
		return "\n" + strings.Repeat("=", v.Depth)
	case Fence:
		return "```"
	case Drawer, Directive:
		return ""
	case Italic:
		return "_" + v.Text + "_"
	case CrossRef:
		return "#underline[" + v.Label + "]"
	case Quote:
		return `"` + v.Text + `"`
	case Citation:
		if v.Key == "" {
			return "error"
		}
		if opts.KeepCitationSigil {
			return "@" + v.Key
		}
		return v.Key
	default:
		return ""
	}
}
