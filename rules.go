package org2typst

import (
	"regexp"
	"strings"
)

// Kind identifies which construct a match belongs to.
type Kind int

// Construct kinds, in recognizer order.
const (
	KindTitleAuthor Kind = iota
	KindHeading
	KindFence
	KindDrawer
	KindDirective
	KindItalic
	KindCrossRef
	KindQuote
	KindCitation
)

var kindNames = [...]string{
	KindTitleAuthor: "title",
	KindHeading:     "heading",
	KindFence:       "fence",
	KindDrawer:      "drawer",
	KindDirective:   "directive",
	KindItalic:      "italic",
	KindCrossRef:    "crossref",
	KindQuote:       "quote",
	KindCitation:    "citation",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds returns every construct kind in recognizer order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Construct is a recognized piece of Org markup. The concrete types below
// form a closed set; Transform switches over them to render Typst.
type Construct interface {
	Kind() Kind
}

// TitleAuthor is a "#+title:" declaration, optionally followed by "#+author:".
type TitleAuthor struct {
	Title     string
	Author    string
	HasAuthor bool
}

// Heading is a newline followed by a run of asterisks.
type Heading struct {
	Depth int
}

// Fence is a "#+begin_src" or "#+end_src" keyword.
type Fence struct {
	Keyword string
}

// Drawer is a ":PROPERTIES: :ID: ... :END:" block.
type Drawer struct {
	ID string
}

// Directive is any other "#+" line.
type Directive struct {
	Line string
}

// Italic is /slash delimited/ text.
type Italic struct {
	Text string
}

// CrossRef is an "[[id:target][label]]" link.
type CrossRef struct {
	Target string
	Label  string
}

// Quote is ``typographic quoted'' text.
type Quote struct {
	Text string
}

// Citation is a "[cite:@key]" reference.
type Citation struct {
	Key string
}

func (TitleAuthor) Kind() Kind { return KindTitleAuthor }
func (Heading) Kind() Kind     { return KindHeading }
func (Fence) Kind() Kind       { return KindFence }
func (Drawer) Kind() Kind      { return KindDrawer }
func (Directive) Kind() Kind   { return KindDirective }
func (Italic) Kind() Kind      { return KindItalic }
func (CrossRef) Kind() Kind    { return KindCrossRef }
func (Quote) Kind() Kind       { return KindQuote }
func (Citation) Kind() Kind    { return KindCitation }

// Character classes shared by the patterns. Org files are UTF-8, so word and
// space characters follow Unicode rather than RE2's ASCII-only \w and \s.
const (
	wordClass  = `\p{L}\p{M}\p{Nd}\p{Nl}\p{Pc}\x{200C}\x{200D}`
	spaceClass = `\s\v\p{Z}\x{85}`
	sp         = `[` + spaceClass + `]`
)

// recognizer pairs a pattern with the constructor for its matches.
type recognizer struct {
	kind  Kind
	re    *regexp.Regexp
	build func(src string, loc []int) Construct
}

// group returns submatch n of loc, or "" when the group did not participate.
func group(src string, loc []int, n int) (string, bool) {
	if 2*n+1 >= len(loc) || loc[2*n] < 0 {
		return "", false
	}
	return src[loc[2*n]:loc[2*n+1]], true
}

// recognizers is ordered: when two patterns match at the same offset the
// earlier one wins.
var recognizers = []recognizer{
	{
		// Without an author the title must end its line, so a multi-word
		// title is left to the directive rule instead of matching in part.
		kind: KindTitleAuthor,
		re: regexp.MustCompile(`(?i:#\+title:)` + sp + `([` + wordClass + `-]+)` +
			`(?:` + sp + `(?i:#\+author:)` + sp + `([` + wordClass + ` ]+)|(?m:[ \t\r]*$))`),
		build: func(src string, loc []int) Construct {
			title, _ := group(src, loc, 1)
			author, ok := group(src, loc, 2)
			return TitleAuthor{Title: title, Author: author, HasAuthor: ok}
		},
	},
	{
		kind: KindHeading,
		re:   regexp.MustCompile(`\n(\*+)`),
		build: func(src string, loc []int) Construct {
			stars, _ := group(src, loc, 1)
			return Heading{Depth: len(stars)}
		},
	},
	{
		kind: KindFence,
		re:   regexp.MustCompile(`(?i:(#\+begin_src)` + sp + `|(#\+end_src))`),
		build: func(src string, loc []int) Construct {
			if kw, ok := group(src, loc, 1); ok {
				return Fence{Keyword: strings.ToLower(kw)}
			}
			kw, _ := group(src, loc, 2)
			return Fence{Keyword: strings.ToLower(kw)}
		},
	},
	{
		kind: KindDrawer,
		re: regexp.MustCompile(`:PROPERTIES:` + sp + `:ID:` + sp + `+([` + wordClass + `-]*)` +
			sp + `:END:`),
		build: func(src string, loc []int) Construct {
			id, _ := group(src, loc, 1)
			return Drawer{ID: id}
		},
	},
	{
		kind: KindDirective,
		re:   regexp.MustCompile(`#\+.+` + sp),
		build: func(src string, loc []int) Construct {
			return Directive{Line: src[loc[0]:loc[1]]}
		},
	},
	{
		kind: KindItalic,
		re:   regexp.MustCompile(`/([` + wordClass + ` ]+)/`),
		build: func(src string, loc []int) Construct {
			text, _ := group(src, loc, 1)
			return Italic{Text: text}
		},
	},
	{
		kind: KindCrossRef,
		re:   regexp.MustCompile(`\[\[id:([^\]\n]+)\]\[([` + wordClass + `-]+)\]\]`),
		build: func(src string, loc []int) Construct {
			target, _ := group(src, loc, 1)
			label, _ := group(src, loc, 2)
			return CrossRef{Target: target, Label: label}
		},
	},
	{
		kind: KindQuote,
		re:   regexp.MustCompile("``([" + wordClass + spaceClass + "]+)''"),
		build: func(src string, loc []int) Construct {
			text, _ := group(src, loc, 1)
			return Quote{Text: text}
		},
	},
	{
		kind: KindCitation,
		re:   regexp.MustCompile(`\[cite:@([` + wordClass + `-]+)\]`),
		build: func(src string, loc []int) Construct {
			key, _ := group(src, loc, 1)
			return Citation{Key: key}
		},
	},
}
