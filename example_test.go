package org2typst_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-org2typst"
)

// Example converts a small document with the default template.
func Example() {
	conv, err := org2typst.NewConverter(org2typst.WithBibliography("refs.bib"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), org2typst.Input{
		Org: "#+title: Notes #+author: Ada\n* Intro\nSee [cite:@knuth84].",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.Metadata.Title, "by", result.Metadata.Author)
	fmt.Println(strings.HasSuffix(result.Typst, `#bibliography("refs.bib")`))
	// Output:
	// Notes by Ada
	// true
}

// ExampleTransform shows the body rewrite without the template.
func ExampleTransform() {
	body := org2typst.Transform("intro\n** Details\n/note/ ``quoted'' [[id:42][Ref]]", org2typst.Options{})
	fmt.Println(body.Text)
	// Output:
	// intro
	// == Details
	// _note_ "quoted" #underline[Ref]
}

// ExampleLint reports problems the conversion would silently keep.
func ExampleLint() {
	for _, d := range org2typst.Lint("#+title: T\n#+begin_src cobol-ish\nMOVE A TO B\n") {
		fmt.Println(d)
	}
	// Output:
	// line 2: warning: unknown source language "cobol-ish"
	// line 2: warning: #+begin_src is never closed
}
