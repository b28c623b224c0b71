// Package org2typst converts Org-mode outline documents to Typst.
//
// # Quick Start
//
// For one-off conversions use Render, which needs no setup:
//
//	typ := org2typst.Render(orgText, org2typst.Options{
//	    DefaultAuthor: "Jane Doe",
//	    Bibliography:  "refs.bib",
//	})
//
// To pick a template or load one from disk, create a Converter:
//
//	conv, err := org2typst.NewConverter(
//	    org2typst.WithTemplate("article"),
//	    org2typst.WithAssetPath("/path/to/assets"),
//	    org2typst.WithBibliography("library.bib"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := conv.Convert(ctx, org2typst.Input{Org: orgText})
//
// The result carries the Typst text, the extracted title and author, a
// count of rewritten constructs, and Lint diagnostics.
//
// # Recognized Constructs
//
// A single left-to-right pass rewrites these constructs and leaves all
// other text untouched:
//
//	#+title: T  #+author: A     #show: project.with(title: "T", authors: ("A",))
//	\n***                       \n===
//	#+begin_src / #+end_src     ```
//	:PROPERTIES: :ID: x :END:   (removed)
//	#+anything else             (removed, through the end of the line)
//	/text/                      _text_
//	[[id:x][Label]]             #underline[Label]
//	``text''                    "text"
//	[cite:@key]                 key
//
// When two constructs could start at the same offset the one listed first
// wins. Only the first title declaration is honored; later ones are
// removed. A missing author falls back to Options.DefaultAuthor.
//
// # Output Layout
//
// The output is the template text, then the transformed body, then a blank
// line and a #bibliography directive. Templates must define a
// project(title:, authors:, date:, body) function.
package org2typst
