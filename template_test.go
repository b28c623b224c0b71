package org2typst

import (
	"strings"
	"testing"

	"github.com/alnah/go-org2typst/internal/assets"
)

func TestSetupCall(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		title  string
		author string
		want   string
	}{
		{"plain", "MyDoc", "Jane Doe", `#show: project.with(title: "MyDoc", authors: ("Jane Doe",))`},
		{"quote escaped", `a"b`, "x", `#show: project.with(title: "a\"b", authors: ("x",))`},
		{"backslash escaped", "t", `c\d`, `#show: project.with(title: "t", authors: ("c\\d",))`},
		{"empty values", "", "", `#show: project.with(title: "", authors: ("",))`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SetupCall(tt.title, tt.author); got != tt.want {
				t.Errorf("SetupCall(%q, %q) = %q, want %q", tt.title, tt.author, got, tt.want)
			}
		})
	}
}

func TestBibliographyDirective(t *testing.T) {
	t.Parallel()

	if got := BibliographyDirective("refs.bib"); got != `#bibliography("refs.bib")` {
		t.Errorf("BibliographyDirective() = %q", got)
	}
	if got := BibliographyDirective(`my "refs".bib`); got != `#bibliography("my \"refs\".bib")` {
		t.Errorf("BibliographyDirective() = %q", got)
	}
}

func TestAssemble(t *testing.T) {
	t.Parallel()

	got := Assemble("TEMPLATE\n", "BODY", "lib.bib")
	want := "TEMPLATE\nBODY\n\n#bibliography(\"lib.bib\")"
	if got != want {
		t.Errorf("Assemble() = %q, want %q", got, want)
	}
}

func TestRender_EndToEnd(t *testing.T) {
	t.Parallel()

	src := "#+title: Notes #+author: A B\n" +
		"* Intro\n" +
		"/emphasis/ and ``quoted text''\n" +
		"[[id:xyz][Target]]\n" +
		"[cite:@ref1]\n"

	got := Render(src, Options{})

	tpl, err := assets.LoadTemplate(assets.DefaultTemplateName)
	if err != nil {
		t.Fatalf("LoadTemplate() error = %v", err)
	}
	if !strings.HasPrefix(got, tpl) {
		t.Fatal("output should begin with the static template")
	}

	body := strings.TrimPrefix(got, tpl)
	want := "#show: project.with(title: \"Notes\", authors: (\"A B\",))\n" +
		"= Intro\n" +
		"_emphasis_ and \"quoted text\"\n" +
		"#underline[Target]\n" +
		"ref1\n" +
		"\n\n#bibliography(\"refs.bib\")"
	if body != want {
		t.Errorf("body = %q\nwant   %q", body, want)
	}
}

func TestRender_EmptyInput(t *testing.T) {
	t.Parallel()

	got := Render("", Options{Bibliography: "x.bib"})
	if !strings.HasSuffix(got, "}\n\n\n#bibliography(\"x.bib\")") {
		t.Errorf("Render(\"\") tail = %q", got[max(0, len(got)-40):])
	}
}

func TestRender_Pure(t *testing.T) {
	t.Parallel()

	src := "#+title: T\n* a\n/b/ [cite:@c]"
	opts := Options{DefaultAuthor: "Z", Bibliography: "z.bib"}

	first := Render(src, opts)
	for range 5 {
		if again := Render(src, opts); again != first {
			t.Fatal("Render() is not deterministic")
		}
	}
}
