package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	t.Run("default template defines project", func(t *testing.T) {
		t.Parallel()

		content, err := loader.LoadTemplate(DefaultTemplateName)
		if err != nil {
			t.Fatalf("LoadTemplate(%q) error = %v", DefaultTemplateName, err)
		}
		if !strings.HasPrefix(content, "#let project(title: \"\", authors: (), date: none, body) = {") {
			t.Errorf("default template should open with the project function, got %q", content[:min(len(content), 60)])
		}
		if !strings.HasSuffix(content, "}\n") {
			t.Error("default template should end with a closing brace and newline")
		}
	})

	t.Run("every listed template defines project", func(t *testing.T) {
		t.Parallel()

		for _, name := range loader.List() {
			content, err := loader.LoadTemplate(name)
			if err != nil {
				t.Fatalf("LoadTemplate(%q) error = %v", name, err)
			}
			if !strings.Contains(content, "#let project(") {
				t.Errorf("template %q does not define project()", name)
			}
		}
	})

	t.Run("unknown template", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadTemplate("nonexistent")
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("LoadTemplate() error = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadTemplate("../project")
		if !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadTemplate() error = %v, want ErrInvalidAssetName", err)
		}
	})
}

func TestEmbeddedLoader_List(t *testing.T) {
	t.Parallel()

	names := NewEmbeddedLoader().List()

	want := []string{"article", "project"}
	if len(names) != len(want) {
		t.Fatalf("List() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestPackageLevelLoadTemplate(t *testing.T) {
	t.Parallel()

	content, err := LoadTemplate(DefaultTemplateName)
	if err != nil {
		t.Fatalf("LoadTemplate() error = %v", err)
	}
	if content == "" {
		t.Error("LoadTemplate() returned empty content")
	}
	if len(ListTemplates()) == 0 {
		t.Error("ListTemplates() returned no names")
	}
}
