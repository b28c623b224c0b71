package assets

// DefaultTemplateName is the name of the built-in template.
const DefaultTemplateName = "project"

// TemplateExt is the file extension of template files.
const TemplateExt = ".typ"

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadTemplate loads a template by name using the embedded loader.
// Returns ErrTemplateNotFound if the template does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}

// ListTemplates returns the names of the embedded templates, sorted.
func ListTemplates() []string {
	return defaultLoader.List()
}
