package assets

// TemplateLoader defines the contract for loading Typst templates.
type TemplateLoader interface {
	// LoadTemplate loads a template by name (without .typ extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)

	// List returns the names of the available templates, sorted.
	List() []string
}
