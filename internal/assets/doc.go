// Package assets provides the Typst document templates wrapped around
// converted Org documents.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	TemplateLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in templates)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in templates (project, article).
//
// FilesystemLoader allows users to provide templates from a directory,
// with path traversal protection and symlink resolution.
//
// AssetResolver is the loader used by the converter. It tries the custom
// FilesystemLoader first, falling back to EmbeddedLoader if the template
// is not found there.
//
// # Directory Structure
//
//	{basePath}/
//	└── templates/
//	    └── {name}.typ
//
// Every template must define a project(title:, authors:, date:, body)
// function; converted documents apply it with a show rule.
//
// # Security
//
// Template names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
