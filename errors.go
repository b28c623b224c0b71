package org2typst

import "errors"

// Sentinel errors for library operations. Transform and Render never fail;
// these come from Converter setup and Convert.
var (
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidTemplate  = errors.New("invalid template name")
	ErrEmptyTemplate    = errors.New("template is empty")
	ErrConversion       = errors.New("conversion failed")
)
