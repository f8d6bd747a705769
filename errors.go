package weeklysite

import (
	"errors"

	"github.com/alnah/go-weeklysite/internal/content"
	"github.com/alnah/go-weeklysite/internal/render"
)

// Sentinel errors for site generation.
var (
	ErrUnsafeOutputDir  = errors.New("unsafe output directory")
	ErrWriteOutput      = errors.New("writing site output failed")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)

// Errors from internal packages, re-exported for errors.Is outside the module.
var (
	ErrConversion        = render.ErrConversion
	ErrConverterNotFound = render.ErrConverterNotFound
	ErrMissingDir        = content.ErrMissingDir
	ErrDuplicateSlug     = content.ErrDuplicateSlug
	ErrInvalidSlug       = content.ErrInvalidSlug
)
