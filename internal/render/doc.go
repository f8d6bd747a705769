// Package render converts record bodies from markdown to HTML fragments.
//
// A Renderer chains three stages:
//   - Preprocessor: line ending normalization
//   - Converter: pandoc (default) or goldmark
//   - Sanitizer: optional bluemonday pass over the converter output
//
// A converter error is returned as is. There is no retry and no fallback to
// another engine; the caller aborts the build.
package render
