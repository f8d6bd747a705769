// Package assets provides the site stylesheet and page templates.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in "default" style and template set
//	    ├── FilesystemLoader  - custom assets under a base directory
//	    └── AssetResolver     - custom first, embedded on not-found
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css
//	└── templates/
//	    └── {name}/
//	        ├── layout.html     # page shell and navigation
//	        ├── partials.html   # chips, badge and card fragments
//	        └── {page}.html     # item, week, archive, tags, tag, search, home
//
// A custom template set must provide every file in RequiredTemplates.
//
// # Security
//
// Asset names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets
