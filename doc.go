// Package weeklysite generates a static website from a corpus of weekly
// AI digest records.
//
// # Quick Start
//
// Create a generator and build the site into an output directory:
//
//	gen, err := weeklysite.NewGenerator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := gen.Generate(ctx, weeklysite.Input{
//	    ItemsDir:  "content/items",
//	    WeeksDir:  "content/weeks",
//	    OutputDir: "website/out",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(result.Files), "files written")
//
// # Generation Pipeline
//
// A run follows these stages:
//
//  1. Record loading (front matter header plus markdown body)
//  2. Body rendering through pandoc, or goldmark when configured
//  3. Page rendering with html/template (items, weeks, archive, tags, search, home)
//  4. Optional RSS feed when Input.Site.URL is set
//  5. Output directory reset and write
//
// Every page is rendered in memory before the output directory is touched,
// so a failed conversion leaves the previous site in place.
//
// # Configuration
//
// Use functional options to customize the generator:
//
//	gen, err := weeklysite.NewGenerator(
//	    weeklysite.WithRenderer(renderer),
//	    weeklysite.WithAssetPath("/path/to/custom/assets"),
//	    weeklysite.WithStyle("./site.css"),
//	    weeklysite.WithLogger(slog.Default()),
//	)
//
// # Error Handling
//
// Failures wrap package sentinel errors and can be classified with
// errors.Is, for example ErrUnsafeOutputDir or ErrWriteOutput. Converter
// failures match ErrConversion or ErrConverterNotFound, and corpus problems
// match ErrMissingDir, ErrInvalidSlug or ErrDuplicateSlug.
package weeklysite
