package main

import (
	"fmt"
	"io"

	"github.com/esoxjem/luego"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	if c.MetadataOnly {
		meta, err := deps.Extractor.FetchMetadata(deps.Ctx, c.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", luego.ErrorMessage(err))
			return err
		}
		printMetadata(deps.Stdout, meta)
		return nil
	}

	content, err := deps.Extractor.FetchContent(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", luego.ErrorMessage(err))
		return err
	}

	printMetadata(deps.Stdout, &content.ArticleMetadata)
	fmt.Fprintf(deps.Stdout, "\n%s\n", content.Content)
	return nil
}

// printMetadata writes the metadata header: title as an H1 followed by the
// optional fields that were actually extracted.
func printMetadata(w io.Writer, meta *luego.ArticleMetadata) {
	fmt.Fprintf(w, "# %s\n", meta.Title)
	if meta.Author != "" {
		fmt.Fprintf(w, "Author: %s\n", meta.Author)
	}
	if meta.PublishedAt != nil {
		fmt.Fprintf(w, "Published: %s\n", meta.PublishedAt.Format("2006-01-02"))
	}
	if meta.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", meta.Description)
	}
	if meta.ThumbnailURL != "" {
		fmt.Fprintf(w, "Thumbnail: %s\n", meta.ThumbnailURL)
	}
	if meta.WordCount > 0 {
		fmt.Fprintf(w, "Words: %d\n", meta.WordCount)
	}
}
