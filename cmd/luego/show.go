package main

import (
	"fmt"

	"github.com/esoxjem/luego"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	article, err := deps.Articles.FindArticleByID(deps.Ctx, c.ID)
	if err != nil {
		if luego.ErrorCode(err) == luego.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: article %q not found. Use 'luego list' to see saved articles.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", luego.ErrorMessage(err))
		return err
	}

	printMetadata(deps.Stdout, &luego.ArticleMetadata{
		Title:        article.Title,
		ThumbnailURL: article.ThumbnailURL,
		Description:  article.Description,
		Author:       article.Author,
		PublishedAt:  article.PublishedAt,
		WordCount:    article.WordCount,
	})
	fmt.Fprintf(deps.Stdout, "URL: %s\n", article.URL)
	fmt.Fprintf(deps.Stdout, "Saved: %s\n", article.SavedAt.Format("2006-01-02"))

	if c.Full {
		fmt.Fprintf(deps.Stdout, "\n%s\n", article.Content)
	}

	return nil
}
