package main

import (
	"fmt"

	"github.com/esoxjem/luego"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return luego.Errorf(luego.EINVALID, "use --force to confirm deletion")
	}

	article, err := deps.Articles.FindArticleByID(deps.Ctx, c.ID)
	if err != nil {
		if luego.ErrorCode(err) == luego.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: article %q not found. Use 'luego list' to see saved articles.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", luego.ErrorMessage(err))
		return err
	}

	if err := deps.Articles.DeleteArticle(deps.Ctx, article.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", luego.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted article %q\n", article.Title)
	return nil
}
