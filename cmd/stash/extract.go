package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/stash"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	if c.URL == "" && c.File == "" {
		err := stash.Errorf(stash.EINVALID, "a URL or --file is required")
		fmt.Fprintf(deps.Stderr, "error: %s\n", stash.ErrorMessage(err))
		return err
	}

	html, err := c.readHTML(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stash.ErrorMessage(err))
		return err
	}

	article, err := c.extract(deps, html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stash.ErrorMessage(err))
		return err
	}

	fmt.Fprint(deps.Stdout, stash.FormatSave(&stash.Save{
		URL:         c.URL,
		Title:       article.Title,
		SiteName:    article.SiteName,
		Author:      article.Author,
		PublishedAt: article.PublishedTime,
		Content:     article.Content,
	}))
	return nil
}

func (c *ExtractCmd) readHTML(deps *Dependencies) (string, error) {
	if c.File != "" {
		data, err := os.ReadFile(c.File)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return deps.Fetcher.Fetch(deps.Ctx, c.URL)
}

func (c *ExtractCmd) extract(deps *Dependencies, html string) (*stash.Article, error) {
	if !c.Client {
		return deps.Extractor.Extract(html, c.URL)
	}
	p, err := deps.Prefetcher.Prefetch(html, c.URL)
	if err != nil {
		return nil, err
	}
	return p.Article(c.URL), nil
}
