// Package content loads the blog articles from Markdown files with YAML
// front matter. Posts are parsed once at startup; the resulting index is
// read-only.
package content

import (
	"html/template"
	"time"
)

// Post is one blog article. Body is the rendered HTML of the Markdown
// source, safe to inject into templates.
type Post struct {
	Title       string        `json:"title"`
	PublishedAt time.Time     `json:"publishedAt"`
	Description string        `json:"description"`
	Slug        string        `json:"slug"`
	Published   bool          `json:"isPublish"`
	Body        template.HTML `json:"-"`
	SourcePath  string        `json:"-"`
}

// frontMatter is the metadata header at the top of every post file.
type frontMatter struct {
	Title       string `yaml:"title"`
	PublishedAt string `yaml:"publishedAt"`
	Description string `yaml:"description"`
	Slug        string `yaml:"slug"`
	IsPublish   bool   `yaml:"isPublish"`
}
