package content

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// dateFormats accepted in the publishedAt front-matter field.
var dateFormats = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

var mdParser = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		gmhtml.WithHardWraps(),
	),
)

// Index holds every loaded post plus a slug lookup over the published
// ones. Built once by LoadDir and never mutated.
type Index struct {
	posts     []Post
	published []Post
	bySlug    map[string]*Post
}

// LoadDir parses every .md file under dir. Content problems that would
// change what gets published (duplicate slug, missing required field,
// unparsable date) are returned as errors; callers treat them as fatal.
func LoadDir(dir string) (*Index, error) {
	var posts []Post

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}

		post, err := loadFile(path)
		if err != nil {
			return err
		}
		posts = append(posts, post)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("content: %w", walkErr)
	}

	idx := &Index{posts: posts, bySlug: make(map[string]*Post)}

	// Slugs are the routing key, so a duplicate anywhere (published or
	// not) is a content error.
	seen := make(map[string]string)
	for _, p := range posts {
		if prev, ok := seen[p.Slug]; ok {
			return nil, fmt.Errorf("content: duplicate slug %q in %s and %s", p.Slug, prev, p.SourcePath)
		}
		seen[p.Slug] = p.SourcePath
	}

	for _, p := range posts {
		if !p.Published {
			continue
		}
		idx.published = append(idx.published, p)
	}
	sort.Slice(idx.published, func(i, j int) bool {
		return idx.published[i].PublishedAt.After(idx.published[j].PublishedAt)
	})
	for i := range idx.published {
		idx.bySlug[idx.published[i].Slug] = &idx.published[i]
	}

	return idx, nil
}

func loadFile(path string) (Post, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Post{}, fmt.Errorf("read %s: %w", path, err)
	}

	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return Post{}, fmt.Errorf("parse front matter of %s: %w", path, err)
	}

	if strings.TrimSpace(fm.Title) == "" {
		return Post{}, fmt.Errorf("%s: title is required", path)
	}
	if strings.TrimSpace(fm.Slug) == "" {
		return Post{}, fmt.Errorf("%s: slug is required", path)
	}
	if strings.TrimSpace(fm.Description) == "" {
		return Post{}, fmt.Errorf("%s: description is required", path)
	}

	publishedAt, err := parseDate(fm.PublishedAt)
	if err != nil {
		return Post{}, fmt.Errorf("%s: %w", path, err)
	}

	var htmlBuf bytes.Buffer
	if err := mdParser.Convert(body, &htmlBuf); err != nil {
		return Post{}, fmt.Errorf("render %s: %w", path, err)
	}

	return Post{
		Title:       fm.Title,
		PublishedAt: publishedAt,
		Description: fm.Description,
		Slug:        fm.Slug,
		Published:   fm.IsPublish,
		Body:        template.HTML(htmlBuf.String()),
		SourcePath:  path,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, fmt.Errorf("publishedAt is required")
	}
	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("could not parse publishedAt %q, use YYYY-MM-DD or RFC3339", s)
}

// All returns every loaded post, drafts included.
func (idx *Index) All() []Post {
	return idx.posts
}

// Published returns the visible posts, newest first.
func (idx *Index) Published() []Post {
	return idx.published
}

// BySlug looks up a published post. Drafts are not routable.
func (idx *Index) BySlug(slug string) (*Post, bool) {
	p, ok := idx.bySlug[slug]
	return p, ok
}
