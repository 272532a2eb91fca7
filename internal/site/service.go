// Package site wraps the loaded profile, project, and post data behind
// read-only accessors for the handlers.
package site

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Zachkp/devfolio/internal/content"
	"github.com/Zachkp/devfolio/internal/models"
)

// Service holds the immutable site data for the lifetime of the process.
// The post index is the one field that can be swapped (watch mode), so
// it sits behind a lock.
type Service struct {
	profile  *models.Profile
	projects *models.ProjectList

	mu    sync.RWMutex
	posts *content.Index
}

// New validates the data it is handed; a service is never built around
// malformed records.
func New(profile *models.Profile, projects *models.ProjectList, posts *content.Index) (*Service, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if err := projects.Validate(); err != nil {
		return nil, err
	}
	return &Service{profile: profile, projects: projects, posts: posts}, nil
}

// Load reads profile.json and projects.json from dataDir and the post
// sources from contentDir, then builds a validated service.
func Load(dataDir, contentDir string) (*Service, error) {
	var profile models.Profile
	if err := readJSON(filepath.Join(dataDir, "profile.json"), &profile); err != nil {
		return nil, err
	}

	var projects models.ProjectList
	if err := readJSON(filepath.Join(dataDir, "projects.json"), &projects); err != nil {
		return nil, err
	}

	posts, err := content.LoadDir(contentDir)
	if err != nil {
		return nil, err
	}

	return New(&profile, &projects, posts)
}

func readJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Profile returns the site owner record.
func (s *Service) Profile() *models.Profile {
	return s.profile
}

// Projects returns all portfolio entries in declaration order.
func (s *Service) Projects() []models.Project {
	return s.projects.Projects
}

// PublishedPosts returns the visible posts, newest first.
func (s *Service) PublishedPosts() []content.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.posts.Published()
}

// PostBySlug looks up a published post by its slug.
func (s *Service) PostBySlug(slug string) (*content.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.posts.BySlug(slug)
	if !ok {
		return nil, fmt.Errorf("post not found: %s", slug)
	}
	return p, nil
}

// ReplacePosts swaps in a freshly loaded post index. Only the serve
// command's watch mode calls this.
func (s *Service) ReplacePosts(posts *content.Index) {
	s.mu.Lock()
	s.posts = posts
	s.mu.Unlock()
}
