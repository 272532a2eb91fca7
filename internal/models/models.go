package models

import (
	"fmt"
	"net/url"
	"strings"
)

// Profile is the site owner's bio and contact data, loaded once from
// data/profile.json and never mutated afterwards.
type Profile struct {
	Email     string       `json:"email"`
	Headline  string       `json:"headline"`
	Bio       string       `json:"bio"`
	Social    []SocialLink `json:"social"`
	ImagePath string       `json:"image_path,omitempty"`
}

// SocialLink is one entry in the profile's social link list.
type SocialLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Project represents a single portfolio entry.
type Project struct {
	Title      string   `json:"title"`
	Tech       []string `json:"tech"`
	URL        string   `json:"url"`
	ComingSoon bool     `json:"coming_soon,omitempty"`
}

// ProjectList wraps the array of projects as stored in data/projects.json.
type ProjectList struct {
	Projects []Project `json:"projects"`
}

// Validate checks the required profile fields. A profile with no social
// links is fine; a social link with a missing half is not.
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Email) == "" {
		return fmt.Errorf("profile: email is required")
	}
	if strings.TrimSpace(p.Headline) == "" {
		return fmt.Errorf("profile: headline is required")
	}
	for i, s := range p.Social {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("profile: social link %d: %w", i, err)
		}
	}
	return nil
}

// Validate requires both a label and an absolute http(s) URL.
func (s *SocialLink) Validate() error {
	if strings.TrimSpace(s.Label) == "" {
		return fmt.Errorf("label is required")
	}
	u, err := url.Parse(s.URL)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", s.URL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("url %q must be absolute http(s)", s.URL)
	}
	return nil
}

// Validate checks the required project fields. Every project carries at
// least one non-empty tech tag.
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("project: title is required")
	}
	if strings.TrimSpace(p.URL) == "" {
		return fmt.Errorf("project %q: url is required", p.Title)
	}
	if len(p.Tech) == 0 {
		return fmt.Errorf("project %q: tech list is empty", p.Title)
	}
	for i, tag := range p.Tech {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("project %q: tech tag %d is empty", p.Title, i)
		}
	}
	return nil
}

// Validate checks every project in the list.
func (l *ProjectList) Validate() error {
	for i := range l.Projects {
		if err := l.Projects[i].Validate(); err != nil {
			return fmt.Errorf("projects[%d]: %w", i, err)
		}
	}
	return nil
}
