// Package server wires the gin routes for the public site, the JSON API,
// and the admin dashboard.
package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/devfolio/internal/config"
	"github.com/Zachkp/devfolio/internal/mailer"
	"github.com/Zachkp/devfolio/internal/metrics"
	"github.com/Zachkp/devfolio/internal/site"
	"github.com/Zachkp/devfolio/internal/theme"
)

// Server bundles everything the handlers need.
type Server struct {
	cfg    *config.Config
	site   *site.Service
	theme  *theme.Theme
	mailer *mailer.Mailer
	store  *metrics.Store
}

// New builds the gin engine with all routes registered. templateGlob is
// a parameter so tests can point it at fixtures.
func New(cfg *config.Config, svc *site.Service, th *theme.Theme, m *mailer.Mailer, store *metrics.Store, templateGlob string) *gin.Engine {
	s := &Server{cfg: cfg, site: svc, theme: th, mailer: m, store: store}

	r := gin.Default()
	r.LoadHTMLGlob(templateGlob)

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	if store != nil {
		r.Use(s.visitorTracking())
	}

	// Home page route
	r.GET("/", s.home)

	// Blog list and single article
	r.GET("/blog", s.blogIndex)
	r.GET("/blog/:slug", s.blogPost)

	// JSON API
	api := r.Group("/api")
	api.GET("/projects", s.apiProjects)
	api.GET("/posts", s.apiPosts)

	// HTMX contact form endpoints
	r.GET("/contact-form", s.contactForm)
	r.POST("/contact", s.contact)

	if store != nil {
		s.registerAdminRoutes(r)
	}

	return r
}

func (s *Server) home(c *gin.Context) {
	profile := s.site.Profile()
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":     s.cfg.SiteTitle,
		"textClass": s.theme.TextClass(),
		"profile":   profile,
		"projects":  s.site.Projects(),
		"posts":     s.site.PublishedPosts(),
	})
}

func (s *Server) blogIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "blog.html", gin.H{
		"title":     s.cfg.SiteTitle + " - Blog",
		"textClass": s.theme.TextClass(),
		"posts":     s.site.PublishedPosts(),
	})
}

func (s *Server) blogPost(c *gin.Context) {
	slug := c.Param("slug")

	post, err := s.site.PostBySlug(slug)
	if err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{
			"title": "Not Found",
		})
		return
	}

	if s.store != nil {
		go s.store.RecordPostView(post.Slug, post.Title)
	}

	c.HTML(http.StatusOK, "post.html", gin.H{
		"title":     post.Title,
		"textClass": s.theme.TextClass(),
		"post":      post,
	})
}

func (s *Server) apiProjects(c *gin.Context) {
	c.JSON(http.StatusOK, s.site.Projects())
}

func (s *Server) apiPosts(c *gin.Context) {
	c.JSON(http.StatusOK, s.site.PublishedPosts())
}

func (s *Server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"title": "Contact Me",
	})
}

// contact handles the HTMX form submission and answers with a success or
// error fragment.
func (s *Server) contact(c *gin.Context) {
	name := c.PostForm("fullName")
	email := c.PostForm("email")
	message := c.PostForm("message")

	if err := s.mailer.SendContact(name, email, message); err != nil {
		log.Printf("Contact form error: %v", err)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}
