package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// No explicit file, no config.yaml in cwd: defaults apply.
	tmp := t.TempDir()
	wd, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmp))
	defer os.Chdir(wd)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Portfolio", cfg.SiteTitle)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "content/posts", cfg.ContentDir)
	assert.Equal(t, "primary-blue", cfg.Theme.Primary)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	doc := `siteTitle: my-site
addr: ":9090"
dataDir: sitedata
contentDir: articles
theme:
  primary: primary-green
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "my-site", cfg.SiteTitle)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "sitedata", cfg.DataDir)
	assert.Equal(t, "articles", cfg.ContentDir)
	assert.Equal(t, "primary-green", cfg.Theme.Primary)
}

func TestPortEnvOverridesAddr(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`addr: ":9090"`), 0o644))

	t.Setenv("PORT", "3000")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Addr)
}

func TestEnvSecrets(t *testing.T) {
	t.Setenv("SMTP_USER", "me@example.com")
	t.Setenv("SMTP_PASS", "hunter2")
	t.Setenv("TO_EMAIL", "inbox@example.com")
	t.Setenv("ADMIN_USERNAME", "zach")
	t.Setenv("ADMIN_PASSWORD", "secret")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`siteTitle: x`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", cfg.SMTP.User)
	assert.Equal(t, "hunter2", cfg.SMTP.Pass)
	assert.Equal(t, "inbox@example.com", cfg.SMTP.To)
	assert.Equal(t, "zach", cfg.Admin.Username)
	assert.Equal(t, "secret", cfg.Admin.Password)
	// Dev defaults for the host side.
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	assert.Equal(t, "587", cfg.SMTP.Port)
}
