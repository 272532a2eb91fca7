package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() *Profile {
	return &Profile{
		Email:    "hello@example.com",
		Headline: "Developer",
		Bio:      "Builds things.",
		Social: []SocialLink{
			{Label: "GitHub", URL: "https://github.com/someone"},
		},
	}
}

func TestProfileValidation(t *testing.T) {
	require.NoError(t, validProfile().Validate())

	p := validProfile()
	p.Email = " "
	assert.Error(t, p.Validate())

	p = validProfile()
	p.Headline = ""
	assert.Error(t, p.Validate())

	// Empty social list is allowed.
	p = validProfile()
	p.Social = nil
	assert.NoError(t, p.Validate())
}

func TestSocialLinkValidation(t *testing.T) {
	ok := SocialLink{Label: "GitHub", URL: "https://github.com/someone"}
	require.NoError(t, ok.Validate())

	cases := []SocialLink{
		{Label: "", URL: "https://github.com/someone"},
		{Label: "GitHub", URL: ""},
		{Label: "GitHub", URL: "github.com/someone"},
		{Label: "GitHub", URL: "ftp://github.com/someone"},
		{Label: "GitHub", URL: "https://"},
	}
	for _, link := range cases {
		assert.Error(t, link.Validate(), "%+v", link)
	}
}

func TestProjectValidation(t *testing.T) {
	ok := Project{Title: "Thing", Tech: []string{"Go"}, URL: "https://github.com/x/thing"}
	require.NoError(t, ok.Validate())

	assert.Error(t, (&Project{Tech: []string{"Go"}, URL: "u"}).Validate())
	assert.Error(t, (&Project{Title: "Thing", Tech: []string{"Go"}}).Validate())
	assert.Error(t, (&Project{Title: "Thing", URL: "u"}).Validate())
	assert.Error(t, (&Project{Title: "Thing", Tech: []string{"Go", " "}, URL: "u"}).Validate())
}

func TestProjectListValidation(t *testing.T) {
	list := &ProjectList{Projects: []Project{
		{Title: "A", Tech: []string{"Go"}, URL: "https://a"},
		{Title: "B", Tech: []string{}, URL: "https://b"},
	}}
	err := list.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "projects[1]")
}
