package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateManager_RendersConfirmation(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	body, err := tm.Render(TemplateConfirmation, TemplateData{
		"Username": "alice",
		"Link":     "https://jobs.example.com/confirm/abc%3Asalt",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "Hello alice")
	assert.Contains(t, body, "https://jobs.example.com/confirm/abc%3Asalt")
}

func TestTemplateManager_UnknownTemplate(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	_, err = tm.Render("missing", nil)
	assert.Error(t, err)
}

func TestConfirmationLink_EscapesToken(t *testing.T) {
	link := ConfirmationLink("https://jobs.example.com/confirm/", "abc:def")
	assert.Equal(t, "https://jobs.example.com/confirm/abc:def", link)
}

func TestSMTPProvider_Validate(t *testing.T) {
	p := NewSMTPProvider(&SMTPConfig{Host: "", Port: 587, FromEmail: "a@b.c"}, nil)
	assert.Error(t, p.Validate())

	p = NewSMTPProvider(&SMTPConfig{Host: "smtp.example.com", Port: 0, FromEmail: "a@b.c"}, nil)
	assert.Error(t, p.Validate())

	p = NewSMTPProvider(&SMTPConfig{Host: "smtp.example.com", Port: 587, FromEmail: "a@b.c"}, nil)
	assert.NoError(t, p.Validate())
}
