package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/utilkit/pkg/validate"
)

func TestIsEmail(t *testing.T) {
	t.Run("valid emails", func(t *testing.T) {
		validEmails := []string{
			"user@example.com",
			"user.name+tag@example.co.uk",
			"firstname.lastname@company.com",
			"1234567890@example.com",
			"email@example-one.com",
			"_______@example.com",
			"user%test@example.org",
		}

		for _, email := range validEmails {
			assert.True(t, validate.IsEmail(email), "email should be valid: %s", email)
		}
	})

	t.Run("invalid emails", func(t *testing.T) {
		invalidEmails := []string{
			"",
			"plainaddress",
			"@example.com",
			"user@",
			"user@domain",
			"user@.com",
			"spaces in@example.com",
			"user@example.c",
		}

		for _, email := range invalidEmails {
			assert.False(t, validate.IsEmail(email), "email should be invalid: %s", email)
		}
	})
}

func TestIsURL(t *testing.T) {
	t.Run("valid URLs with default schemes", func(t *testing.T) {
		validURLs := []string{
			"http://example.com",
			"https://example.com",
			"https://www.example.com/path",
			"https://example.com:8080",
			"https://example.com/path?query=value",
			"ftp://files.example.com",
			"https://sub.domain.example.com",
			"http://localhost",
			"http://localhost:3000/api",
		}

		for _, url := range validURLs {
			assert.True(t, validate.IsURL(url), "URL should be valid: %s", url)
		}
	})

	t.Run("invalid URLs", func(t *testing.T) {
		invalidURLs := []string{
			"",
			"not-a-url",
			"example.com",
			"://missing-scheme.com",
			"http://",
			"http://-bad-host.com",
			"http://host-.com",
			"http://example.com/with space",
		}

		for _, url := range invalidURLs {
			assert.False(t, validate.IsURL(url), "URL should be invalid: %s", url)
		}
	})

	t.Run("scheme restrictions", func(t *testing.T) {
		assert.True(t, validate.IsURL("https://example.com", validate.Schemes("https")))
		assert.False(t, validate.IsURL("http://example.com", validate.Schemes("https")))
		assert.False(t, validate.IsURL("ftp://example.com", validate.Schemes("http", "https")))
		assert.True(t, validate.IsURL("ws://example.com", validate.Schemes("ws", "wss")))
	})
}
