package core

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/kmwhite/dinner-recipes/backend/internal/model"
)

// BuildShareText renders a recipe as a plain-text subject and body for
// sharing over email. The output is deterministic for a given recipe.
func BuildShareText(r model.Recipe) (subject, body string) {
	name := r.Name
	if name == "" {
		name = "(Unnamed Recipe)"
	}

	prepH, prepM := SplitDuration(r.PrepTime)
	cookH, cookM := SplitDuration(r.CookTime)

	subject = "Recipe: " + name

	lines := []string{
		name,
		"",
		"Category: " + r.Category,
		"Family Signature: " + r.Signature,
		fmt.Sprintf("Prep: %dh %dm | Cook: %dh %dm", prepH, prepM, cookH, cookM),
		"",
		"Ingredients:",
	}
	for _, ing := range r.Ingredients {
		lines = append(lines, "- "+ing)
	}
	lines = append(lines,
		"",
		"Instructions:",
		r.Instructions,
		"",
		"Sent from my Dinner Recipes app",
	)

	return subject, strings.Join(lines, "\n")
}

// MailtoLink builds a mailto URL with the subject and body percent-encoded
// so the text survives embedding in a link.
func MailtoLink(toEmail, subject, body string) string {
	params := url.Values{}
	params.Set("subject", subject)
	params.Set("body", body)
	// url.Values encodes spaces as '+', which mail clients do not decode
	// inside mailto links.
	qs := strings.ReplaceAll(params.Encode(), "+", "%20")
	return "mailto:" + toEmail + "?" + qs
}
