package forms

import (
	"slices"

	"github.com/dreamplanner/inputguard/pkg/sanitizer"
	"github.com/dreamplanner/inputguard/pkg/validator"
)

const (
	MaxCircleNameLength        = 80
	MaxCircleDescriptionLength = 500
	MinCircleMembers           = 2
	MaxCircleMembers           = 100
	MaxPostLength              = 5000
	MaxCommentLength           = 1000
)

// Circle creates or edits a dream circle.
type Circle struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	MaxMembers  sanitizer.Input `json:"max_members"`
	IsPrivate   bool            `json:"is_private"`
}

func (f Circle) Sanitize() Circle {
	f.Name = sanitizer.SanitizeText(f.Name, MaxCircleNameLength)
	f.Description = sanitizer.SanitizeText(f.Description, MaxCircleDescriptionLength)
	f.MaxMembers = count(f.MaxMembers, MinCircleMembers, MaxCircleMembers)
	return f
}

func (f Circle) Validate() error {
	return validator.Apply(slices.Concat(
		[]validator.Rule{
			validator.Required("name", f.Name),
			validator.MaxLen("name", f.Name, MaxCircleNameLength),
			validator.MaxLen("description", f.Description, MaxCircleDescriptionLength),
		},
		numberRules("max_members", f.MaxMembers, MinCircleMembers, MaxCircleMembers),
	)...)
}

// Post is a social feed post, optionally tied to a circle or a dream.
// ContentHTML carries the rich-text rendering of Content when the client
// has an editor; it is cleaned with an HTML policy instead of stripped.
type Post struct {
	CircleID    string `json:"circle_id"`
	DreamID     string `json:"dream_id"`
	Content     string `json:"content"`
	ContentHTML string `json:"content_html"`
	ImageURL    string `json:"image_url"`
}

func (f Post) Sanitize() Post {
	f.CircleID = sanitizer.SanitizeParam(f.CircleID)
	f.DreamID = sanitizer.SanitizeParam(f.DreamID)
	f.Content = sanitizer.SanitizeText(f.Content, MaxPostLength)
	f.ContentHTML = sanitizer.SanitizeRichText(f.ContentHTML)
	f.ImageURL = sanitizer.SanitizeURL(f.ImageURL)
	return f
}

func (f Post) Validate() error {
	return validator.Apply(
		validator.Required("content", f.Content),
		validator.MaxLen("content", f.Content, MaxPostLength),
	)
}

type Comment struct {
	PostID  string `json:"post_id"`
	Content string `json:"content"`
}

func (f Comment) Sanitize() Comment {
	f.PostID = sanitizer.SanitizeParam(f.PostID)
	f.Content = sanitizer.SanitizeText(f.Content, MaxCommentLength)
	return f
}

func (f Comment) Validate() error {
	return validator.Apply(
		validator.Required("post_id", f.PostID),
		validator.Required("content", f.Content),
		validator.MaxLen("content", f.Content, MaxCommentLength),
	)
}
