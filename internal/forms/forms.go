// Package forms holds the request form descriptors for the post and
// comment pages: binding, required-field validation, and the field
// errors the templates re-render with.
package forms

import (
	"strings"
	"yatube/internal/utils"
)

type PostForm struct {
	Text    string `form:"text"`
	GroupID string `form:"group"`
	Errors  map[string]string
}

// Validate checks required fields and fills Errors. Returns true when
// the form can be saved.
func (f *PostForm) Validate() bool {
	f.Errors = map[string]string{}
	if strings.TrimSpace(f.Text) == "" {
		f.Errors["text"] = "Text is required"
	}
	return len(f.Errors) == 0
}

// Group returns the selected group ID, or nil when none was picked.
func (f *PostForm) Group() *uint {
	if f.GroupID == "" {
		return nil
	}
	if id := utils.StringToInt(f.GroupID); id > 0 {
		gid := uint(id)
		return &gid
	}
	return nil
}

type CommentForm struct {
	Text   string `form:"text"`
	Errors map[string]string
}

func (f *CommentForm) Validate() bool {
	f.Errors = map[string]string{}
	if strings.TrimSpace(f.Text) == "" {
		f.Errors["text"] = "Text is required"
	}
	return len(f.Errors) == 0
}
