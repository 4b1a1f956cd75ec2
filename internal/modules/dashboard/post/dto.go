package post

import (
	"time"

	"github.com/inkpress/core/internal/models"
	"github.com/inkpress/core/internal/pkg/markdown"
)

// BlogFormDTO is the multipart create/edit form for a blog post. The
// optional featured image file rides alongside these fields.
type BlogFormDTO struct {
	Title            string `form:"title"             binding:"required,max=200"`
	CategoryID       uint   `form:"category_id"       binding:"required"`
	ShortDescription string `form:"short_description"`
	Body             string `form:"body"              binding:"required"`
	Status           string `form:"status"            binding:"omitempty,oneof=draft published"`
	IsFeatured       bool   `form:"is_featured"`
}

// blogResponse is the view context for a single post, body rendered for
// the dashboard preview.
type blogResponse struct {
	ID               uint                  `json:"id"`
	Title            string                `json:"title"`
	Slug             string                `json:"slug"`
	CategoryID       uint                  `json:"category_id"`
	Category         *models.CategoryModel `json:"category,omitempty"`
	AuthorID         uint                  `json:"author_id"`
	FeaturedImage    string                `json:"featured_image"`
	ShortDescription string                `json:"short_description"`
	Body             string                `json:"body"`
	BodyHTML         string                `json:"body_html,omitempty"`
	Status           models.BlogStatus     `json:"status"`
	IsFeatured       bool                  `json:"is_featured"`
	Created          time.Time             `json:"created"`
	Modified         time.Time             `json:"modified"`
}

func toResponse(b *models.BlogModel, renderBody bool) blogResponse {
	resp := blogResponse{
		ID:               b.ID,
		Title:            b.Title,
		Slug:             b.Slug,
		CategoryID:       b.CategoryID,
		Category:         b.Category,
		AuthorID:         b.AuthorID,
		FeaturedImage:    b.FeaturedImage,
		ShortDescription: b.ShortDescription,
		Body:             b.Body,
		Status:           b.Status,
		IsFeatured:       b.IsFeatured,
		Created:          b.CreatedAt,
		Modified:         b.UpdatedAt,
	}
	if renderBody {
		if html, err := markdown.Render(b.Body); err == nil {
			resp.BodyHTML = html
		}
	}
	return resp
}
