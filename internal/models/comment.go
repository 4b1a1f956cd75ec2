package models

// CommentModel is a reader comment on a blog post. Rows are removed when
// either the commenting user or the post is deleted.
type CommentModel struct {
	Base
	UserID uint   `json:"user_id" gorm:"index;not null"`
	BlogID uint   `json:"blog_id" gorm:"index;not null"`
	Text   string `json:"comment" gorm:"type:varchar(250);not null"`
}

func (CommentModel) TableName() string { return "comments" }
