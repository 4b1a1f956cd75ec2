package models

// BlogStatus is the publication state of a post. It is a plain attribute:
// any value may be replaced by any other via edit.
type BlogStatus string

const (
	StatusDraft     BlogStatus = "draft"
	StatusPublished BlogStatus = "published"
)

// BlogModel is a blog post. Slug is derived from the title plus the
// assigned primary key, which makes it unique even for duplicate titles.
type BlogModel struct {
	Base
	Title            string         `json:"title"              gorm:"type:varchar(200);not null"`
	Slug             string         `json:"slug"               gorm:"type:varchar(255);uniqueIndex"`
	CategoryID       uint           `json:"category_id"        gorm:"index;not null"`
	Category         *CategoryModel `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	AuthorID         uint           `json:"author_id"          gorm:"index;not null"`
	FeaturedImage    string         `json:"featured_image"`
	ShortDescription string         `json:"short_description"  gorm:"type:text"`
	Body             string         `json:"body"               gorm:"type:longtext"`
	Status           BlogStatus     `json:"status"             gorm:"type:varchar(20);default:draft"`
	IsFeatured       bool           `json:"is_featured"        gorm:"default:false"`
}

func (BlogModel) TableName() string { return "blogs" }
