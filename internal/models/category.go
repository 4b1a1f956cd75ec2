package models

// CategoryModel groups blog posts. Name is globally unique.
// OwnerID is nullable: legacy and system categories have no owner.
type CategoryModel struct {
	Base
	Name    string `json:"name"     gorm:"type:varchar(50);uniqueIndex;not null"`
	OwnerID *uint  `json:"owner_id" gorm:"index"`

	Blogs []BlogModel `json:"blogs,omitempty" gorm:"foreignKey:CategoryID"`
}

func (CategoryModel) TableName() string { return "categories" }
