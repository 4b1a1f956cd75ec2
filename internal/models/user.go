package models

// UserModel is a dashboard account. It owns zero or more categories and
// authors zero or more blog posts.
type UserModel struct {
	Base
	Username  string `json:"username"   gorm:"type:varchar(150);uniqueIndex;not null"`
	Email     string `json:"email"      gorm:"type:varchar(254)"`
	FirstName string `json:"first_name" gorm:"type:varchar(150)"`
	LastName  string `json:"last_name"  gorm:"type:varchar(150)"`
	Password  string `json:"-"          gorm:"not null"`
	IsActive  bool   `json:"is_active"  gorm:"default:true"`

	Blogs      []BlogModel     `json:"blogs,omitempty"      gorm:"foreignKey:AuthorID"`
	Categories []CategoryModel `json:"categories,omitempty" gorm:"foreignKey:OwnerID"`
}

func (UserModel) TableName() string { return "users" }
