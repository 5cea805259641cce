package models

import "time"

// Category represents the blog_categories table.
type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

// TableName specifies the table name for Category model
func (Category) TableName() string {
	return "blog_categories"
}

// Post represents the blog_posts table. A post belongs to one category
// and has an optional author.
type Post struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	CategoryID uint   `gorm:"not null;index" json:"category_id"`
	Title      string `gorm:"size:255;not null" json:"title"`
	Text       string `gorm:"type:text;not null" json:"text"`
	AuthorID   *uint  `gorm:"index" json:"author_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Author   *User    `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// TableName specifies the table name for Post model
func (Post) TableName() string {
	return "blog_posts"
}
