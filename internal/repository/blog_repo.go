package repository

import (
	"errors"

	"animal-shelter-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrPostNotFound     = errors.New("post not found")
)

// BlogRepository manages blog categories and posts.
type BlogRepository struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) GetAllCategories() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *BlogRepository) GetCategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *BlogRepository) CreateCategory(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *BlogRepository) UpdateCategory(category *models.Category) error {
	return r.db.Save(category).Error
}

func (r *BlogRepository) DeleteCategory(id uint) error {
	return r.db.Delete(&models.Category{}, id).Error
}

// CountPostsByCategory counts posts referencing a category
func (r *BlogRepository) CountPostsByCategory(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (r *BlogRepository) GetAllPosts() ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Category").Preload("Author").Order("created_at DESC").Find(&posts).Error
	return posts, err
}

func (r *BlogRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Category").Preload("Author").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *BlogRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *BlogRepository) UpdatePost(post *models.Post) error {
	return r.db.Save(post).Error
}

func (r *BlogRepository) DeletePost(id uint) error {
	return r.db.Delete(&models.Post{}, id).Error
}
