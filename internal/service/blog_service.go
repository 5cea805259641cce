package service

import (
	"errors"
	"fmt"

	"animal-shelter-backend/internal/models"
	"animal-shelter-backend/internal/repository"
)

var ErrCategoryReferenced = errors.New("category is still referenced by posts")

// BlogService manages blog categories and posts.
type BlogService struct {
	blogRepo  *repository.BlogRepository
	auditRepo *repository.AuditRepository
}

func NewBlogService(blogRepo *repository.BlogRepository, auditRepo *repository.AuditRepository) *BlogService {
	return &BlogService{
		blogRepo:  blogRepo,
		auditRepo: auditRepo,
	}
}

func (s *BlogService) GetAllCategories() ([]models.Category, error) {
	return s.blogRepo.GetAllCategories()
}

func (s *BlogService) GetCategoryByID(id uint) (*models.Category, error) {
	return s.blogRepo.GetCategoryByID(id)
}

func (s *BlogService) CreateCategory(category *models.Category, userID uint) error {
	if err := s.blogRepo.CreateCategory(category); err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "blog_category_create",
		fmt.Sprintf("Created blog category %s", category.Name))
	return nil
}

func (s *BlogService) UpdateCategory(category *models.Category, userID uint) error {
	if _, err := s.blogRepo.GetCategoryByID(category.ID); err != nil {
		return err
	}
	if err := s.blogRepo.UpdateCategory(category); err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "blog_category_update",
		fmt.Sprintf("Updated blog category %d", category.ID))
	return nil
}

// DeleteCategory removes a category unless posts still reference it
func (s *BlogService) DeleteCategory(id uint, userID uint) error {
	if _, err := s.blogRepo.GetCategoryByID(id); err != nil {
		return err
	}
	count, err := s.blogRepo.CountPostsByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryReferenced
	}

	if err := s.blogRepo.DeleteCategory(id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "blog_category_delete",
		fmt.Sprintf("Deleted blog category %d", id))
	return nil
}

func (s *BlogService) GetAllPosts() ([]models.Post, error) {
	return s.blogRepo.GetAllPosts()
}

func (s *BlogService) GetPostByID(id uint) (*models.Post, error) {
	return s.blogRepo.GetPostByID(id)
}

// CreatePost creates a post authored by the acting user
func (s *BlogService) CreatePost(post *models.Post, userID uint) error {
	if _, err := s.blogRepo.GetCategoryByID(post.CategoryID); err != nil {
		return err
	}
	post.AuthorID = &userID

	if err := s.blogRepo.CreatePost(post); err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "blog_post_create",
		fmt.Sprintf("Created blog post %s", post.Title))
	return nil
}

func (s *BlogService) UpdatePost(post *models.Post, userID uint) error {
	existing, err := s.blogRepo.GetPostByID(post.ID)
	if err != nil {
		return err
	}
	if _, err := s.blogRepo.GetCategoryByID(post.CategoryID); err != nil {
		return err
	}
	post.AuthorID = existing.AuthorID

	if err := s.blogRepo.UpdatePost(post); err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "blog_post_update",
		fmt.Sprintf("Updated blog post %d", post.ID))
	return nil
}

func (s *BlogService) DeletePost(id uint, userID uint) error {
	if _, err := s.blogRepo.GetPostByID(id); err != nil {
		return err
	}
	if err := s.blogRepo.DeletePost(id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "blog_post_delete",
		fmt.Sprintf("Deleted blog post %d", id))
	return nil
}
