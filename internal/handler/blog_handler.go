package handler

import (
	"net/http"

	"animal-shelter-backend/internal/models"
	"animal-shelter-backend/internal/service"
	"animal-shelter-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// BlogHandler serves blog categories and posts.
type BlogHandler struct {
	blogService *service.BlogService
}

func NewBlogHandler(blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
	}
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
}

type PostRequest struct {
	CategoryID uint   `json:"category_id" binding:"required"`
	Title      string `json:"title" binding:"required,max=255"`
	Text       string `json:"text" binding:"required"`
}

func (h *BlogHandler) ListCategories(c *gin.Context) {
	categories, err := h.blogService.GetAllCategories()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	utils.SuccessResponse(c, gin.H{"categories": categories, "count": len(categories)})
}

func (h *BlogHandler) GetCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	category, err := h.blogService.GetCategoryByID(id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, category)
}

func (h *BlogHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	category := &models.Category{Name: req.Name, Description: req.Description}
	if err := h.blogService.CreateCategory(category, currentUserID(c)); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, category)
}

func (h *BlogHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	category := &models.Category{ID: id, Name: req.Name, Description: req.Description}
	if err := h.blogService.UpdateCategory(category, currentUserID(c)); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, category)
}

func (h *BlogHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.blogService.DeleteCategory(id, currentUserID(c)); err != nil {
		serviceErrorResponse(c, err)
		return
	}
	utils.MessageResponse(c, "Category deleted successfully")
}

func (h *BlogHandler) ListPosts(c *gin.Context) {
	posts, err := h.blogService.GetAllPosts()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}
	utils.SuccessResponse(c, gin.H{"posts": posts, "count": len(posts)})
}

func (h *BlogHandler) GetPost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	post, err := h.blogService.GetPostByID(id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, post)
}

func (h *BlogHandler) CreatePost(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	post := &models.Post{
		CategoryID: req.CategoryID,
		Title:      req.Title,
		Text:       req.Text,
	}
	if err := h.blogService.CreatePost(post, currentUserID(c)); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, post)
}

func (h *BlogHandler) UpdatePost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	post := &models.Post{
		ID:         id,
		CategoryID: req.CategoryID,
		Title:      req.Title,
		Text:       req.Text,
	}
	if err := h.blogService.UpdatePost(post, currentUserID(c)); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, post)
}

func (h *BlogHandler) DeletePost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.blogService.DeletePost(id, currentUserID(c)); err != nil {
		serviceErrorResponse(c, err)
		return
	}
	utils.MessageResponse(c, "Post deleted successfully")
}
