package handlers

import (
	"net/http"
	"time"

	"tokrecharge_api/internal/domain"

	"github.com/gin-gonic/gin"
)

// ListBlogPostsAdmin returns every post regardless of status.
func (h *Handler) ListBlogPostsAdmin(c *gin.Context) {
	posts, err := h.Store.GetBlogPosts(c.Request.Context())
	if err != nil {
		storeError(c, err, "blog posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *Handler) GetBlogPostByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	post, err := h.Store.GetBlogPostByID(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "blog post")
		return
	}
	c.JSON(http.StatusOK, post)
}

type createBlogPostRequest struct {
	Title           string           `json:"title" binding:"required"`
	Slug            string           `json:"slug" binding:"required"`
	Excerpt         string           `json:"excerpt"`
	Content         string           `json:"content" binding:"required"`
	MetaTitle       string           `json:"metaTitle"`
	MetaDescription string           `json:"metaDescription"`
	Keywords        string           `json:"keywords"`
	FocusKeyword    string           `json:"focusKeyword"`
	CanonicalURL    string           `json:"canonicalUrl"`
	OGImage         string           `json:"ogImage"`
	Category        string           `json:"category"`
	Tags            string           `json:"tags"`
	FeaturedImage   string           `json:"featuredImage"`
	CoverImage      string           `json:"coverImage"`
	Featured        bool             `json:"featured"`
	Status          string           `json:"status" binding:"omitempty,oneof=draft published scheduled"`
	ReadingTime     int              `json:"readingTime"`
	WordCount       int              `json:"wordCount"`
	FleschScore     string           `json:"fleschScore"`
	Headings        []domain.Heading `json:"headings"`
	ScheduledAt     *time.Time       `json:"scheduledAt"`
}

func (h *Handler) CreateBlogPost(c *gin.Context) {
	var req createBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if req.Status == "" {
		req.Status = domain.BlogStatusDraft
	}

	post, err := h.Store.CreateBlogPost(c.Request.Context(), domain.BlogPost{
		Title:           req.Title,
		Slug:            req.Slug,
		Excerpt:         req.Excerpt,
		Content:         req.Content,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Keywords:        req.Keywords,
		FocusKeyword:    req.FocusKeyword,
		CanonicalURL:    req.CanonicalURL,
		OGImage:         req.OGImage,
		Category:        req.Category,
		Tags:            req.Tags,
		FeaturedImage:   req.FeaturedImage,
		CoverImage:      req.CoverImage,
		Featured:        req.Featured,
		Status:          req.Status,
		ReadingTime:     req.ReadingTime,
		WordCount:       req.WordCount,
		FleschScore:     req.FleschScore,
		Headings:        req.Headings,
		ScheduledAt:     req.ScheduledAt,
	})
	if err != nil {
		storeError(c, err, "blog post")
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *Handler) UpdateBlogPost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var patch domain.BlogPostPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	post, err := h.Store.UpdateBlogPost(c.Request.Context(), id, patch)
	if err != nil {
		storeError(c, err, "blog post")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *Handler) DeleteBlogPost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	existed, err := h.Store.DeleteBlogPost(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "blog post")
		return
	}
	deleted(c, existed, "blog post")
}
