package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/faresFatooh/media-platform/internal/model"
	"github.com/faresFatooh/media-platform/internal/service"
)

type ArticleStore interface {
	CreateArticle(ctx context.Context, article *model.NewsArticle) error
	ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]model.NewsArticle, error)
	CountByOwner(ctx context.Context, ownerID int64) (int, error)
	GetByID(ctx context.Context, ownerID, id int64) (*model.NewsArticle, error)
	DeleteByID(ctx context.Context, ownerID, id int64) (bool, error)
	ListPostsByArticle(ctx context.Context, ownerID, articleID int64) ([]model.GeneratedPost, error)
	ListPostsByArticleIDs(ctx context.Context, ownerID int64, ids []int64) (map[int64][]model.GeneratedPost, error)
}

type ContentGenerator interface {
	ProcessAndGenerate(ctx context.Context, ownerID int64, sourceURL, rawText string, platforms []string) (*service.GenerationResult, error)
}

type ArticleHandler struct {
	repository ArticleStore
	generator  ContentGenerator
}

func NewArticleHandler(repository ArticleStore, generator ContentGenerator) *ArticleHandler {
	return &ArticleHandler{repository: repository, generator: generator}
}

func (h *ArticleHandler) ProcessAndGenerate(c *gin.Context) {
	var req ProcessAndGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.generator.ProcessAndGenerate(c.Request.Context(), currentUserID(c), req.URL, req.Text, req.Platforms)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ProcessAndGenerateResponse{
		ArticleID:      result.Article.ID,
		ParsedNews:     result.ParsedNews,
		GeneratedPosts: result.Posts,
	})
}

func (h *ArticleHandler) ListArticles(c *gin.Context) {
	ownerID := currentUserID(c)
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	total, err := h.repository.CountByOwner(c.Request.Context(), ownerID)
	if err != nil {
		slog.Error("error counting articles", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	articles, err := h.repository.ListByOwner(c.Request.Context(), ownerID, limit, offset)
	if err != nil {
		slog.Error("error fetching articles", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var ids []int64
	for _, a := range articles {
		ids = append(ids, a.ID)
	}

	postMap, err := h.repository.ListPostsByArticleIDs(c.Request.Context(), ownerID, ids)
	if err != nil {
		slog.Error("error fetching posts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var articleRes []ArticleResponse
	for _, a := range articles {
		articleRes = append(articleRes, toArticleResponse(a, postMap[a.ID]))
	}

	c.JSON(http.StatusOK, ArticleListResponse{
		Articles: articleRes,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	})
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	ownerID := currentUserID(c)

	articleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article id"})
		return
	}

	article, err := h.repository.GetByID(c.Request.Context(), ownerID, articleID)
	if err != nil {
		slog.Error("error fetching article", "error", err, "article_id", articleID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	posts, err := h.repository.ListPostsByArticle(c.Request.Context(), ownerID, articleID)
	if err != nil {
		slog.Error("error fetching posts", "error", err, "article_id", articleID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(*article, posts))
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	topic := req.Topic
	if topic == "" {
		topic = model.DefaultTopic
	}

	article := model.NewsArticle{
		OwnerID:      currentUserID(c),
		SourceURL:    req.URL,
		OriginalText: req.Text,
		Topic:        topic,
	}

	if err := h.repository.CreateArticle(c.Request.Context(), &article); err != nil {
		slog.Error("error creating article", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, toArticleResponse(article, nil))
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	articleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article id"})
		return
	}

	deleted, err := h.repository.DeleteByID(c.Request.Context(), currentUserID(c), articleID)
	if err != nil {
		slog.Error("error deleting article", "error", err, "article_id", articleID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ArticleHandler) ListPosts(c *gin.Context) {
	ownerID := currentUserID(c)

	articleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article id"})
		return
	}

	article, err := h.repository.GetByID(c.Request.Context(), ownerID, articleID)
	if err != nil {
		slog.Error("error fetching article", "error", err, "article_id", articleID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	posts, err := h.repository.ListPostsByArticle(c.Request.Context(), ownerID, articleID)
	if err != nil {
		slog.Error("error fetching posts", "error", err, "article_id", articleID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		res = append(res, toPostResponse(p))
	}

	c.JSON(http.StatusOK, res)
}

func toPostResponse(p model.GeneratedPost) PostResponse {
	return PostResponse{
		ID:       p.ID,
		Platform: p.Platform,
		Content:  p.Content,
		Status:   p.Status,
	}
}

func toArticleResponse(a model.NewsArticle, posts []model.GeneratedPost) ArticleResponse {
	res := ArticleResponse{
		ID:           a.ID,
		SourceURL:    a.SourceURL,
		OriginalText: a.OriginalText,
		Topic:        a.Topic,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
		Posts:        []PostResponse{},
	}
	for _, p := range posts {
		res.Posts = append(res.Posts, toPostResponse(p))
	}
	return res
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)

	if param == "" {
		return defaultValue
	}

	parsedValue, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return parsedValue
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 10
		maxLimit     = 100
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}

func getQueryOffset(c *gin.Context) int {
	offset := getQueryInt("offset", 0, c)
	if offset < 0 {
		slog.Warn("invalid query parameter, using default", "param", "offset", "value", offset, "default", 0)
		return 0
	}
	return offset
}
