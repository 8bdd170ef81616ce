package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"content-dashboard/internal/dashboard"
	"content-dashboard/internal/dataview"
	"content-dashboard/internal/domain"
	"content-dashboard/internal/logger"
	"content-dashboard/internal/middleware"
	"content-dashboard/internal/service"
	"content-dashboard/internal/validator"
)

// ArticleHandler handles article table and editing requests.
type ArticleHandler struct {
	store          *dashboard.Store
	articleService service.ArticleServiceInterface
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(store *dashboard.Store, articleService service.ArticleServiceInterface) *ArticleHandler {
	return &ArticleHandler{
		store:          store,
		articleService: articleService,
	}
}

// ArticleResponse represents an article in the API response, with the raw
// counters plus their display forms.
type ArticleResponse struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Author           string `json:"author"`
	PublishedDate    string `json:"publishedDate"`
	PublishedDisplay string `json:"publishedDisplay"`
	Views            int    `json:"views"`
	ViewsDisplay     string `json:"viewsDisplay"`
	Likes            int    `json:"likes"`
	LikesDisplay     string `json:"likesDisplay"`
	Comments         int    `json:"comments"`
	CommentsDisplay  string `json:"commentsDisplay"`
	Content          string `json:"content"`
	Status           string `json:"status"`
}

func toArticleResponse(a domain.Article) ArticleResponse {
	return ArticleResponse{
		ID:               a.ID,
		Title:            a.Title,
		Author:           a.Author,
		PublishedDate:    a.PublishedDate,
		PublishedDisplay: dataview.FormatDate(a.PublishedDate),
		Views:            a.Views,
		ViewsDisplay:     dataview.FormatNumber(a.Views),
		Likes:            a.Likes,
		LikesDisplay:     dataview.FormatNumber(a.Likes),
		Comments:         a.Comments,
		CommentsDisplay:  dataview.FormatNumber(a.Comments),
		Content:          a.Content,
		Status:           string(a.Status),
	}
}

// ViewResponse is the derived table view: the visible window plus the
// inputs it was computed from.
type ViewResponse struct {
	Items      []ArticleResponse `json:"items"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalItems int               `json:"totalItems"`
	TotalPages int               `json:"totalPages"`
	Filters    domain.Filters    `json:"filters"`
	SortConfig domain.SortConfig `json:"sortConfig"`
}

func (h *ArticleHandler) viewResponse() ViewResponse {
	state, page := h.store.Snapshot()

	items := make([]ArticleResponse, 0, len(page.Items))
	for _, a := range page.Items {
		items = append(items, toArticleResponse(a))
	}

	return ViewResponse{
		Items:      items,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
		Filters:    state.Filters,
		SortConfig: state.SortConfig,
	}
}

// GetView handles GET /api/v1/articles - the current derived table view.
func (h *ArticleHandler) GetView(c *gin.Context) {
	c.JSON(http.StatusOK, h.viewResponse())
}

// SetFilters handles PATCH /api/v1/articles/filters - merge a partial
// criteria change and reset to page 1.
func (h *ArticleHandler) SetFilters(c *gin.Context) {
	var patch domain.FilterPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter payload"})
		return
	}

	h.store.Dispatch(dashboard.SetFilters{Patch: patch})
	c.JSON(http.StatusOK, h.viewResponse())
}

// SearchRequest carries one search-box keystroke.
type SearchRequest struct {
	Value string `json:"value"`
}

// Search handles POST /api/v1/articles/search - debounced search input.
// The filter change is applied after the quiet period, so the response is
// an acknowledgement, not the recomputed view.
func (h *ArticleHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid search payload"})
		return
	}

	h.store.Search(req.Value)
	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

// SortRequest names the column a sort intent targets.
type SortRequest struct {
	Key string `json:"key"`
}

// Sort handles POST /api/v1/articles/sort - the column-header sort intent.
// Repeating the same key toggles asc to desc; a new key starts ascending.
func (h *ArticleHandler) Sort(c *gin.Context) {
	var req SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sort payload"})
		return
	}

	if !domain.IsValidSortField(req.Key) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown sort field"})
		return
	}

	h.store.ToggleSort(domain.SortField(req.Key))
	c.JSON(http.StatusOK, h.viewResponse())
}

// PageRequest carries a page-change intent.
type PageRequest struct {
	Page int `json:"page"`
}

// SetPage handles POST /api/v1/articles/page. Pages below 1 are rejected;
// pages past the end are accepted and yield an empty window, since keeping
// requests in range is the UI's job.
func (h *ArticleHandler) SetPage(c *gin.Context) {
	var req PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page payload"})
		return
	}

	if req.Page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be at least 1"})
		return
	}

	h.store.Dispatch(dashboard.SetCurrentPage{Page: req.Page})
	c.JSON(http.StatusOK, h.viewResponse())
}

// Authors handles GET /api/v1/articles/authors - the distinct author names
// for the filter dropdown.
func (h *ArticleHandler) Authors(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"authors": h.store.Authors()})
}

// GetArticle handles GET /api/v1/articles/:id.
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id := c.Param("id")

	article, ok := h.store.ArticleByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}

// UpdateArticle handles PUT /api/v1/articles/:id - the edit-form
// submission. Field-level validation failures block the update and leave
// the article untouched.
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id := c.Param("id")

	var form validator.EditForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article payload"})
		return
	}

	updated, err := h.articleService.UpdateArticle(c.Request.Context(), id, form)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": ve.Fields})
		case errors.Is(err, service.ErrArticleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		default:
			logger.Error("Failed to update article",
				"request_id", middleware.GetRequestID(c),
				"article_id", id,
				"error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update article"})
		}
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(updated))
}
