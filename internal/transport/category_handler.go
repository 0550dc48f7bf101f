package transport

import (
	"net/http"

	"combo-catalog/internal/domain"
	"combo-catalog/internal/middleware"
	"combo-catalog/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateCategoryRequest represents the category creation payload
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// CategoryHandler handles HTTP requests for categories
type CategoryHandler struct {
	categoryService service.CategoryService
	logger          *zap.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService service.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// RegisterRoutes registers all category routes
func (h *CategoryHandler) RegisterRoutes(r chi.Router) {
	r.Route("/category", func(r chi.Router) {
		r.Get("/all", h.GetAll)
		r.Post("/create", h.CreateCategory)
		r.Get("/{id}", h.GetCategoryByID)
	})
}

// GetAll returns every category
func (h *CategoryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.GetAll(r.Context())
	if err != nil {
		middleware.HandleError(w, r, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, categories)
}

// GetCategoryByID returns a single category
func (h *CategoryHandler) GetCategoryByID(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(w, r, "id")
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategoryByID(r.Context(), id)
	if err != nil {
		middleware.HandleError(w, r, h.logger, err)
		return
	}
	if category == nil {
		middleware.HandleError(w, r, h.logger, service.ErrCategoryNotFound)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, category)
}

// CreateCategory handles category creation
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Category validation failed", zap.Error(err))
		middleware.RespondWithDecodeError(w, err)
		return
	}

	category, err := h.categoryService.CreateCategory(r.Context(), domain.NewCategory(req.Name))
	if err != nil {
		middleware.HandleError(w, r, h.logger, err)
		return
	}

	h.logger.Info("Category created", zap.Int64("category_id", category.ID))
	middleware.RespondWithJSON(w, http.StatusCreated, category)
}
