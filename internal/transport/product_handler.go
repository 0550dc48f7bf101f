package transport

import (
	"net/http"
	"strconv"
	"strings"

	"combo-catalog/internal/domain"
	"combo-catalog/internal/middleware"
	"combo-catalog/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateProductRequest represents the product creation payload
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description" validate:"max=2000"`
	Price       float64 `json:"price" validate:"gte=0"`
	CategoryID  int64   `json:"categoryId" validate:"required,gt=0"`
}

// UpdateProductRequest represents a partial product update. Omitted fields
// keep their stored values.
type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitnil,min=1,max=255"`
	Description *string  `json:"description" validate:"omitnil,max=2000"`
	Price       *float64 `json:"price" validate:"omitnil,gte=0"`
	CategoryID  *int64   `json:"categoryId" validate:"omitnil,gt=0"`
}

func (req UpdateProductRequest) toDomain() domain.ProductUpdate {
	return domain.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
	}
}

// ProductHandler handles HTTP requests for products
type ProductHandler struct {
	productService service.ProductService
	logger         *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/product", func(r chi.Router) {
		r.Get("/all", h.GetAll)
		r.Get("/bycategory/{categoryId}", h.GetProductsByCategory)
		r.Post("/create", h.CreateProduct)
		r.Put("/update/{id}", h.UpdateProduct)
		r.Delete("/delete/{id}", h.DeleteProduct)
		r.Get("/{id}", h.GetProductByID)
	})
}

// GetAll lists products, optionally narrowed by ?categoryId= and ?name=
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	filter := domain.ProductFilter{
		Name: strings.TrimSpace(r.URL.Query().Get("name")),
	}

	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondBadParam(w, "categoryId")
			return
		}
		filter.CategoryID = &categoryID
	}

	products, err := h.productService.GetAll(r.Context(), filter)
	if err != nil {
		middleware.HandleError(w, r, h.logger, err)
		return
	}

	middleware.RespondWithMessage(w, http.StatusOK, "Products", products)
}

// GetProductByID returns a single product
func (h *ProductHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(w, r, "id")
	if !ok {
		return
	}

	product, err := h.productService.GetProductByID(r.Context(), id)
	if err != nil {
		middleware.HandleError(w, r, h.logger, err)
		return
	}
	if product == nil {
		middleware.HandleError(w, r, h.logger, service.ErrProductNotFound)
		return
	}

	middleware.RespondWithMessage(w, http.StatusOK, "Product", product)
}

// GetProductsByCategory lists the products of one category
func (h *ProductHandler) GetProductsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := urlParamID(w, r, "categoryId")
	if !ok {
		return
	}

	products, err := h.productService.GetProductsByCategory(r.Context(), categoryID)
	if err != nil {
		middleware.HandleError(w, r, h.logger, err)
		return
	}

	middleware.RespondWithMessage(w, http.StatusOK, "Products", products)
}

// CreateProduct handles product creation
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Product validation failed", zap.Error(err))
		middleware.RespondWithDecodeError(w, err)
		return
	}

	product, err := h.productService.CreateProduct(r.Context(),
		domain.NewProduct(req.Name, req.Description, req.Price, req.CategoryID))
	if err != nil {
		middleware.HandleError(w, r, h.logger, err)
		return
	}

	h.logger.Info("Product created", zap.Int64("product_id", product.ID))
	middleware.RespondWithMessage(w, http.StatusCreated, "Product Created", product)
}

// UpdateProduct applies a partial update to an existing product
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Product update validation failed", zap.Error(err))
		middleware.RespondWithDecodeError(w, err)
		return
	}

	product, err := h.productService.UpdateProduct(r.Context(), id, req.toDomain())
	if err != nil {
		middleware.HandleError(w, r, h.logger, err)
		return
	}

	h.logger.Info("Product updated", zap.Int64("product_id", id))
	middleware.RespondWithMessage(w, http.StatusOK, "Product updated successfully", product)
}

// DeleteProduct removes a product and reports the number of deleted rows
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := h.productService.DeleteProduct(r.Context(), id)
	if err != nil {
		middleware.HandleError(w, r, h.logger, err)
		return
	}

	h.logger.Info("Product deleted", zap.Int64("product_id", id))
	middleware.RespondWithMessage(w, http.StatusOK, "Product deleted successfully", deleted)
}
