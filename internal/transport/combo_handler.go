package transport

import (
	"net/http"

	"combo-catalog/internal/domain"
	"combo-catalog/internal/middleware"
	"combo-catalog/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateComboRequest represents the combo creation payload
type CreateComboRequest struct {
	Name     string  `json:"name" validate:"required,max=255"`
	Discount float64 `json:"discount" validate:"gte=0"`
}

// CreateAssociationRequest links an existing product to an existing combo
type CreateAssociationRequest struct {
	ComboID   int64 `json:"comboId" validate:"required,gt=0"`
	ProductID int64 `json:"productId" validate:"required,gt=0"`
}

// ComboHandler handles HTTP requests for combos and their products
type ComboHandler struct {
	comboService service.ComboService
	logger       *zap.Logger
}

// NewComboHandler creates a new ComboHandler
func NewComboHandler(comboService service.ComboService, logger *zap.Logger) *ComboHandler {
	return &ComboHandler{
		comboService: comboService,
		logger:       logger,
	}
}

// RegisterRoutes registers all combo routes
func (h *ComboHandler) RegisterRoutes(r chi.Router) {
	r.Route("/combo", func(r chi.Router) {
		r.Get("/all", h.GetAll)
		r.Post("/create", h.CreateCombo)
		r.Post("/product/association/create", h.CreateComboProductAssociation)
		r.Get("/{id}", h.GetComboByID)
		r.Get("/{id}/products", h.GetComboProducts)
	})
}

// GetAll returns every combo
func (h *ComboHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	combos, err := h.comboService.GetAll(r.Context())
	if err != nil {
		middleware.HandleError(w, r, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, combos)
}

// GetComboByID returns a single combo
func (h *ComboHandler) GetComboByID(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(w, r, "id")
	if !ok {
		return
	}

	combo, err := h.comboService.GetComboByID(r.Context(), id)
	if err != nil {
		middleware.HandleError(w, r, h.logger, err)
		return
	}
	if combo == nil {
		middleware.HandleError(w, r, h.logger, service.ErrComboNotFound)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, combo)
}

// CreateCombo handles combo creation
func (h *ComboHandler) CreateCombo(w http.ResponseWriter, r *http.Request) {
	var req CreateComboRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Combo validation failed", zap.Error(err))
		middleware.RespondWithDecodeError(w, err)
		return
	}

	combo, err := h.comboService.CreateCombo(r.Context(), domain.NewCombo(req.Name, req.Discount))
	if err != nil {
		middleware.HandleError(w, r, h.logger, err)
		return
	}

	h.logger.Info("Combo created", zap.Int64("combo_id", combo.ID))
	middleware.RespondWithJSON(w, http.StatusCreated, combo)
}

// CreateComboProductAssociation adds a product to a combo
func (h *ComboHandler) CreateComboProductAssociation(w http.ResponseWriter, r *http.Request) {
	var req CreateAssociationRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Association validation failed", zap.Error(err))
		middleware.RespondWithDecodeError(w, err)
		return
	}

	association, err := h.comboService.CreateComboProductAssociation(r.Context(),
		domain.NewComboProduct(req.ComboID, req.ProductID))
	if err != nil {
		middleware.HandleError(w, r, h.logger, err)
		return
	}

	h.logger.Info("Product added to combo",
		zap.Int64("combo_id", association.ComboID),
		zap.Int64("product_id", association.ProductID),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, association)
}

// GetComboProducts lists the products of a combo
func (h *ComboHandler) GetComboProducts(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(w, r, "id")
	if !ok {
		return
	}

	associations, err := h.comboService.GetComboProducts(r.Context(), id)
	if err != nil {
		middleware.HandleError(w, r, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, associations)
}
