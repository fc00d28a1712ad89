package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/codescribler/playerprofile-sub000/internal/usecase"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	searchService      *usecase.SearchService
	savedSearchService *usecase.SavedSearchService
	logger             *slog.Logger
	validator          *validator.Validate
}

func NewHandler(
	searchService *usecase.SearchService,
	savedSearchService *usecase.SavedSearchService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		searchService:      searchService,
		savedSearchService: savedSearchService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeBody(r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
