package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/codescribler/playerprofile-sub000/internal/domain/search"
	"github.com/codescribler/playerprofile-sub000/internal/usecase"
)

func (h *Handler) CreateSavedSearch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSavedSearch")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createSavedSearchRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.savedSearchService.Save(ctx, principal, req.Name, req.Criteria.toCriteria())
	if err != nil {
		h.logger.WarnContext(ctx, "create saved search failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, savedSearchToDTO(ctx, saved, true))
}

func (h *Handler) ListSavedSearches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSavedSearches")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	items, err := h.savedSearchService.List(ctx, principal)
	if err != nil {
		h.logger.WarnContext(ctx, "list saved searches failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	dtos := make([]savedSearchDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, savedSearchToDTO(ctx, item, false))
	}

	writeSuccess(ctx, w, http.StatusOK, dtos)
}

func (h *Handler) GetSavedSearch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSavedSearch")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	searchID := r.PathValue("searchID")
	saved, err := h.savedSearchService.Get(ctx, principal, searchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get saved search failed", "user_id", principal.UserID, "search_id", searchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, savedSearchToDTO(ctx, saved, true))
}

func (h *Handler) RunSavedSearch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSavedSearch")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	searchID := r.PathValue("searchID")
	results, err := h.savedSearchService.Run(ctx, principal, searchID)
	if err != nil {
		h.logger.WarnContext(ctx, "run saved search failed", "user_id", principal.UserID, "search_id", searchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summariesToDTO(ctx, results))
}

type createSavedSearchRequest struct {
	Name     string            `json:"name" validate:"required,max=100"`
	Criteria searchCriteriaDTO `json:"criteria"`
}

type savedSearchDTO struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	CreatedAt string             `json:"createdAt"`
	Criteria  *searchCriteriaDTO `json:"criteria,omitempty"`
}

func savedSearchToDTO(ctx context.Context, saved search.SavedSearch, includeCriteria bool) savedSearchDTO {
	ctx, span := startSpan(ctx, "httpapi.savedSearchToDTO")
	defer span.End()
	_ = ctx

	dto := savedSearchDTO{
		ID:        saved.ID,
		Name:      saved.Name,
		CreatedAt: saved.CreatedAt.UTC().Format(time.RFC3339),
	}
	if includeCriteria {
		criteria := criteriaToDTO(saved.Criteria)
		dto.Criteria = &criteria
	}

	return dto
}

func criteriaToDTO(criteria search.Criteria) searchCriteriaDTO {
	dto := searchCriteriaDTO{Sort: string(criteria.Sort)}

	if criteria.Basic != nil {
		availability := make([]string, 0, len(criteria.Basic.Availability))
		for _, a := range criteria.Basic.Availability {
			availability = append(availability, string(a))
		}
		if len(availability) == 0 {
			availability = nil
		}
		dto.Basic = &basicFiltersDTO{
			Name:              criteria.Basic.Name,
			AgeMin:            criteria.Basic.AgeMin,
			AgeMax:            criteria.Basic.AgeMax,
			Nationality:       criteria.Basic.Nationality,
			Postcode:          criteria.Basic.Postcode,
			RadiusMiles:       criteria.Basic.RadiusMiles,
			Availability:      availability,
			WillingToRelocate: criteria.Basic.WillingToRelocate,
		}
	}

	if criteria.Physical != nil {
		foot := ""
		if criteria.Physical.PreferredFoot != nil {
			foot = string(*criteria.Physical.PreferredFoot)
		}
		dto.Physical = &physicalFiltersDTO{
			MinHeightCM:      criteria.Physical.MinHeightCM,
			MaxHeightCM:      criteria.Physical.MaxHeightCM,
			PreferredFoot:    foot,
			MinWeakFoot:      criteria.Physical.MinWeakFoot,
			MaxSprint10mSecs: criteria.Physical.MaxSprint10mSecs,
			MaxSprint30mSecs: criteria.Physical.MaxSprint30mSecs,
		}
	}

	if criteria.Playing != nil {
		dto.Playing = &playingFiltersDTO{
			Positions:              append([]string(nil), criteria.Playing.Positions...),
			PrimaryPositionOnly:    criteria.Playing.PrimaryPositionOnly,
			MinYearsPlaying:        criteria.Playing.MinYearsPlaying,
			LeagueName:             criteria.Playing.LeagueName,
			RepresentativeDistrict: criteria.Playing.RepresentativeDistrict,
			RepresentativeCounty:   criteria.Playing.RepresentativeCounty,
		}
	}

	if len(criteria.Skills) > 0 {
		skills := make(map[string]int, len(criteria.Skills))
		for name, min := range criteria.Skills {
			skills[name] = min
		}
		dto.Skills = skills
	}

	return dto
}
