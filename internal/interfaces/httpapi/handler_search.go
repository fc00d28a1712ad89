package httpapi

import (
	"context"
	"fmt"
	"math"
	"net/http"

	"github.com/codescribler/playerprofile-sub000/internal/domain/player"
	"github.com/codescribler/playerprofile-sub000/internal/domain/search"
	"github.com/codescribler/playerprofile-sub000/internal/usecase"
)

const (
	cmPerFoot = 30.48
	cmPerInch = 2.54
)

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchPlayers")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req searchCriteriaDTO
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	results, err := h.searchService.Search(ctx, principal, req.toCriteria())
	if err != nil {
		h.logger.WarnContext(ctx, "search players failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summariesToDTO(ctx, results))
}

func (h *Handler) QuickSearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.QuickSearchPlayers")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	results, err := h.searchService.QuickSearch(ctx, principal, r.URL.Query().Get("q"))
	if err != nil {
		h.logger.WarnContext(ctx, "quick search failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summariesToDTO(ctx, results))
}

func (h *Handler) ListMyPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyPlayers")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	results, err := h.searchService.ListOwnPlayers(ctx, principal)
	if err != nil {
		h.logger.WarnContext(ctx, "list own players failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summariesToDTO(ctx, results))
}

// searchCriteriaDTO is the wire shape of a criteria set. Heights may arrive
// in centimetres or feet/inches; only centimetres cross into the domain.
type searchCriteriaDTO struct {
	Basic    *basicFiltersDTO    `json:"basic,omitempty"`
	Physical *physicalFiltersDTO `json:"physical,omitempty"`
	Playing  *playingFiltersDTO  `json:"playing,omitempty"`
	Skills   map[string]int      `json:"skills,omitempty" validate:"omitempty,dive,min=0,max=10"`
	Sort     string              `json:"sort,omitempty"`
}

type basicFiltersDTO struct {
	Name              string   `json:"name,omitempty" validate:"omitempty,max=100"`
	AgeMin            *int     `json:"ageMin,omitempty" validate:"omitempty,min=0"`
	AgeMax            *int     `json:"ageMax,omitempty" validate:"omitempty,min=0"`
	Nationality       string   `json:"nationality,omitempty" validate:"omitempty,max=100"`
	Postcode          string   `json:"postcode,omitempty" validate:"omitempty,max=10"`
	RadiusMiles       float64  `json:"radiusMiles,omitempty" validate:"omitempty,min=0"`
	Availability      []string `json:"availability,omitempty"`
	WillingToRelocate *bool    `json:"willingToRelocate,omitempty"`
}

type physicalFiltersDTO struct {
	MinHeightCM      *int     `json:"minHeightCm,omitempty" validate:"omitempty,min=0"`
	MaxHeightCM      *int     `json:"maxHeightCm,omitempty" validate:"omitempty,min=0"`
	MinHeightFeet    *int     `json:"minHeightFeet,omitempty" validate:"omitempty,min=0,max=8"`
	MinHeightInches  *int     `json:"minHeightInches,omitempty" validate:"omitempty,min=0,max=11"`
	MaxHeightFeet    *int     `json:"maxHeightFeet,omitempty" validate:"omitempty,min=0,max=8"`
	MaxHeightInches  *int     `json:"maxHeightInches,omitempty" validate:"omitempty,min=0,max=11"`
	PreferredFoot    string   `json:"preferredFoot,omitempty"`
	MinWeakFoot      *int     `json:"minWeakFoot,omitempty" validate:"omitempty,min=0,max=100"`
	MaxSprint10mSecs *float64 `json:"maxSprint10mSecs,omitempty" validate:"omitempty,gt=0"`
	MaxSprint30mSecs *float64 `json:"maxSprint30mSecs,omitempty" validate:"omitempty,gt=0"`
}

type playingFiltersDTO struct {
	Positions              []string `json:"positions,omitempty" validate:"omitempty,dive,max=3"`
	PrimaryPositionOnly    bool     `json:"primaryPositionOnly,omitempty"`
	MinYearsPlaying        *int     `json:"minYearsPlaying,omitempty" validate:"omitempty,min=0"`
	LeagueName             string   `json:"leagueName,omitempty" validate:"omitempty,max=100"`
	RepresentativeDistrict bool     `json:"representativeDistrict,omitempty"`
	RepresentativeCounty   bool     `json:"representativeCounty,omitempty"`
}

func (dto searchCriteriaDTO) toCriteria() search.Criteria {
	criteria := search.Criteria{Sort: search.Sort(dto.Sort)}

	if dto.Basic != nil {
		availability := make([]player.Availability, 0, len(dto.Basic.Availability))
		for _, a := range dto.Basic.Availability {
			availability = append(availability, player.Availability(a))
		}
		if len(availability) == 0 {
			availability = nil
		}
		criteria.Basic = &search.BasicCriteria{
			Name:              dto.Basic.Name,
			AgeMin:            dto.Basic.AgeMin,
			AgeMax:            dto.Basic.AgeMax,
			Nationality:       dto.Basic.Nationality,
			Postcode:          dto.Basic.Postcode,
			RadiusMiles:       dto.Basic.RadiusMiles,
			Availability:      availability,
			WillingToRelocate: dto.Basic.WillingToRelocate,
		}
	}

	if dto.Physical != nil {
		var foot *player.PreferredFoot
		if dto.Physical.PreferredFoot != "" {
			parsed := player.PreferredFoot(dto.Physical.PreferredFoot)
			foot = &parsed
		}
		criteria.Physical = &search.PhysicalCriteria{
			MinHeightCM:      heightCM(dto.Physical.MinHeightCM, dto.Physical.MinHeightFeet, dto.Physical.MinHeightInches),
			MaxHeightCM:      heightCM(dto.Physical.MaxHeightCM, dto.Physical.MaxHeightFeet, dto.Physical.MaxHeightInches),
			PreferredFoot:    foot,
			MinWeakFoot:      dto.Physical.MinWeakFoot,
			MaxSprint10mSecs: dto.Physical.MaxSprint10mSecs,
			MaxSprint30mSecs: dto.Physical.MaxSprint30mSecs,
		}
	}

	if dto.Playing != nil {
		criteria.Playing = &search.PlayingCriteria{
			Positions:              dto.Playing.Positions,
			PrimaryPositionOnly:    dto.Playing.PrimaryPositionOnly,
			MinYearsPlaying:        dto.Playing.MinYearsPlaying,
			LeagueName:             dto.Playing.LeagueName,
			RepresentativeDistrict: dto.Playing.RepresentativeDistrict,
			RepresentativeCounty:   dto.Playing.RepresentativeCounty,
		}
	}

	if len(dto.Skills) > 0 {
		criteria.Skills = dto.Skills
	}

	return criteria
}

// heightCM resolves a bound to centimetres. An explicit centimetre value
// wins; otherwise feet/inches are converted and rounded.
func heightCM(cm, feet, inches *int) *int {
	if cm != nil {
		v := *cm
		return &v
	}
	if feet == nil && inches == nil {
		return nil
	}

	var total float64
	if feet != nil {
		total += float64(*feet) * cmPerFoot
	}
	if inches != nil {
		total += float64(*inches) * cmPerInch
	}
	rounded := int(math.Round(total))

	return &rounded
}

type skillRatingDTO struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
}

type playerSummaryDTO struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Age             int              `json:"age"`
	PrimaryPosition string           `json:"primaryPosition"`
	OtherPositions  []string         `json:"otherPositions,omitempty"`
	ClubName        string           `json:"clubName,omitempty"`
	LeagueName      string           `json:"leagueName,omitempty"`
	Location        string           `json:"location"`
	DistanceMiles   *float64         `json:"distanceMiles,omitempty"`
	Availability    string           `json:"availability,omitempty"`
	HeightCM        int              `json:"heightCm,omitempty"`
	PreferredFoot   string           `json:"preferredFoot,omitempty"`
	TopSkills       []skillRatingDTO `json:"topSkills,omitempty"`
	ThumbnailURL    string           `json:"thumbnailUrl,omitempty"`
}

func summariesToDTO(ctx context.Context, summaries []usecase.PlayerSummary) []playerSummaryDTO {
	ctx, span := startSpan(ctx, "httpapi.summariesToDTO")
	defer span.End()
	_ = ctx

	items := make([]playerSummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		skills := make([]skillRatingDTO, 0, len(s.TopSkills))
		for _, skill := range s.TopSkills {
			skills = append(skills, skillRatingDTO{Name: skill.Name, Rating: skill.Rating})
		}
		if len(skills) == 0 {
			skills = nil
		}
		items = append(items, playerSummaryDTO{
			ID:              s.ID,
			Name:            s.Name,
			Age:             s.Age,
			PrimaryPosition: s.PrimaryPosition,
			OtherPositions:  append([]string(nil), s.OtherPositions...),
			ClubName:        s.ClubName,
			LeagueName:      s.LeagueName,
			Location:        s.Location,
			DistanceMiles:   s.DistanceMiles,
			Availability:    s.Availability,
			HeightCM:        s.HeightCM,
			PreferredFoot:   s.PreferredFoot,
			TopSkills:       skills,
			ThumbnailURL:    s.ThumbnailURL,
		})
	}

	return items
}
