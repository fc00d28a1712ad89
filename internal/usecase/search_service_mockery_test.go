package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/codescribler/playerprofile-sub000/internal/domain/player"
	"github.com/codescribler/playerprofile-sub000/internal/domain/search"
	"github.com/codescribler/playerprofile-sub000/internal/domain/user"
	playermock "github.com/codescribler/playerprofile-sub000/internal/mocks/domain/player"
	searchmock "github.com/codescribler/playerprofile-sub000/internal/mocks/domain/search"
	usecasemock "github.com/codescribler/playerprofile-sub000/internal/mocks/usecase"
	"github.com/codescribler/playerprofile-sub000/internal/platform/id"
	"github.com/stretchr/testify/mock"
)

func TestSearchService_Search_ScopesQueryToCallerUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	finder := searchmock.NewPlayerFinder(t)
	playerRepo := playermock.NewRepository(t)
	geocoder := usecasemock.NewGeocoder(t)

	service := NewSearchService(finder, playerRepo, geocoder)
	scout := user.Principal{UserID: "user-scout", Role: user.RoleScout}
	pool := []player.Player{{ID: "ply-101", FirstName: "Nina", LastName: "Okafor", IsPublished: true}}

	// A scout never sees drafts: the compiled query must carry the
	// published-only scope, not the caller's user id.
	finder.
		On("Search", mock.Anything, mock.MatchedBy(func(q search.Query) bool {
			return q.Visibility.PublishedOnly && q.Visibility.OwnerUserID == ""
		})).
		Return(pool, nil).
		Once()
	playerRepo.
		On("ListPositionsByPlayerIDs", mock.Anything, []string{"ply-101"}).
		Return(map[string][]player.Position{}, nil).
		Once()
	playerRepo.
		On("ListTeamsByPlayerIDs", mock.Anything, []string{"ply-101"}).
		Return(map[string][]player.Team{}, nil).
		Once()
	playerRepo.
		On("ListAbilitiesByPlayerIDs", mock.Anything, []string{"ply-101"}).
		Return(map[string]player.Abilities{}, nil).
		Once()

	got, err := service.Search(ctx, scout, search.Criteria{})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].ID != "ply-101" {
		t.Fatalf("unexpected results: %+v", got)
	}
	if got[0].Name != "Nina Okafor" {
		t.Fatalf("unexpected name: %q", got[0].Name)
	}
}

func TestSearchService_Search_FinderFailureIsStorageFailureUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	finder := searchmock.NewPlayerFinder(t)
	playerRepo := playermock.NewRepository(t)
	geocoder := usecasemock.NewGeocoder(t)

	service := NewSearchService(finder, playerRepo, geocoder)

	finder.
		On("Search", mock.Anything, mock.Anything).
		Return(nil, errors.New("pq: connection refused")).
		Once()

	_, err := service.Search(ctx, user.Principal{UserID: "user-scout", Role: user.RoleScout}, search.Criteria{})
	if !errors.Is(err, ErrStorageFailure) {
		t.Fatalf("expected ErrStorageFailure, got %v", err)
	}
}

func TestSavedSearchService_Run_MissingSearchUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	savedRepo := searchmock.NewRepository(t)
	finder := searchmock.NewPlayerFinder(t)
	playerRepo := playermock.NewRepository(t)
	geocoder := usecasemock.NewGeocoder(t)

	searcher := NewSearchService(finder, playerRepo, geocoder)
	service := NewSavedSearchService(savedRepo, searcher, id.NewRandomGenerator())

	savedRepo.
		On("GetByID", mock.Anything, "ss-missing").
		Return(search.SavedSearch{}, false, nil).
		Once()

	_, err := service.Run(ctx, user.Principal{UserID: "user-scout", Role: user.RoleScout}, "ss-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
