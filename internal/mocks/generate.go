package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name PlayerFinder --dir ../domain/search --output domain/search --outpkg searchmock --filename player_finder_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/search --output domain/search --outpkg searchmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/player --output domain/player --outpkg playermock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Geocoder --dir ../usecase --output usecase --outpkg usecasemock --filename geocoder_mock.go
