package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name StatsTrigger --dir ../usecase --output usecase --outpkg usecasemock --filename stats_trigger_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/player --output player --outpkg playermock --filename repository_mock.go
