package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitmarket/internal/repositories"
	"fitmarket/internal/services"
	"fitmarket/pkg/tokendeny"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, denylist tokendeny.Denylist) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, denylist)
}
