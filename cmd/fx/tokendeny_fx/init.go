package tokendeny_fx

import (
	"log"

	"go.uber.org/fx"

	"fitmarket/internal/infra"
	"fitmarket/pkg/tokendeny"
)

var Module = fx.Provide(
	provideDenylist)

// provideDenylist prefers redis so logout survives restarts and is
// shared across replicas; without REDIS_ADDR it degrades to the
// in-process store.
func provideDenylist() tokendeny.Denylist {
	if client := infra.InitRedis(); client != nil {
		return tokendeny.NewRedisDenylist(client)
	}
	log.Println("REDIS_ADDR not set, using in-memory token denylist")
	return tokendeny.NewMemoryDenylist()
}
