package memory

import (
	"time"

	"speedpress-addons-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// CartRepository keeps per-session carts in memory. Carts expire after an
// hour of inactivity; orders are the persisted outcome of a cart.
type CartRepository struct {
	cache *cache.Cache
}

func NewCartRepository() *CartRepository {
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &CartRepository{
		cache: c,
	}
}

func (r *CartRepository) Save(cart *entity.Cart) {
	r.cache.Set(cart.Id, cart, cache.DefaultExpiration)
}

func (r *CartRepository) Get(cartId string) (*entity.Cart, bool) {
	if x, found := r.cache.Get(cartId); found {
		return x.(*entity.Cart), true
	}
	return nil, false
}

func (r *CartRepository) Delete(cartId string) {
	r.cache.Delete(cartId)
}
