package repositories

import (
	"strconv"
	"time"

	"github.com/maxaizer/dreamjob/internal/entities"
	gocache "github.com/patrickmn/go-cache"
)

type cityRepository interface {
	FindByID(id int) (entities.City, bool)
	FindAll() []entities.City
}

// CachedCities is a read-through decorator over the city store. Cities never
// change after seeding, so a TTL cache on the lookup path is safe.
type CachedCities struct {
	repo  cityRepository
	cache *gocache.Cache
}

func NewCachedCities(repo cityRepository) *CachedCities {
	return &CachedCities{repo: repo, cache: gocache.New(10*time.Minute, 20*time.Minute)}
}

func (c *CachedCities) FindByID(id int) (entities.City, bool) {
	key := strconv.Itoa(id)
	if value, found := c.cache.Get(key); found {
		return value.(entities.City), true
	}

	city, ok := c.repo.FindByID(id)
	if ok {
		c.cache.SetDefault(key, city)
	}
	return city, ok
}

func (c *CachedCities) FindAll() []entities.City {
	return c.repo.FindAll()
}
