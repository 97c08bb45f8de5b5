// Package cache provides a small generic LRU cache.
//
//	c := cache.New[string, *Info](64)
//	info, err := c.GetOrCreate(key, func() (*Info, error) {
//	    return parse(src)
//	})
//
// Failed creations are not cached. Cache is safe for concurrent use and
// must not be copied after creation.
package cache
