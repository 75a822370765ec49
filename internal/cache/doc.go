// Package cache provides a small generic memo cache with a soft size limit.
//
//	c := cache.New[string, int](100)
//	v := c.GetOrCreate("key", func() int { return 42 })
//
// When the number of entries exceeds the soft limit, the least recently
// used quarter is evicted. Cache is safe for concurrent use and must not
// be copied after creation.
package cache
