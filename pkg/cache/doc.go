// Package cache provides a generic, thread-safe LRU cache with an optional
// time to live.
//
// The content client keeps decoded CMS responses here so page rendering does
// not hit the CMS on every request:
//
//	responses := cache.NewLRUCache[string, []byte](256, cache.WithTTL(5*time.Minute))
//	responses.Put("items/pages?fields=*", body)
//
//	if body, ok := responses.Get("items/pages?fields=*"); ok {
//		// serve from memory
//	}
//
// Entries past their time to live are dropped lazily by Get, or eagerly by
// Purge. A callback registered with SetEvictCallback sees every entry that
// leaves the cache.
package cache
