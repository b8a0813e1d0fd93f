package cache

// Cache is a bounded key-value store shared by the renderers.
type Cache interface {
	Get(key interface{}) (interface{}, bool)
	Add(key, value interface{})
	Keys() []interface{}
	Delete(key interface{})
}
