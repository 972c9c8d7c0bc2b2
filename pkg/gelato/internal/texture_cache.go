package internal

const defaultMaxCacheSize = 32

// TextureCache is a small LRU of host textures. Evicted entries are passed
// to the destroy function so the host can free native memory.
type TextureCache[T any] struct {
	textures map[string]T
	order    []string // tracks insertion order for LRU eviction
	maxSize  int
	destroy  func(T)
}

func NewTextureCache[T any](destroy func(T)) *TextureCache[T] {
	return NewTextureCacheWithSize(defaultMaxCacheSize, destroy)
}

func NewTextureCacheWithSize[T any](maxSize int, destroy func(T)) *TextureCache[T] {
	if maxSize <= 0 {
		maxSize = defaultMaxCacheSize
	}
	return &TextureCache[T]{
		textures: make(map[string]T),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
		destroy:  destroy,
	}
}

func (c *TextureCache[T]) Get(key string) (T, bool) {
	texture, exists := c.textures[key]
	if exists {
		c.moveToEnd(key)
	}
	return texture, exists
}

func (c *TextureCache[T]) Set(key string, texture T) {
	if old, exists := c.textures[key]; exists {
		c.release(old)
		c.textures[key] = texture
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

// Delete removes and destroys a single entry.
func (c *TextureCache[T]) Delete(key string) {
	texture, exists := c.textures[key]
	if !exists {
		return
	}
	c.release(texture)
	delete(c.textures, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *TextureCache[T]) Len() int {
	return len(c.order)
}

func (c *TextureCache[T]) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache[T]) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		c.release(texture)
		delete(c.textures, oldest)
	}
}

func (c *TextureCache[T]) release(texture T) {
	if c.destroy != nil {
		c.destroy(texture)
	}
}

func (c *TextureCache[T]) Destroy() {
	for _, texture := range c.textures {
		c.release(texture)
	}
	c.textures = make(map[string]T)
	c.order = c.order[:0]
}
