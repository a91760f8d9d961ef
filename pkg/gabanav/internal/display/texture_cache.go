package display

import "github.com/veandco/go-sdl2/sdl"

const defaultMaxCacheSize = 8

// TextureCache keeps the rendered texture of each mounted screen, keyed by
// path, and destroys the least recently used one when full.
type TextureCache struct {
	textures map[string]*sdl.Texture
	order    []string // tracks insertion order for LRU eviction
	maxSize  int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

func (c *TextureCache) Get(key string) *sdl.Texture {
	if texture, exists := c.textures[key]; exists {
		c.touch(key)
		return texture
	}
	return nil
}

// Set stores texture under key, destroying any texture it replaces.
func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	if old, exists := c.textures[key]; exists {
		if old != texture {
			old.Destroy()
		}
		c.textures[key] = texture
		c.touch(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

// Remove destroys the texture stored under key.
func (c *TextureCache) Remove(key string) {
	texture, exists := c.textures[key]
	if !exists {
		return
	}
	texture.Destroy()
	delete(c.textures, key)
	c.drop(key)
}

func (c *TextureCache) touch(key string) {
	c.drop(key)
	c.order = append(c.order, key)
}

func (c *TextureCache) drop(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		texture.Destroy()
		delete(c.textures, oldest)
	}
}

func (c *TextureCache) Destroy() {
	for _, texture := range c.textures {
		texture.Destroy()
	}
	c.textures = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}
