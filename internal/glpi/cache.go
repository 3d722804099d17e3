package glpi

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// Cache armazena resultados de extração em memória
type Cache struct {
	data    map[string]*entradaCache
	mu      sync.RWMutex
	ttl     time.Duration
	maxSize int
}

type entradaCache struct {
	resultado *Resultado
	timestamp time.Time
}

// NewCache cria um novo cache de extração
func NewCache(ttl time.Duration, maxSize int) *Cache {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if maxSize <= 0 {
		maxSize = 500
	}
	return &Cache{
		data:    make(map[string]*entradaCache),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

// Get busca um resultado no cache. O resultado devolvido é compartilhado e não deve ser alterado.
func (c *Cache) Get(key string) *Resultado {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if cached, ok := c.data[key]; ok {
		if time.Since(cached.timestamp) < c.ttl {
			return cached.resultado
		}
	}
	return nil
}

// Set armazena um resultado no cache
func (c *Cache) Set(key string, resultado *Resultado) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.data[key]; !exists && len(c.data) >= c.maxSize {
		c.cleanup()
	}

	c.data[key] = &entradaCache{
		resultado: resultado,
		timestamp: time.Now(),
	}
}

// GerarChave gera a chave do cache para um texto e formato
func GerarChave(texto, formato string) string {
	hash := sha256.Sum256([]byte(formato + "|" + texto))
	return hex.EncodeToString(hash[:16])
}

// cleanup remove entradas expiradas e, se ainda cheio, a mais antiga
func (c *Cache) cleanup() {
	now := time.Now()
	for key, cached := range c.data {
		if now.Sub(cached.timestamp) > c.ttl {
			delete(c.data, key)
		}
	}

	if len(c.data) >= c.maxSize {
		oldest := now
		oldestKey := ""
		for key, cached := range c.data {
			if !cached.timestamp.After(oldest) {
				oldest = cached.timestamp
				oldestKey = key
			}
		}
		if oldestKey != "" {
			delete(c.data, oldestKey)
		}
	}
}

// Clear limpa todo o cache
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]*entradaCache)
}

// Stats retorna estatísticas do cache
func (c *Cache) Stats() (size int, expired int) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	size = len(c.data)
	now := time.Now()
	for _, cached := range c.data {
		if now.Sub(cached.timestamp) > c.ttl {
			expired++
		}
	}
	return
}
