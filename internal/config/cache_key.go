package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// SessionKey returns the cache key marking a session token ID as live.
func (r *CacheKeyStruct) SessionKey(tokenID string) string {
	return fmt.Sprintf("session:%s", tokenID)
}

// LoginAttemptsKey returns the fixed-window counter key for login attempts
// from one client within the given window number.
func (r *CacheKeyStruct) LoginAttemptsKey(scope, clientIP string, window int64) string {
	return fmt.Sprintf("ratelimit:%s:%s:%d", scope, clientIP, window)
}

var CacheKey = NewCacheKeyStruct()
