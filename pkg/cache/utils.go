package cache

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// OperationKey builds a canonical cache key for an operation invocation.
// encoding/json sorts map keys, so identical argument maps always produce
// the same key regardless of insertion order.
func OperationKey(operation string, args map[string]interface{}) string {
	if len(args) == 0 {
		return fmt.Sprintf("op:%s", operation)
	}
	b, err := json.Marshal(args)
	if err != nil {
		return fmt.Sprintf("op:%s:unkeyed", operation)
	}
	return fmt.Sprintf("op:%s:%s", operation, HashKey(string(b)))
}

// HashKey generates MD5 hash of a key.
func HashKey(key string) string {
	hasher := md5.New()
	hasher.Write([]byte(key))
	return hex.EncodeToString(hasher.Sum(nil))
}
