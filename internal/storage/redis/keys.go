package redis

import (
	"fmt"

	"github.com/drydock-dev/drydock/internal/model"
)

// Key prefix for all control-plane data
const keyPrefix = "drydock"

// userKey returns the Redis key for a User record
func userKey(id int) string {
	return fmt.Sprintf("%s:user:%d", keyPrefix, id)
}

// userListKey returns the Redis key for the LIST of user ids in insertion order
func userListKey() string {
	return fmt.Sprintf("%s:users", keyPrefix)
}

// usernameIndexKey returns the Redis key for the username -> user id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// userSeqKey returns the Redis key for the user id sequence
func userSeqKey() string {
	return fmt.Sprintf("%s:seq:user", keyPrefix)
}

// resourceKey returns the Redis key for a Resource record
func resourceKey(kind model.ResourceKind, id int) string {
	return fmt.Sprintf("%s:resource:%s:%d", keyPrefix, kind, id)
}

// resourceListKey returns the Redis key for the LIST of resource ids of a kind
func resourceListKey(kind model.ResourceKind) string {
	return fmt.Sprintf("%s:resources:%s", keyPrefix, kind)
}

// resourceSeqKey returns the Redis key for a kind's resource id sequence
func resourceSeqKey(kind model.ResourceKind) string {
	return fmt.Sprintf("%s:seq:resource:%s", keyPrefix, kind)
}
