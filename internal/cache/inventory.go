package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix = "user:%d"
	PetKeyPrefix  = "pet:%d"
	VIPKeyPrefix  = "vip:%d"
)

const (
	UserTTL = 5 * time.Minute
	PetTTL  = 5 * time.Minute
	// VIPTTL is short: an expired subscription should start hitting quotas
	// within a minute, not a cache lifetime later.
	VIPTTL = time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func PetKey(petID uint) string {
	return fmt.Sprintf(PetKeyPrefix, petID)
}

func VIPKey(userID uint) string {
	return fmt.Sprintf(VIPKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
	Invalidate(ctx, VIPKey(userID))
}

func InvalidatePet(ctx context.Context, petID uint) {
	Invalidate(ctx, PetKey(petID))
}
