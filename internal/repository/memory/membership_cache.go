package memory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// MembershipCache keeps recent workspace membership checks in process
// memory so hot request paths skip the database round trip.
type MembershipCache struct {
	cache *cache.Cache
}

func NewMembershipCache() *MembershipCache {
	// Memberships change rarely; a short TTL keeps revocations timely.
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &MembershipCache{
		cache: c,
	}
}

func membershipKey(workspaceId, userId uuid.UUID) string {
	return fmt.Sprintf("%s:%s", workspaceId, userId)
}

func (r *MembershipCache) Set(workspaceId, userId uuid.UUID, isMember bool) {
	r.cache.Set(membershipKey(workspaceId, userId), isMember, cache.DefaultExpiration)
}

func (r *MembershipCache) Get(workspaceId, userId uuid.UUID) (bool, bool) {
	if x, found := r.cache.Get(membershipKey(workspaceId, userId)); found {
		return x.(bool), true
	}
	return false, false
}

func (r *MembershipCache) Invalidate(workspaceId, userId uuid.UUID) {
	r.cache.Delete(membershipKey(workspaceId, userId))
}
