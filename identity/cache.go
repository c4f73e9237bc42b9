package identity

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/kitabu/kitabu"
)

// SystemUserClient is the slice of the staff API needed to resolve an
// identity to its system user record. kitabu.UsersClient satisfies it.
type SystemUserClient interface {
	Current(ctx context.Context, token string) (kitabu.User, error)
}

type cacheEntry struct {
	user      kitabu.User
	fetchedAt time.Time
}

// UserCache resolves the externally-authenticated identity to a system user
// record at most once per session and exposes it for gating decisions. It is
// an explicitly constructed session object: built after the provider loads,
// torn down with it. Resolution failures never block rendering; the record
// simply stays absent and dependent pages treat "absent" as role none.
type UserCache struct {
	provider Provider
	users    SystemUserClient

	mu        sync.Mutex
	entry     *cacheEntry
	resolving bool
}

// NewUserCache returns a UserCache over the given provider and users client.
// The cache reports itself as resolving until the first Resolve completes.
func NewUserCache(provider Provider, users SystemUserClient) *UserCache {
	return &UserCache{
		provider:  provider,
		users:     users,
		resolving: true,
	}
}

// Resolve brings the cache in line with the provider's session state. With no
// identity present the cached record is cleared and no network call is made.
// With an identity present and a record already cached, Resolve is a no-op:
// zero network calls (use Refresh to force a refetch). Otherwise it performs
// exactly one token retrieval and one system-user fetch.
func (u *UserCache) Resolve(ctx context.Context) {
	u.mu.Lock()
	defer u.mu.Unlock()
	defer func() {
		u.resolving = false
	}()

	identity, err := u.provider.CurrentIdentity(ctx)
	if err != nil {
		log.Printf("error reading identity provider state: %s", err)
		return
	}
	if identity == nil {
		u.entry = nil
		return
	}
	if u.entry != nil {
		return
	}
	u.entry = u.fetch(ctx)
}

// Refresh forces exactly one refetch regardless of cache state. On failure
// the previous record, if any, is kept.
func (u *UserCache) Refresh(ctx context.Context) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if entry := u.fetch(ctx); entry != nil {
		u.entry = entry
	}
}

// Invalidate drops the cached record so the next Resolve refetches it.
func (u *UserCache) Invalidate() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.entry = nil
}

// User returns the cached system user record, if present.
func (u *UserCache) User() (kitabu.User, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.entry == nil {
		return kitabu.User{}, false
	}
	return u.entry.user, true
}

// Role returns the cached record's role, or kitabu.RoleNone while the record
// is absent or still resolving.
func (u *UserCache) Role() kitabu.Role {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.entry == nil {
		return kitabu.RoleNone
	}
	return u.entry.user.Role
}

// Resolving reports whether the first resolution has yet to complete. Gating
// code defaults to the common view while this is true.
func (u *UserCache) Resolving() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.resolving
}

// FetchedAt returns when the cached record was fetched, if one is present,
// making staleness observable rather than implicit.
func (u *UserCache) FetchedAt() (time.Time, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.entry == nil {
		return time.Time{}, false
	}
	return u.entry.fetchedAt, true
}

// fetch performs one token retrieval and one system-user fetch. A 403 is an
// expected condition (registration disabled / user not provisioned) and is
// only logged; so is every other failure. Callers hold the mutex.
func (u *UserCache) fetch(ctx context.Context) *cacheEntry {
	token, err := u.provider.AccessToken(ctx)
	if err != nil {
		log.Printf("error retrieving access token: %s", err)
		return nil
	}
	user, err := u.users.Current(ctx, token)
	if err != nil {
		if kitabu.IsForbidden(err) {
			log.Printf("INFO: user is blocked by system policy: %s", err)
		} else {
			log.Printf("error fetching system user: %s", err)
		}
		return nil
	}
	return &cacheEntry{
		user:      user,
		fetchedAt: time.Now(),
	}
}
