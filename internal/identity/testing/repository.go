// Package testing provides shared test utilities for identity module tests.
package testing

import (
	"context"
	"sync"

	identityDomain "github.com/allisson/notes/internal/identity/domain"
)

// InMemoryIdentityRepository is a goroutine-safe IdentityRepository backed by a map.
// It enforces username uniqueness the way the database constraint does.
type InMemoryIdentityRepository struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*identityDomain.Identity
}

// NewInMemoryIdentityRepository creates an empty repository.
func NewInMemoryIdentityRepository() *InMemoryIdentityRepository {
	return &InMemoryIdentityRepository{byID: make(map[int64]*identityDomain.Identity)}
}

// Create stores a copy of identity and assigns its ID.
func (r *InMemoryIdentityRepository) Create(_ context.Context, identity *identityDomain.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if existing.Username == identity.Username {
			return identityDomain.ErrIdentityAlreadyExists
		}
	}

	r.nextID++
	identity.ID = r.nextID
	stored := *identity
	r.byID[stored.ID] = &stored
	return nil
}

// GetByID returns a copy of the stored identity.
func (r *InMemoryIdentityRepository) GetByID(_ context.Context, id int64) (*identityDomain.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	identity, ok := r.byID[id]
	if !ok {
		return nil, identityDomain.ErrIdentityNotFound
	}
	return clone(identity), nil
}

// GetByUsername returns a copy of the identity with the given username.
func (r *InMemoryIdentityRepository) GetByUsername(
	_ context.Context,
	username string,
) (*identityDomain.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, identity := range r.byID {
		if identity.Username == username {
			return clone(identity), nil
		}
	}
	return nil, identityDomain.ErrIdentityNotFound
}

// UpdateToken overwrites the stored token.
func (r *InMemoryIdentityRepository) UpdateToken(_ context.Context, id int64, token *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	identity, ok := r.byID[id]
	if !ok {
		return identityDomain.ErrIdentityNotFound
	}
	if token == nil {
		identity.Token = nil
		return nil
	}
	value := *token
	identity.Token = &value
	return nil
}

// SetActive toggles the IsActive flag of a stored identity.
func (r *InMemoryIdentityRepository) SetActive(id int64, active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if identity, ok := r.byID[id]; ok {
		identity.IsActive = active
	}
}

func clone(identity *identityDomain.Identity) *identityDomain.Identity {
	c := *identity
	if identity.Token != nil {
		token := *identity.Token
		c.Token = &token
	}
	return &c
}

// NoopTxManager runs the callback directly without a transaction.
type NoopTxManager struct{}

// WithTx calls fn with ctx.
func (NoopTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
