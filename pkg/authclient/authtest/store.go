package authtest

import "sync"

type tenantRecord struct {
	ID           string
	Email        string
	PasswordHash []byte
}

type userRecord struct {
	ID           string
	TenantID     string
	Email        string
	Login        string
	Sub          string
	Scope        any
	PasswordHash []byte
}

// memoryStore holds tenants, users and revoked token IDs for one fake service.
type memoryStore struct {
	mu          sync.RWMutex
	tenants     map[string]*tenantRecord          // by email
	tenantsByID map[string]*tenantRecord          // by id
	users       map[string]map[string]*userRecord // tenant id -> login -> user
	revokedJTIs map[string]struct{}
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		tenants:     make(map[string]*tenantRecord),
		tenantsByID: make(map[string]*tenantRecord),
		users:       make(map[string]map[string]*userRecord),
		revokedJTIs: make(map[string]struct{}),
	}
}

// createTenant stores t unless a tenant with the same email exists.
func (s *memoryStore) createTenant(t *tenantRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.tenants[t.Email]; exists {
		return false
	}
	s.tenants[t.Email] = t
	s.tenantsByID[t.ID] = t
	return true
}

func (s *memoryStore) tenantByEmail(email string) (*tenantRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tenants[email]
	return t, ok
}

func (s *memoryStore) tenantByID(id string) (*tenantRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tenantsByID[id]
	return t, ok
}

// createUser stores u unless its tenant already has a user with the same login.
func (s *memoryStore) createUser(u *userRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	byLogin, ok := s.users[u.TenantID]
	if !ok {
		byLogin = make(map[string]*userRecord)
		s.users[u.TenantID] = byLogin
	}
	if _, exists := byLogin[u.Login]; exists {
		return false
	}
	byLogin[u.Login] = u
	return true
}

func (s *memoryStore) user(tenantID, login string) (*userRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[tenantID][login]
	return u, ok
}

func (s *memoryStore) deleteUser(tenantID, login string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[tenantID][login]; !ok {
		return false
	}
	delete(s.users[tenantID], login)
	return true
}

func (s *memoryStore) countUsers(tenantID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users[tenantID])
}

func (s *memoryStore) revoke(jti string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revokedJTIs[jti] = struct{}{}
}

func (s *memoryStore) isRevoked(jti string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.revokedJTIs[jti]
	return ok
}
