// Package store provides the process-local storage backing the BFF.
package store

import (
	"sync"

	"github.com/schooldevops/openapi-hub/internal/bff/models"
)

// Store is the BFF's storage abstraction. Implementations must be safe for
// concurrent use.
type Store interface {
	GetUser(username string) (*models.User, bool)
	PutUser(user *models.User) error
	DeleteUser(username string)

	GetProject(id string) (*models.Project, bool)
	FindProjectByName(name string) (*models.Project, bool)
	ListProjects() []*models.Project
	PutProject(project *models.Project) error
	DeleteProject(id string)

	PutSpec(spec *models.APISpec) error
	ListSpecsByProject(projectID string) []*models.APISpec
}

// MemoryStore keeps all collections in RWMutex-guarded maps.
type MemoryStore struct {
	mu       sync.RWMutex
	users    map[string]*models.User
	projects map[string]*models.Project
	specs    map[string]*models.APISpec
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[string]*models.User),
		projects: make(map[string]*models.Project),
		specs:    make(map[string]*models.APISpec),
	}
}

func (s *MemoryStore) GetUser(username string) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[username]
	return user, ok
}

func (s *MemoryStore) PutUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Username] = user
	return nil
}

func (s *MemoryStore) DeleteUser(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, username)
}

func (s *MemoryStore) GetProject(id string) (*models.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	project, ok := s.projects[id]
	return project, ok
}

func (s *MemoryStore) FindProjectByName(name string) (*models.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, project := range s.projects {
		if project.Name == name {
			return project, true
		}
	}
	return nil, false
}

func (s *MemoryStore) ListProjects() []*models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	projects := make([]*models.Project, 0, len(s.projects))
	for _, project := range s.projects {
		projects = append(projects, project)
	}
	return projects
}

func (s *MemoryStore) PutProject(project *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[project.ID] = project
	return nil
}

func (s *MemoryStore) DeleteProject(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.projects, id)
}

func (s *MemoryStore) PutSpec(spec *models.APISpec) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.specs[spec.ID] = spec
	return nil
}

func (s *MemoryStore) ListSpecsByProject(projectID string) []*models.APISpec {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var specs []*models.APISpec
	for _, spec := range s.specs {
		if spec.ProjectID == projectID {
			specs = append(specs, spec)
		}
	}
	return specs
}
