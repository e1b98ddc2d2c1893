package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"primegate_backend/internal/model"
)

// MemStorage implements the port over process-local maps, for tests and
// for running without a configured database. It must reproduce
// DatabaseStorage's externally observable behavior exactly: same
// defaults on create, same filter semantics, same not-found signal.
// List order is ascending id, matching the relational Order("id").
type MemStorage struct {
	mu sync.RWMutex

	properties map[uint]model.Property
	services   map[uint]model.Service
	inquiries  map[uint]model.Inquiry
	partners   map[uint]model.Partner
	users      map[string]model.User
	sessions   map[string]model.Session
	projects   map[uint]model.Project
	releases   map[uint]model.Release
	phases     map[uint]model.Phase
	milestones map[uint]model.Milestone

	propertyID  uint
	serviceID   uint
	inquiryID   uint
	partnerID   uint
	projectID   uint
	releaseID   uint
	phaseID     uint
	milestoneID uint
}

func NewMemStorage() *MemStorage {
	return &MemStorage{
		properties: map[uint]model.Property{},
		services:   map[uint]model.Service{},
		inquiries:  map[uint]model.Inquiry{},
		partners:   map[uint]model.Partner{},
		users:      map[string]model.User{},
		sessions:   map[string]model.Session{},
		projects:   map[uint]model.Project{},
		releases:   map[uint]model.Release{},
		phases:     map[uint]model.Phase{},
		milestones: map[uint]model.Milestone{},
	}
}

// collect returns the matching values in ascending id order.
func collect[T any](m map[uint]T, match func(T) bool) []T {
	ids := make([]uint, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := []T{}
	for _, id := range ids {
		if v := m[id]; match == nil || match(v) {
			out = append(out, v)
		}
	}
	return out
}

func (s *MemStorage) GetProperties() ([]model.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return collect(s.properties, nil), nil
}

func (s *MemStorage) GetProperty(id uint) (*model.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if property, ok := s.properties[id]; ok {
		return &property, nil
	}
	return nil, nil
}

func (s *MemStorage) GetPropertiesByType(propertyType model.PropertyType) ([]model.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return collect(s.properties, func(p model.Property) bool { return p.Type == propertyType }), nil
}

func (s *MemStorage) GetPropertiesByPartner(partner string) ([]model.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return collect(s.properties, func(p model.Property) bool { return p.Partner == partner }), nil
}

func (s *MemStorage) GetFeaturedProperties() ([]model.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return collect(s.properties, func(p model.Property) bool { return p.Featured }), nil
}

func (s *MemStorage) CreateProperty(property *model.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.propertyID++
	property.ID = s.propertyID
	s.properties[property.ID] = *property
	return nil
}

func (s *MemStorage) UpdateProperty(id uint, patch model.PropertyPatch) (*model.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	property, ok := s.properties[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(&property)
	s.properties[id] = property
	return &property, nil
}

func (s *MemStorage) DeleteProperty(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.properties[id]; !ok {
		return false, nil
	}
	delete(s.properties, id)
	return true, nil
}

func (s *MemStorage) GetServices() ([]model.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return collect(s.services, nil), nil
}

func (s *MemStorage) GetService(id uint) (*model.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if service, ok := s.services[id]; ok {
		return &service, nil
	}
	return nil, nil
}

func (s *MemStorage) CreateService(service *model.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.serviceID++
	service.ID = s.serviceID
	s.services[service.ID] = *service
	return nil
}

func (s *MemStorage) GetInquiries() ([]model.Inquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return collect(s.inquiries, nil), nil
}

func (s *MemStorage) CreateInquiry(inquiry *model.Inquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inquiryID++
	inquiry.ID = s.inquiryID
	if inquiry.CreatedAt.IsZero() {
		inquiry.CreatedAt = time.Now()
	}
	s.inquiries[inquiry.ID] = *inquiry
	return nil
}

func (s *MemStorage) GetPartners() ([]model.Partner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return collect(s.partners, nil), nil
}

func (s *MemStorage) CreatePartner(partner *model.Partner) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.partnerID++
	partner.ID = s.partnerID
	s.partners[partner.ID] = *partner
	return nil
}

func (s *MemStorage) GetUser(id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if user, ok := s.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

// UpsertUser keys the map by the user id: one record per logical user,
// the latest sync wins.
func (s *MemStorage) UpsertUser(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now()
	if existing, ok := s.users[user.ID]; ok {
		user.CreatedAt = existing.CreatedAt
		user.IsAdmin = existing.IsAdmin
	} else {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	s.users[user.ID] = *user
	return nil
}

func (s *MemStorage) GetSession(sid string) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if session, ok := s.sessions[sid]; ok {
		return &session, nil
	}
	return nil, nil
}

func (s *MemStorage) PutSession(session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.SID] = *session
	return nil
}

func (s *MemStorage) DeleteSession(sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
	return nil
}

func (s *MemStorage) DeleteExpiredSessions(now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var purged int64
	for sid, session := range s.sessions {
		if !session.Expire.After(now) {
			delete(s.sessions, sid)
			purged++
		}
	}
	return purged, nil
}

func (s *MemStorage) GetProjects() ([]model.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return collect(s.projects, nil), nil
}

func (s *MemStorage) GetProject(id uint) (*model.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if project, ok := s.projects[id]; ok {
		return &project, nil
	}
	return nil, nil
}

func (s *MemStorage) CreateProject(project *model.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projectID++
	project.ID = s.projectID
	s.projects[project.ID] = *project
	return nil
}

func (s *MemStorage) GetReleases(projectID uint) ([]model.Release, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if projectID == 0 {
		return collect(s.releases, nil), nil
	}
	return collect(s.releases, func(r model.Release) bool { return r.ProjectID == projectID }), nil
}

func (s *MemStorage) GetRelease(id uint) (*model.Release, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if release, ok := s.releases[id]; ok {
		return &release, nil
	}
	return nil, nil
}

func (s *MemStorage) CreateRelease(release *model.Release) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releaseID++
	release.ID = s.releaseID
	s.releases[release.ID] = *release
	return nil
}

func (s *MemStorage) GetPhases(releaseID uint) ([]model.Phase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if releaseID == 0 {
		return collect(s.phases, nil), nil
	}
	return collect(s.phases, func(p model.Phase) bool { return p.ReleaseID == releaseID }), nil
}

func (s *MemStorage) GetPhase(id uint) (*model.Phase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if phase, ok := s.phases[id]; ok {
		return &phase, nil
	}
	return nil, nil
}

func (s *MemStorage) CreatePhase(phase *model.Phase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phaseID++
	phase.ID = s.phaseID
	s.phases[phase.ID] = *phase
	return nil
}

func (s *MemStorage) UpdatePhase(id uint, patch model.PhasePatch) (*model.Phase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	phase, ok := s.phases[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(&phase)
	s.phases[id] = phase
	return &phase, nil
}

func (s *MemStorage) GetMilestones(releaseID uint) ([]model.Milestone, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if releaseID == 0 {
		return collect(s.milestones, nil), nil
	}
	return collect(s.milestones, func(m model.Milestone) bool { return m.ReleaseID == releaseID }), nil
}

func (s *MemStorage) GetMilestone(id uint) (*model.Milestone, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if milestone, ok := s.milestones[id]; ok {
		return &milestone, nil
	}
	return nil, nil
}

func (s *MemStorage) CreateMilestone(milestone *model.Milestone) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.milestoneID++
	milestone.ID = s.milestoneID
	s.milestones[milestone.ID] = *milestone
	return nil
}

func (s *MemStorage) UpdateMilestone(id uint, patch model.MilestonePatch) (*model.Milestone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	milestone, ok := s.milestones[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(&milestone)
	s.milestones[id] = milestone
	return &milestone, nil
}
