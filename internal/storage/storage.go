package storage

import (
	"time"

	"primegate_backend/internal/model"
)

// Storage is the persistence port. Everything durable goes through it, so
// the backing technology is swappable without touching callers.
//
// Reads for a single record return (nil, nil) when the id is absent;
// callers translate that to a 404. Errors are reserved for real storage
// failures. Create assigns the id and server-defaulted fields on the
// passed record. Drafts are validated before they reach the port; the
// port performs no re-validation.
type Storage interface {
	// Properties
	GetProperties() ([]model.Property, error)
	GetProperty(id uint) (*model.Property, error)
	GetPropertiesByType(propertyType model.PropertyType) ([]model.Property, error)
	GetPropertiesByPartner(partner string) ([]model.Property, error)
	GetFeaturedProperties() ([]model.Property, error)
	CreateProperty(property *model.Property) error
	UpdateProperty(id uint, patch model.PropertyPatch) (*model.Property, error)
	DeleteProperty(id uint) (bool, error)

	// Services
	GetServices() ([]model.Service, error)
	GetService(id uint) (*model.Service, error)
	CreateService(service *model.Service) error

	// Inquiries
	GetInquiries() ([]model.Inquiry, error)
	CreateInquiry(inquiry *model.Inquiry) error

	// Partners
	GetPartners() ([]model.Partner, error)
	CreatePartner(partner *model.Partner) error

	// Users. UpsertUser is atomic: two racing syncs of the same id must
	// not produce two rows or a lost update.
	GetUser(id string) (*model.User, error)
	UpsertUser(user *model.User) error

	// Sessions, owned by the auth middleware.
	GetSession(sid string) (*model.Session, error)
	PutSession(session *model.Session) error
	DeleteSession(sid string) error
	DeleteExpiredSessions(now time.Time) (int64, error)

	// PM Tools. A zero parent id on the filtered lists means "all rows".
	GetProjects() ([]model.Project, error)
	GetProject(id uint) (*model.Project, error)
	CreateProject(project *model.Project) error
	GetReleases(projectID uint) ([]model.Release, error)
	GetRelease(id uint) (*model.Release, error)
	CreateRelease(release *model.Release) error
	GetPhases(releaseID uint) ([]model.Phase, error)
	GetPhase(id uint) (*model.Phase, error)
	CreatePhase(phase *model.Phase) error
	UpdatePhase(id uint, patch model.PhasePatch) (*model.Phase, error)
	GetMilestones(releaseID uint) ([]model.Milestone, error)
	GetMilestone(id uint) (*model.Milestone, error)
	CreateMilestone(milestone *model.Milestone) error
	UpdateMilestone(id uint, patch model.MilestonePatch) (*model.Milestone, error)
}
