package storage

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"primegate_backend/internal/model"
)

// DatabaseStorage implements the port against the relational database,
// one table per entity.
type DatabaseStorage struct {
	db *gorm.DB
}

func NewDatabaseStorage(db *gorm.DB) *DatabaseStorage {
	return &DatabaseStorage{db: db}
}

func (s *DatabaseStorage) GetProperties() ([]model.Property, error) {
	properties := []model.Property{}
	err := s.db.Order("id").Find(&properties).Error
	return properties, err
}

func (s *DatabaseStorage) GetProperty(id uint) (*model.Property, error) {
	var property model.Property
	if err := s.db.First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &property, nil
}

func (s *DatabaseStorage) GetPropertiesByType(propertyType model.PropertyType) ([]model.Property, error) {
	properties := []model.Property{}
	err := s.db.Where("type = ?", propertyType).Order("id").Find(&properties).Error
	return properties, err
}

func (s *DatabaseStorage) GetPropertiesByPartner(partner string) ([]model.Property, error) {
	properties := []model.Property{}
	err := s.db.Where("partner = ?", partner).Order("id").Find(&properties).Error
	return properties, err
}

func (s *DatabaseStorage) GetFeaturedProperties() ([]model.Property, error) {
	properties := []model.Property{}
	err := s.db.Where("featured = ?", true).Order("id").Find(&properties).Error
	return properties, err
}

func (s *DatabaseStorage) CreateProperty(property *model.Property) error {
	return s.db.Create(property).Error
}

func (s *DatabaseStorage) UpdateProperty(id uint, patch model.PropertyPatch) (*model.Property, error) {
	property, err := s.GetProperty(id)
	if err != nil || property == nil {
		return nil, err
	}
	patch.Apply(property)
	if err := s.db.Save(property).Error; err != nil {
		return nil, err
	}
	return property, nil
}

func (s *DatabaseStorage) DeleteProperty(id uint) (bool, error) {
	result := s.db.Delete(&model.Property{}, id)
	return result.RowsAffected > 0, result.Error
}

func (s *DatabaseStorage) GetServices() ([]model.Service, error) {
	services := []model.Service{}
	err := s.db.Order("id").Find(&services).Error
	return services, err
}

func (s *DatabaseStorage) GetService(id uint) (*model.Service, error) {
	var service model.Service
	if err := s.db.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (s *DatabaseStorage) CreateService(service *model.Service) error {
	return s.db.Create(service).Error
}

func (s *DatabaseStorage) GetInquiries() ([]model.Inquiry, error) {
	inquiries := []model.Inquiry{}
	err := s.db.Order("id").Find(&inquiries).Error
	return inquiries, err
}

func (s *DatabaseStorage) CreateInquiry(inquiry *model.Inquiry) error {
	return s.db.Create(inquiry).Error
}

func (s *DatabaseStorage) GetPartners() ([]model.Partner, error) {
	partners := []model.Partner{}
	err := s.db.Order("id").Find(&partners).Error
	return partners, err
}

func (s *DatabaseStorage) CreatePartner(partner *model.Partner) error {
	return s.db.Create(partner).Error
}

func (s *DatabaseStorage) GetUser(id string) (*model.User, error) {
	var user model.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// UpsertUser issues a single INSERT ... ON CONFLICT so two racing
// identity-provider syncs cannot lose an update. is_admin is managed
// out of band and deliberately not overwritten by a sync.
func (s *DatabaseStorage) UpsertUser(user *model.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.UpdatedAt = time.Now()
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "first_name", "last_name", "profile_image_url", "updated_at",
		}),
	}).Create(user).Error
}

func (s *DatabaseStorage) GetSession(sid string) (*model.Session, error) {
	var session model.Session
	if err := s.db.First(&session, "sid = ?", sid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (s *DatabaseStorage) PutSession(session *model.Session) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "sid"}},
		DoUpdates: clause.AssignmentColumns([]string{"sess", "expire"}),
	}).Create(session).Error
}

func (s *DatabaseStorage) DeleteSession(sid string) error {
	return s.db.Delete(&model.Session{}, "sid = ?", sid).Error
}

func (s *DatabaseStorage) DeleteExpiredSessions(now time.Time) (int64, error) {
	result := s.db.Where("expire <= ?", now).Delete(&model.Session{})
	return result.RowsAffected, result.Error
}

func (s *DatabaseStorage) GetProjects() ([]model.Project, error) {
	projects := []model.Project{}
	err := s.db.Order("id").Find(&projects).Error
	return projects, err
}

func (s *DatabaseStorage) GetProject(id uint) (*model.Project, error) {
	var project model.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

func (s *DatabaseStorage) CreateProject(project *model.Project) error {
	return s.db.Create(project).Error
}

func (s *DatabaseStorage) GetReleases(projectID uint) ([]model.Release, error) {
	releases := []model.Release{}
	query := s.db.Order("id")
	if projectID != 0 {
		query = query.Where("project_id = ?", projectID)
	}
	err := query.Find(&releases).Error
	return releases, err
}

func (s *DatabaseStorage) GetRelease(id uint) (*model.Release, error) {
	var release model.Release
	if err := s.db.First(&release, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &release, nil
}

func (s *DatabaseStorage) CreateRelease(release *model.Release) error {
	return s.db.Create(release).Error
}

func (s *DatabaseStorage) GetPhases(releaseID uint) ([]model.Phase, error) {
	phases := []model.Phase{}
	query := s.db.Order("id")
	if releaseID != 0 {
		query = query.Where("release_id = ?", releaseID)
	}
	err := query.Find(&phases).Error
	return phases, err
}

func (s *DatabaseStorage) GetPhase(id uint) (*model.Phase, error) {
	var phase model.Phase
	if err := s.db.First(&phase, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &phase, nil
}

func (s *DatabaseStorage) CreatePhase(phase *model.Phase) error {
	return s.db.Create(phase).Error
}

func (s *DatabaseStorage) UpdatePhase(id uint, patch model.PhasePatch) (*model.Phase, error) {
	phase, err := s.GetPhase(id)
	if err != nil || phase == nil {
		return nil, err
	}
	patch.Apply(phase)
	if err := s.db.Save(phase).Error; err != nil {
		return nil, err
	}
	return phase, nil
}

func (s *DatabaseStorage) GetMilestones(releaseID uint) ([]model.Milestone, error) {
	milestones := []model.Milestone{}
	query := s.db.Order("id")
	if releaseID != 0 {
		query = query.Where("release_id = ?", releaseID)
	}
	err := query.Find(&milestones).Error
	return milestones, err
}

func (s *DatabaseStorage) GetMilestone(id uint) (*model.Milestone, error) {
	var milestone model.Milestone
	if err := s.db.First(&milestone, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &milestone, nil
}

func (s *DatabaseStorage) CreateMilestone(milestone *model.Milestone) error {
	return s.db.Create(milestone).Error
}

func (s *DatabaseStorage) UpdateMilestone(id uint, patch model.MilestonePatch) (*model.Milestone, error) {
	milestone, err := s.GetMilestone(id)
	if err != nil || milestone == nil {
		return nil, err
	}
	patch.Apply(milestone)
	if err := s.db.Save(milestone).Error; err != nil {
		return nil, err
	}
	return milestone, nil
}
