package model

// PM Tools hierarchy: Project -> Release -> Phase / Milestone.

type Project struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null"`
	Description *string `json:"description"`
}

type Release struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	ProjectID   uint    `json:"projectId" gorm:"not null;index"`
	Name        string  `json:"name" gorm:"not null"`
	Description *string `json:"description"`
}

type Phase struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	ReleaseID     uint   `json:"releaseId" gorm:"not null;index"`
	Name          string `json:"name" gorm:"not null"`
	WeekOffset    int    `json:"weekOffset" gorm:"not null"`
	DurationWeeks *int   `json:"durationWeeks"`
	IsDemo        bool   `json:"isDemo" gorm:"default:false"`
	IsMVP         bool   `json:"isMvp" gorm:"default:false"`
}

// Milestone Types
type MilestoneType string

const (
	MilestoneTypeKickoff    MilestoneType = "kickoff"
	MilestoneTypeCompletion MilestoneType = "completion"
)

type Milestone struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	ReleaseID uint          `json:"releaseId" gorm:"not null;index"`
	Name      string        `json:"name" gorm:"not null"`
	Amount    int           `json:"amount" gorm:"not null"`
	Type      MilestoneType `json:"type" gorm:"not null"`
	Paid      bool          `json:"paid" gorm:"default:false"`
}

type PhasePatch struct {
	Name          *string `json:"name" validate:"omitempty,min=1"`
	WeekOffset    *int    `json:"weekOffset" validate:"omitempty,min=0"`
	DurationWeeks *int    `json:"durationWeeks" validate:"omitempty,min=0"`
	IsDemo        *bool   `json:"isDemo"`
	IsMVP         *bool   `json:"isMvp"`
}

func (p PhasePatch) Apply(phase *Phase) {
	if p.Name != nil {
		phase.Name = *p.Name
	}
	if p.WeekOffset != nil {
		phase.WeekOffset = *p.WeekOffset
	}
	if p.DurationWeeks != nil {
		phase.DurationWeeks = p.DurationWeeks
	}
	if p.IsDemo != nil {
		phase.IsDemo = *p.IsDemo
	}
	if p.IsMVP != nil {
		phase.IsMVP = *p.IsMVP
	}
}

type MilestonePatch struct {
	Name   *string        `json:"name" validate:"omitempty,min=1"`
	Amount *int           `json:"amount" validate:"omitempty,min=0"`
	Type   *MilestoneType `json:"type" validate:"omitempty,oneof=kickoff completion"`
	Paid   *bool          `json:"paid"`
}

func (m MilestonePatch) Apply(milestone *Milestone) {
	if m.Name != nil {
		milestone.Name = *m.Name
	}
	if m.Amount != nil {
		milestone.Amount = *m.Amount
	}
	if m.Type != nil {
		milestone.Type = *m.Type
	}
	if m.Paid != nil {
		milestone.Paid = *m.Paid
	}
}
