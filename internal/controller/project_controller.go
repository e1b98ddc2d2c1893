package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"primegate_backend/internal/model"
	"primegate_backend/pkg/validation"
)

// PM Tools: the internal project/payment tracker. Project -> Release ->
// Phase / Milestone, filtered by parent id through query strings.

type ProjectInput struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

type ReleaseInput struct {
	ProjectID   uint    `json:"projectId" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

type PhaseInput struct {
	ReleaseID     uint   `json:"releaseId" validate:"required"`
	Name          string `json:"name" validate:"required"`
	WeekOffset    int    `json:"weekOffset" validate:"min=0"`
	DurationWeeks *int   `json:"durationWeeks" validate:"omitempty,min=0"`
	IsDemo        bool   `json:"isDemo"`
	IsMVP         bool   `json:"isMvp"`
}

type MilestoneInput struct {
	ReleaseID uint                `json:"releaseId" validate:"required"`
	Name      string              `json:"name" validate:"required"`
	Amount    int                 `json:"amount" validate:"min=0"`
	Type      model.MilestoneType `json:"type" validate:"required,oneof=kickoff completion"`
	Paid      bool                `json:"paid"`
}

func ListProjects(c *fiber.Ctx) error {
	projects, err := store.GetProjects()
	if err != nil {
		log.Printf("Could not fetch projects: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not fetch projects",
		})
	}
	return c.JSON(projects)
}

func GetProject(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid project ID",
		})
	}

	project, err := store.GetProject(id)
	if err != nil {
		log.Printf("Could not fetch project %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not fetch project",
		})
	}
	if project == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Project not found",
		})
	}
	return c.JSON(project)
}

func CreateProject(c *fiber.Ctx) error {
	input := new(ProjectInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid input",
		})
	}

	if errs := validation.ValidateStruct(input); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errs,
		})
	}

	project := model.Project{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := store.CreateProject(&project); err != nil {
		log.Printf("Could not create project: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create project",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

func ListReleases(c *fiber.Ctx) error {
	releases, err := store.GetReleases(uint(c.QueryInt("projectId", 0)))
	if err != nil {
		log.Printf("Could not fetch releases: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not fetch releases",
		})
	}
	return c.JSON(releases)
}

func GetRelease(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid release ID",
		})
	}

	release, err := store.GetRelease(id)
	if err != nil {
		log.Printf("Could not fetch release %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not fetch release",
		})
	}
	if release == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Release not found",
		})
	}
	return c.JSON(release)
}

func CreateRelease(c *fiber.Ctx) error {
	input := new(ReleaseInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid input",
		})
	}

	if errs := validation.ValidateStruct(input); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errs,
		})
	}

	release := model.Release{
		ProjectID:   input.ProjectID,
		Name:        input.Name,
		Description: input.Description,
	}
	if err := store.CreateRelease(&release); err != nil {
		log.Printf("Could not create release: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create release",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(release)
}

func ListPhases(c *fiber.Ctx) error {
	phases, err := store.GetPhases(uint(c.QueryInt("releaseId", 0)))
	if err != nil {
		log.Printf("Could not fetch phases: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not fetch phases",
		})
	}
	return c.JSON(phases)
}

func GetPhase(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid phase ID",
		})
	}

	phase, err := store.GetPhase(id)
	if err != nil {
		log.Printf("Could not fetch phase %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not fetch phase",
		})
	}
	if phase == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Phase not found",
		})
	}
	return c.JSON(phase)
}

func CreatePhase(c *fiber.Ctx) error {
	input := new(PhaseInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid input",
		})
	}

	if errs := validation.ValidateStruct(input); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errs,
		})
	}

	phase := model.Phase{
		ReleaseID:     input.ReleaseID,
		Name:          input.Name,
		WeekOffset:    input.WeekOffset,
		DurationWeeks: input.DurationWeeks,
		IsDemo:        input.IsDemo,
		IsMVP:         input.IsMVP,
	}
	if err := store.CreatePhase(&phase); err != nil {
		log.Printf("Could not create phase: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create phase",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(phase)
}

func UpdatePhase(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid phase ID",
		})
	}

	patch := new(model.PhasePatch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid input",
		})
	}

	if errs := validation.ValidateStruct(patch); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errs,
		})
	}

	phase, err := store.UpdatePhase(id, *patch)
	if err != nil {
		log.Printf("Could not update phase %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update phase",
		})
	}
	if phase == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Phase not found",
		})
	}
	return c.JSON(phase)
}

func ListMilestones(c *fiber.Ctx) error {
	milestones, err := store.GetMilestones(uint(c.QueryInt("releaseId", 0)))
	if err != nil {
		log.Printf("Could not fetch milestones: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not fetch milestones",
		})
	}
	return c.JSON(milestones)
}

func GetMilestone(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid milestone ID",
		})
	}

	milestone, err := store.GetMilestone(id)
	if err != nil {
		log.Printf("Could not fetch milestone %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not fetch milestone",
		})
	}
	if milestone == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Milestone not found",
		})
	}
	return c.JSON(milestone)
}

func CreateMilestone(c *fiber.Ctx) error {
	input := new(MilestoneInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid input",
		})
	}

	if errs := validation.ValidateStruct(input); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errs,
		})
	}

	milestone := model.Milestone{
		ReleaseID: input.ReleaseID,
		Name:      input.Name,
		Amount:    input.Amount,
		Type:      input.Type,
		Paid:      input.Paid,
	}
	if err := store.CreateMilestone(&milestone); err != nil {
		log.Printf("Could not create milestone: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create milestone",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(milestone)
}

func UpdateMilestone(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid milestone ID",
		})
	}

	patch := new(model.MilestonePatch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid input",
		})
	}

	if errs := validation.ValidateStruct(patch); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errs,
		})
	}

	milestone, err := store.UpdateMilestone(id, *patch)
	if err != nil {
		log.Printf("Could not update milestone %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update milestone",
		})
	}
	if milestone == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Milestone not found",
		})
	}
	return c.JSON(milestone)
}
