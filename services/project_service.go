package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/Krasmol/platform-for-freelancers/dto"
	"github.com/Krasmol/platform-for-freelancers/events"
	"github.com/Krasmol/platform-for-freelancers/models"
	"github.com/Krasmol/platform-for-freelancers/repositories"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrResponseNotFound   = errors.New("response not found")
	ErrClientsOnly        = errors.New("only clients can create projects")
	ErrFreelancersOnly    = errors.New("clients cannot respond to projects")
	ErrAccessDenied       = errors.New("access denied")
	ErrProjectNotOpen     = errors.New("project is not open")
	ErrAlreadyResponded   = errors.New("already responded to this project")
	ErrResponseNotPending = errors.New("response is not pending")
	ErrCannotComplete     = errors.New("project is not in progress")
	ErrCannotCancel       = errors.New("project cannot be cancelled")
	ErrCannotHide         = errors.New("only open or hidden projects can be toggled")
	ErrAlreadyFavorited   = errors.New("project already in favorites")
)

type ProjectService struct {
	repos      *repositories.Repos
	dispatcher *NotificationDispatcher
	pub        events.Publisher
}

const slugSuffixChars = "abcdefghijklmnopqrstuvwxyz0123456789"

func slugSuffix() string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%06d", time.Now().UnixNano()%1000000)
	}
	for i := range b {
		b[i] = slugSuffixChars[int(b[i])%len(slugSuffixChars)]
	}
	return string(b)
}

func (s *ProjectService) Create(actorID uint, actorRole models.UserRole, input dto.CreateProjectDTO) (models.Project, error) {
	if actorRole != models.UserRoleClient {
		return models.Project{}, ErrClientsOnly
	}

	project := models.Project{
		Slug:           slug.Make(input.Title) + "-" + slugSuffix(),
		Title:          input.Title,
		Description:    input.Description,
		Budget:         input.Budget,
		Category:       input.Category,
		SkillsRequired: input.SkillsRequired,
		Status:         models.ProjectStatusOpen,
		ClientID:       actorID,
	}

	var created []models.Notification
	err := s.repos.Atomic(func(tx *repositories.Repos) error {
		if err := tx.Project.Create(&project); err != nil {
			return err
		}
		var err error
		created, err = s.dispatcher.Dispatch(tx, events.ProjectPublished{Project: project})
		return err
	})
	if err != nil {
		return models.Project{}, err
	}

	signal(s.pub, created)
	return project, nil
}

func (s *ProjectService) List(filter dto.ProjectFilterDTO, actorRole models.UserRole) ([]models.Project, error) {
	return s.repos.Project.List(filter, actorRole == models.UserRoleModerator)
}

func (s *ProjectService) FindByID(id uint) (models.Project, error) {
	project, err := s.repos.Project.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, ErrProjectNotFound
		}
		return models.Project{}, err
	}
	return project, nil
}

func (s *ProjectService) FindBySlug(slug string) (models.Project, error) {
	project, err := s.repos.Project.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, ErrProjectNotFound
		}
		return models.Project{}, err
	}
	return project, nil
}

func (s *ProjectService) ListMine(actorID uint, actorRole models.UserRole) ([]models.Project, error) {
	if actorRole == models.UserRoleClient {
		return s.repos.Project.ListByClient(actorID)
	}
	return s.repos.Project.ListByFreelancer(actorID)
}

func (s *ProjectService) Respond(actorID uint, actorRole models.UserRole, projectID uint, input dto.CreateResponseDTO) (models.ProjectResponse, error) {
	if actorRole != models.UserRoleFreelancer {
		return models.ProjectResponse{}, ErrFreelancersOnly
	}

	project, err := s.FindByID(projectID)
	if err != nil {
		return models.ProjectResponse{}, err
	}
	if project.Status != models.ProjectStatusOpen {
		return models.ProjectResponse{}, ErrProjectNotOpen
	}

	responded, err := s.repos.Response.HasResponded(projectID, actorID)
	if err != nil {
		return models.ProjectResponse{}, err
	}
	if responded {
		return models.ProjectResponse{}, ErrAlreadyResponded
	}

	freelancer, err := s.repos.User.FindByID(actorID)
	if err != nil {
		return models.ProjectResponse{}, err
	}

	resp := models.ProjectResponse{
		ProjectID:      projectID,
		FreelancerID:   actorID,
		Message:        input.Message,
		ProposedBudget: input.ProposedBudget,
		Status:         models.ResponseStatusPending,
	}

	var created []models.Notification
	err = s.repos.Atomic(func(tx *repositories.Repos) error {
		if err := tx.Response.Create(&resp); err != nil {
			// the unique index closes the submit race the pre-check leaves open
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyResponded
			}
			return err
		}
		var err error
		created, err = s.dispatcher.Dispatch(tx, events.ResponseSubmitted{
			Project:    project,
			Response:   resp,
			Freelancer: freelancer,
		})
		return err
	})
	if err != nil {
		return models.ProjectResponse{}, err
	}

	signal(s.pub, created)
	return resp, nil
}

func (s *ProjectService) ListResponses(actorID uint, actorRole models.UserRole, projectID uint) ([]models.ProjectResponse, error) {
	project, err := s.FindByID(projectID)
	if err != nil {
		return nil, err
	}
	if project.ClientID != actorID && actorRole != models.UserRoleModerator {
		return nil, ErrAccessDenied
	}
	return s.repos.Response.ListByProject(projectID)
}

// AcceptResponse assigns the freelancer, rejects every sibling response and
// opens the chat with an initial message, all in one transaction.
func (s *ProjectService) AcceptResponse(actorID uint, responseID uint) (models.Project, error) {
	resp, err := s.repos.Response.FindByID(responseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, ErrResponseNotFound
		}
		return models.Project{}, err
	}

	project, err := s.FindByID(resp.ProjectID)
	if err != nil {
		return models.Project{}, err
	}
	if project.ClientID != actorID {
		return models.Project{}, ErrAccessDenied
	}
	if project.Status != models.ProjectStatusOpen {
		return models.Project{}, ErrProjectNotOpen
	}

	var created []models.Notification
	err = s.repos.Atomic(func(tx *repositories.Repos) error {
		resp.Status = models.ResponseStatusAccepted
		if err := tx.Response.Save(&resp); err != nil {
			return err
		}

		// Read siblings inside the transaction so a freelancer who responded
		// after the validation reads is still on the notified set.
		siblings, err := tx.Response.ListByProject(project.ID)
		if err != nil {
			return err
		}
		if err := tx.Response.RejectSiblings(project.ID, resp.ID); err != nil {
			return err
		}

		project.Status = models.ProjectStatusInProgress
		project.FreelancerID = &resp.FreelancerID
		if err := tx.Project.Save(&project); err != nil {
			return err
		}

		accepted, err := s.dispatcher.Dispatch(tx, events.ResponseAccepted{Project: project, Response: resp})
		if err != nil {
			return err
		}
		created = append(created, accepted...)

		for _, sibling := range siblings {
			if sibling.ID == resp.ID || sibling.Status != models.ResponseStatusPending {
				continue
			}
			rejected, err := s.dispatcher.Dispatch(tx, events.ResponseRejected{Project: project, Response: sibling})
			if err != nil {
				return err
			}
			created = append(created, rejected...)
		}

		opening := models.Message{
			SenderID:   project.ClientID,
			ReceiverID: resp.FreelancerID,
			Content:    fmt.Sprintf("Hi! I accepted your response to %q. Let's discuss the details here.", project.Title),
		}
		return tx.Message.Create(&opening)
	})
	if err != nil {
		return models.Project{}, err
	}

	signal(s.pub, created)
	if s.pub != nil {
		s.pub.Publish(resp.FreelancerID, "message")
	}
	return project, nil
}

func (s *ProjectService) RejectResponse(actorID uint, responseID uint) (models.ProjectResponse, error) {
	resp, err := s.repos.Response.FindByID(responseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ProjectResponse{}, ErrResponseNotFound
		}
		return models.ProjectResponse{}, err
	}

	project, err := s.FindByID(resp.ProjectID)
	if err != nil {
		return models.ProjectResponse{}, err
	}
	if project.ClientID != actorID {
		return models.ProjectResponse{}, ErrAccessDenied
	}
	if resp.Status != models.ResponseStatusPending {
		return models.ProjectResponse{}, ErrResponseNotPending
	}

	var created []models.Notification
	err = s.repos.Atomic(func(tx *repositories.Repos) error {
		resp.Status = models.ResponseStatusRejected
		if err := tx.Response.Save(&resp); err != nil {
			return err
		}
		var err error
		created, err = s.dispatcher.Dispatch(tx, events.ResponseRejected{Project: project, Response: resp})
		return err
	})
	if err != nil {
		return models.ProjectResponse{}, err
	}

	signal(s.pub, created)
	return resp, nil
}

func (s *ProjectService) Complete(actorID uint, projectID uint) (models.Project, error) {
	project, err := s.FindByID(projectID)
	if err != nil {
		return models.Project{}, err
	}
	if project.Status != models.ProjectStatusInProgress {
		return models.Project{}, ErrCannotComplete
	}

	assigned := project.FreelancerID != nil && *project.FreelancerID == actorID
	if project.ClientID != actorID && !assigned {
		return models.Project{}, ErrAccessDenied
	}

	var created []models.Notification
	err = s.repos.Atomic(func(tx *repositories.Repos) error {
		now := time.Now()
		project.Status = models.ProjectStatusCompleted
		project.CompletedAt = &now
		if err := tx.Project.Save(&project); err != nil {
			return err
		}
		var err error
		created, err = s.dispatcher.Dispatch(tx, events.ProjectCompleted{Project: project, ActorID: actorID})
		return err
	})
	if err != nil {
		return models.Project{}, err
	}

	signal(s.pub, created)
	return project, nil
}

func (s *ProjectService) Cancel(actorID uint, projectID uint) (models.Project, error) {
	project, err := s.FindByID(projectID)
	if err != nil {
		return models.Project{}, err
	}
	if project.ClientID != actorID {
		return models.Project{}, ErrAccessDenied
	}
	if project.Status != models.ProjectStatusOpen && project.Status != models.ProjectStatusInProgress {
		return models.Project{}, ErrCannotCancel
	}

	var created []models.Notification
	err = s.repos.Atomic(func(tx *repositories.Repos) error {
		project.Status = models.ProjectStatusCancelled
		if err := tx.Project.Save(&project); err != nil {
			return err
		}
		var err error
		created, err = s.dispatcher.Dispatch(tx, events.ProjectCancelled{Project: project})
		return err
	})
	if err != nil {
		return models.Project{}, err
	}

	signal(s.pub, created)
	return project, nil
}

func (s *ProjectService) Favorite(actorID, projectID uint) error {
	if _, err := s.FindByID(projectID); err != nil {
		return err
	}
	favorite := models.Favorite{UserID: actorID, ProjectID: projectID}
	if err := s.repos.Favorite.Create(&favorite); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyFavorited
		}
		return err
	}
	return nil
}

func (s *ProjectService) Unfavorite(actorID, projectID uint) error {
	return s.repos.Favorite.Delete(actorID, projectID)
}

func (s *ProjectService) ListFavorites(actorID uint) ([]models.Favorite, error) {
	return s.repos.Favorite.ListByUser(actorID)
}
