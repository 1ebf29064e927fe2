package repositories

import (
	"github.com/Krasmol/platform-for-freelancers/dto"
	"github.com/Krasmol/platform-for-freelancers/models"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	Create(project *models.Project) error
	FindByID(id uint) (models.Project, error)
	FindBySlug(slug string) (models.Project, error)
	List(filter dto.ProjectFilterDTO, includeHidden bool) ([]models.Project, error)
	ListByClient(clientID uint) ([]models.Project, error)
	ListByFreelancer(freelancerID uint) ([]models.Project, error)
	Save(project *models.Project) error
	Delete(id uint) error
}

type DBProjectRepo struct {
	db *gorm.DB
}

func (r *DBProjectRepo) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

func (r *DBProjectRepo) FindByID(id uint) (models.Project, error) {
	var project models.Project
	if err := r.db.Preload("Client").Preload("Freelancer").First(&project, id).Error; err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func (r *DBProjectRepo) FindBySlug(slug string) (models.Project, error) {
	var project models.Project
	if err := r.db.Preload("Client").Preload("Freelancer").Where("slug = ?", slug).First(&project).Error; err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func (r *DBProjectRepo) List(filter dto.ProjectFilterDTO, includeHidden bool) ([]models.Project, error) {
	query := r.db.Preload("Client")

	status := filter.Status
	if status == "" {
		status = string(models.ProjectStatusOpen)
	}
	if status == string(models.ProjectStatusHidden) && !includeHidden {
		status = string(models.ProjectStatusOpen)
	}
	query = query.Where("status = ?", status)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}

	var projects []models.Project
	err := query.Order("created_at desc").Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) ListByClient(clientID uint) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("client_id = ?", clientID).Order("created_at desc").Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) ListByFreelancer(freelancerID uint) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Preload("Client").Where("freelancer_id = ?", freelancerID).Order("created_at desc").Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) Save(project *models.Project) error {
	return r.db.Save(project).Error
}

func (r *DBProjectRepo) Delete(id uint) error {
	return r.db.Delete(&models.Project{}, id).Error
}
