package dto

type CreateProjectDTO struct {
	Title          string  `json:"title" binding:"required"`
	Description    string  `json:"description" binding:"required"`
	Budget         float64 `json:"budget"`
	Category       string  `json:"category"`
	SkillsRequired string  `json:"skills_required"`
}

type ProjectFilterDTO struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=open in_progress completed cancelled hidden"`
}

type CreateResponseDTO struct {
	Message        string  `json:"message" binding:"required"`
	ProposedBudget float64 `json:"proposed_budget"`
}
