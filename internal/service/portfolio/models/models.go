package models

import (
	"strings"
	"time"

	"github.com/m04kA/studio-service/internal/domain"
)

// Request модели

// ListProjectsRequest фильтры и пагинация списка проектов
type ListProjectsRequest struct {
	CategorySlug *string
	Featured     *bool
	Page         int
	PageSize     int
}

// ContactRequest сообщение с формы обратной связи
type ContactRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"max=50"`
	ProjectType string `json:"project_type" validate:"max=100"`
	Budget      string `json:"budget" validate:"max=100"`
	Message     string `json:"message" validate:"required"`
}

// ToDomainSubmission конвертирует запрос в domain модель
func (r *ContactRequest) ToDomainSubmission() *domain.ContactSubmission {
	return &domain.ContactSubmission{
		Name:        strings.TrimSpace(r.Name),
		Email:       strings.TrimSpace(r.Email),
		Phone:       strings.TrimSpace(r.Phone),
		ProjectType: r.ProjectType,
		Budget:      r.Budget,
		Message:     r.Message,
	}
}

// Response модели

// CategoryResponse категория портфолио
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ProjectResponse проект в списке
type ProjectResponse struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Slug         string  `json:"slug"`
	Category     *int64  `json:"category"`
	CategoryName *string `json:"category_name"`
	Client       string  `json:"client"`
	Year         int     `json:"year"`
	Duration     string  `json:"duration"`
	Thumbnail    string  `json:"thumbnail"`
	VideoURL     string  `json:"video_url"`
	Featured     bool    `json:"featured"`
}

// ImageResponse изображение проекта
type ImageResponse struct {
	ID                int64  `json:"id"`
	Image             string `json:"image"`
	Caption           string `json:"caption"`
	IsBehindTheScenes bool   `json:"is_behind_the_scenes"`
}

// CreditResponse участник проекта
type CreditResponse struct {
	Role string `json:"role"`
	Name string `json:"name"`
}

// ProjectDetailResponse карточка проекта
type ProjectDetailResponse struct {
	ProjectResponse
	Description     string           `json:"description"`
	VideoFile       string           `json:"video_file"`
	Images          []ImageResponse  `json:"images"`
	BehindTheScenes []ImageResponse  `json:"behind_the_scenes"`
	Credits         []CreditResponse `json:"credits"`
	Equipment       []string         `json:"equipment"`
	CreatedAt       time.Time        `json:"created_at"`
}

// ProjectListResponse страница проектов
type ProjectListResponse struct {
	Count   int               `json:"count"`
	Results []ProjectResponse `json:"results"`
}

// Методы конвертации

// FromDomainCategories конвертирует категории
func FromDomainCategories(categories []*domain.PortfolioCategory) []CategoryResponse {
	resp := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, CategoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug})
	}
	return resp
}

// FromDomainProject конвертирует проект для списка
func FromDomainProject(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:           p.ID,
		Title:        p.Title,
		Slug:         p.Slug,
		Category:     p.CategoryID,
		CategoryName: p.CategoryName,
		Client:       p.Client,
		Year:         p.Year,
		Duration:     p.Duration,
		Thumbnail:    p.Thumbnail,
		VideoURL:     p.VideoURL,
		Featured:     p.Featured,
	}
}

// FromDomainProjects конвертирует список проектов
func FromDomainProjects(projects []*domain.Project) []ProjectResponse {
	resp := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		resp = append(resp, FromDomainProject(p))
	}
	return resp
}

func fromDomainImages(images []domain.ProjectImage) []ImageResponse {
	resp := make([]ImageResponse, 0, len(images))
	for _, img := range images {
		resp = append(resp, ImageResponse{
			ID:                img.ID,
			Image:             img.Image,
			Caption:           img.Caption,
			IsBehindTheScenes: img.IsBehindTheScenes,
		})
	}
	return resp
}

// FromDomainProjectDetail конвертирует карточку проекта
// Кадры со съемок вынесены в отдельный список
func FromDomainProjectDetail(p *domain.Project) *ProjectDetailResponse {
	credits := make([]CreditResponse, 0, len(p.Credits))
	for _, c := range p.Credits {
		credits = append(credits, CreditResponse{Role: c.Role, Name: c.Name})
	}

	equipment := p.Equipment
	if equipment == nil {
		equipment = []string{}
	}

	return &ProjectDetailResponse{
		ProjectResponse: FromDomainProject(p),
		Description:     p.Description,
		VideoFile:       p.VideoFile,
		Images:          fromDomainImages(p.GalleryImages()),
		BehindTheScenes: fromDomainImages(p.BehindTheScenes()),
		Credits:         credits,
		Equipment:       equipment,
		CreatedAt:       p.CreatedAt,
	}
}
