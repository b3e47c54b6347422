package domain

import "time"

// PortfolioCategory groups portfolio projects
type PortfolioCategory struct {
	ID        int64
	Name      string
	Slug      string
	SortOrder int
}

// Project is a portfolio entry (a video production)
type Project struct {
	ID           int64
	Title        string
	Slug         string
	CategoryID   *int64
	CategoryName *string
	Client       string
	Year         int
	Duration     string // например "4:32"
	Description  string
	Thumbnail    string
	VideoURL     string
	VideoFile    string
	Featured     bool
	SortOrder    int
	Images       []ProjectImage
	Credits      []Credit
	Equipment    []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// GalleryImages изображения галереи без кадров со съемок
func (p *Project) GalleryImages() []ProjectImage {
	return p.imagesWhere(false)
}

// BehindTheScenes кадры со съемок
func (p *Project) BehindTheScenes() []ProjectImage {
	return p.imagesWhere(true)
}

func (p *Project) imagesWhere(behindTheScenes bool) []ProjectImage {
	out := make([]ProjectImage, 0, len(p.Images))
	for _, img := range p.Images {
		if img.IsBehindTheScenes == behindTheScenes {
			out = append(out, img)
		}
	}
	return out
}

// ProjectImage изображение проекта
type ProjectImage struct {
	ID                int64
	Image             string
	Caption           string
	IsBehindTheScenes bool
	SortOrder         int
}

// Credit участник проекта
type Credit struct {
	Role string
	Name string
}

// ProjectsFilter фильтр списка проектов
type ProjectsFilter struct {
	CategorySlug *string
	Featured     *bool
	Limit        uint64
	Offset       uint64
}

// ContactSubmission сообщение из формы обратной связи
type ContactSubmission struct {
	ID          int64
	Name        string
	Email       string
	Phone       string
	ProjectType string
	Budget      string
	Message     string
	IsRead      bool
	CreatedAt   time.Time
}
