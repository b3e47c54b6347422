package models

import "github.com/m04kA/studio-service/internal/domain"

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	Description   string `json:"description"`
	DurationHours string `json:"duration_hours"` // "2.0"
	Price         string `json:"price"`          // "250.00"
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.BookingService) ServiceResponse {
	return ServiceResponse{
		ID:            s.ID,
		Name:          s.Name,
		Slug:          s.Slug,
		Description:   s.Description,
		DurationHours: s.DurationHours.StringFixed(1),
		Price:         s.Price.StringFixed(2),
	}
}

// FromDomainServices конвертирует список услуг
func FromDomainServices(services []*domain.BookingService) []ServiceResponse {
	resp := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		resp = append(resp, FromDomainService(s))
	}
	return resp
}
