package models

import (
	"fmt"
	"time"

	"github.com/m04kA/studio-service/internal/domain"
	"github.com/m04kA/studio-service/pkg/types"
)

// Request модели

// CreateRuleRequest запрос на создание правила доступности
// Задается ровно одно из полей Weekday (0 = понедельник) или SpecificDate
type CreateRuleRequest struct {
	Weekday      *int    `json:"weekday" validate:"omitempty,min=0,max=6"`
	SpecificDate *string `json:"specific_date" validate:"omitempty,datetime=2006-01-02"`
	StartTime    string  `json:"start_time" validate:"required"`
	EndTime      string  `json:"end_time" validate:"required"`
	IsAvailable  *bool   `json:"is_available"`
	Notes        string  `json:"notes" validate:"max=200"`
}

// ToDomainRule конвертирует запрос в domain модель
// IsAvailable по умолчанию true
func (r *CreateRuleRequest) ToDomainRule() (*domain.AvailabilityRule, error) {
	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("start_time: %w", err)
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("end_time: %w", err)
	}

	rule := &domain.AvailabilityRule{
		Weekday:     r.Weekday,
		StartTime:   start,
		EndTime:     end,
		IsAvailable: true,
		Notes:       r.Notes,
	}

	if r.IsAvailable != nil {
		rule.IsAvailable = *r.IsAvailable
	}

	if r.SpecificDate != nil {
		date, err := time.Parse(domain.DateFormat, *r.SpecificDate)
		if err != nil {
			return nil, fmt.Errorf("specific_date: %w", err)
		}
		rule.SpecificDate = &date
	}

	return rule, nil
}

// Response модели

// RuleResponse ответ с данными правила
type RuleResponse struct {
	ID           int64   `json:"id"`
	Weekday      *int    `json:"weekday"`
	SpecificDate *string `json:"specific_date"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	IsAvailable  bool    `json:"is_available"`
	Notes        string  `json:"notes"`
}

// FromDomainRule конвертирует domain модель в DTO
func FromDomainRule(rule *domain.AvailabilityRule) RuleResponse {
	resp := RuleResponse{
		ID:          rule.ID,
		Weekday:     rule.Weekday,
		StartTime:   rule.StartTime.WithSeconds(),
		EndTime:     rule.EndTime.WithSeconds(),
		IsAvailable: rule.IsAvailable,
		Notes:       rule.Notes,
	}

	if rule.SpecificDate != nil {
		date := rule.SpecificDate.Format(domain.DateFormat)
		resp.SpecificDate = &date
	}

	return resp
}

// FromDomainRules конвертирует список правил
func FromDomainRules(rules []*domain.AvailabilityRule) []RuleResponse {
	resp := make([]RuleResponse, 0, len(rules))
	for _, rule := range rules {
		resp = append(resp, FromDomainRule(rule))
	}
	return resp
}
