package domain

import (
	"strings"
	"time"
)

// DefaultSubscriberSource источник подписки по умолчанию
const DefaultSubscriberSource = "website"

// Subscriber is a newsletter subscription
type Subscriber struct {
	ID             int64
	Email          string
	Name           string
	IsActive       bool
	SubscribedAt   time.Time
	UnsubscribedAt *time.Time
	Source         string
}

// NormalizeEmail приводит email к нижнему регистру без пробелов
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
