package models

import "time"

// Request модели

// SubscribeRequest запрос на подписку
type SubscribeRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Name   string `json:"name" validate:"max=100"`
	Source string `json:"source" validate:"max=50"`
}

// UnsubscribeRequest запрос на отписку
type UnsubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Response модели

// SubscribeResult итог подписки
// Created = false означает повторную активацию ранее отключенной подписки
type SubscribeResult struct {
	Created bool
}

// StatusResponse статус подписки
type StatusResponse struct {
	Subscribed   bool       `json:"subscribed"`
	SubscribedAt *time.Time `json:"subscribed_at,omitempty"`
}
