package models

import "time"

type CommunicationEvent struct {
	ID                             int64      `json:"id"`
	Title                          string     `json:"title"`
	Detail                         *string    `json:"detail,omitempty"`
	FromUserID                     int64      `json:"from_user_id"`
	ToUserID                       int64      `json:"to_user_id"`
	ContactMechanismTypeID         *int64     `json:"contact_mechanism_type_id,omitempty"`
	CommunicationEventStatusTypeID *int64     `json:"communication_event_status_type_id,omitempty"`
	FavoriteFlag                   bool       `json:"favorite_flag"`
	CreatedAt                      time.Time  `json:"created_at"`
	UpdatedAt                      *time.Time `json:"updated_at,omitempty"`
}
