package models

import "time"

// DealStatus представляет статус сделки обмена
type DealStatus string

// Статусы жизненного цикла сделки. Переходы односторонние:
// Created -> Agreed -> Completed, либо Created -> Cancelled/Rejected.
const (
	DealStatusCreated   DealStatus = "Created"
	DealStatusAgreed    DealStatus = "Agreed"
	DealStatusCompleted DealStatus = "Completed"
	DealStatusCancelled DealStatus = "Cancelled"
	DealStatusRejected  DealStatus = "Rejected"
)

// IsTerminal сообщает, является ли статус конечным
func (s DealStatus) IsTerminal() bool {
	switch s {
	case DealStatusCompleted, DealStatusCancelled, DealStatusRejected:
		return true
	}
	return false
}

// Deal представляет сделку обмена книгами между двумя пользователями
type Deal struct {
	ID              int        `json:"deal_id"`
	SenderID        int        `json:"sender_id"`
	RecipientID     int        `json:"recipient_id"`
	RecipientBookID int        `json:"recipient_book_id"`
	SenderBookID    int        `json:"sender_book_id"` // назначается при принятии сделки
	GiftFlag        bool       `json:"gift_flag"`
	Status          DealStatus `json:"status"`
	Time            time.Time  `json:"time"`
	Place           string     `json:"place"`

	// Контакты сторон. Бекенд заполняет их только для сделок в статусе Agreed
	SenderContact    string `json:"sender_contact,omitempty"`
	RecipientContact string `json:"recipient_contact,omitempty"`
}
