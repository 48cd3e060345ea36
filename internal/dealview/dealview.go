// Package dealview вычисляет представление сделки для конкретного наблюдателя:
// роли, доступные действия и видимость контактов. Все правила ролей и статусов
// собраны здесь, страницы не должны выводить их заново.
package dealview

import (
	"errors"
	"time"

	"bookswap-client/internal/models"
)

// Projection — производное состояние сделки для наблюдателя.
// Чистая функция от (сделка, наблюдатель): пересчитывать можно при каждом рендере
type Projection struct {
	IsSender    bool `json:"is_sender"`
	IsRecipient bool `json:"is_recipient"`

	Status models.DealStatus `json:"status"`
	Time   time.Time         `json:"time"`
	Place  string            `json:"place,omitempty"`

	CanAccept   bool `json:"can_accept"`
	CanReject   bool `json:"can_reject"`
	CanCancel   bool `json:"can_cancel"`
	CanComplete bool `json:"can_complete"`

	// Контакт второй стороны. Виден только участнику сделки в статусе Agreed
	ContactVisible bool   `json:"contact_visible"`
	Contact        string `json:"contact,omitempty"`
}

// Project вычисляет представление сделки для наблюдателя viewerID.
// Наблюдатель, не являющийся стороной сделки, видит только сводку
// (статус, дату, место) и не получает ни действий, ни контактов
func Project(deal models.Deal, viewerID int) Projection {
	p := Projection{
		IsSender:    viewerID == deal.SenderID,
		IsRecipient: viewerID == deal.RecipientID,
		Status:      deal.Status,
		Time:        deal.Time,
		Place:       deal.Place,
	}

	switch deal.Status {
	case models.DealStatusCreated:
		// Отправитель может отменить запрос, получатель — принять или отклонить
		p.CanCancel = p.IsSender
		p.CanAccept = p.IsRecipient
		p.CanReject = p.IsRecipient

	case models.DealStatusAgreed:
		// Обе стороны могут завершить обмен и видят контакты друг друга
		p.CanComplete = p.IsSender || p.IsRecipient
		if p.IsSender {
			p.ContactVisible = true
			p.Contact = deal.RecipientContact
		}
		if p.IsRecipient {
			p.ContactVisible = true
			p.Contact = deal.SenderContact
		}
	}

	// Конечные статусы не дают действий никому
	return p
}

// ErrNoBookSelected возвращается, когда получатель принимает сделку,
// не выбрав свою книгу для обмена
var ErrNoBookSelected = errors.New("не выбрана книга для обмена")

// ValidateAccept проверяет выбор книги до обращения к бекенду.
// Принятие без выбранной книги отклоняется без сетевого вызова
func ValidateAccept(senderBookID int) error {
	if senderBookID == 0 {
		return ErrNoBookSelected
	}
	return nil
}
