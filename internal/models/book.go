package models

// Book представляет книгу в системе обмена
type Book struct {
	ID          int    `json:"id"`
	UserID      int    `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	IsAvailable bool   `json:"is_available"`
}

// Review представляет отзыв о книге
type Review struct {
	ID         int    `json:"review_id"`
	UserID     int    `json:"user_id"`
	BookID     int    `json:"book_id"`
	ReviewText string `json:"review_text"`
}
