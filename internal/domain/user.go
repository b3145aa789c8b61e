package domain

// User is an API consumer that collects favorites.
// Email is not unique.
type User struct {
	ID    int64  `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"not null"`
	Age   int    `json:"age"`
	Email string `json:"email"`
}

// TableName возвращает имя таблицы в БД
func (User) TableName() string {
	return "users"
}
