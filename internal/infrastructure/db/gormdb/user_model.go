package gormdb

// UserModel maps the users table. Deletes are hard deletes, so there is no
// DeletedAt column.
type UserModel struct {
	ID    uint   `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"size:255;not null"`
	Email string `gorm:"size:255;uniqueIndex;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
