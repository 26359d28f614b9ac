package domain

// UserProfile — профиль покупателя. Хранится на сервисе, витрина читает его
// целиком и так же целиком перезаписывает при сохранении.
type UserProfile struct {
	ID      int64  `json:"id,omitempty"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

// ValidateInvariants проверяет обязательные поля профиля при сохранении.
func (u *UserProfile) ValidateInvariants() []error {
	var errs []error

	if u.Name == "" {
		errs = append(errs, ErrProfileNameRequired)
	}
	if u.Phone == "" {
		errs = append(errs, ErrProfilePhoneRequired)
	}

	return errs
}
