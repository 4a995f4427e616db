package domain

type User struct {
	TgID        int64
	Username    string
	FullName    string
	PhoneNumber string
	Nickname    string
	BankCard    string
}

// ProfileComplete gates order creation: phone, nickname and card must all be set.
func (u *User) ProfileComplete() bool {
	return u.PhoneNumber != "" && u.Nickname != "" && u.BankCard != ""
}
