package domain

type Wallet struct {
	ID      int64
	Network string
	Address string
}
