package kafka

type OrderEvent struct {
	OrderID      int64  `json:"order_id"`
	UserID       int64  `json:"user_id"`
	Status       string `json:"status"`
	ValueUSDT    string `json:"value_usdt"`
	ExchangeRate string `json:"exchange_rate"`
	Network      string `json:"network"`
	Wallet       string `json:"wallet"`
	BankCard     string `json:"bank_card"`
}
