package domain

// OrderDailyEntry é um ponto da série diária de pedidos do Dropi
type OrderDailyEntry struct {
	Date      string  `json:"date"`
	Total     int     `json:"total"`
	Delivered int     `json:"delivered"`
	Returned  int     `json:"returned"`
	Profit    float64 `json:"profit"`
}

// OrderSummary agrega os pedidos da plataforma de fulfillment para o período
type OrderSummary struct {
	Total     int `json:"total"`
	Delivered int `json:"delivered"`
	Returned  int `json:"returned"`
	EnRuta    int `json:"en_ruta"`
	Cancelled int `json:"cancelled"`

	DeliveryRate     float64 `json:"delivery_rate"`
	ReturnRate       float64 `json:"return_rate"`
	CancellationRate float64 `json:"cancellation_rate"`
	CompletionRate   float64 `json:"completion_rate"`

	DeliveredProfit float64 `json:"delivered_profit"`
	PendingProfit   float64 `json:"pending_profit"`
	NetProfit       float64 `json:"net_profit"`

	Daily []OrderDailyEntry `json:"daily"`
}
