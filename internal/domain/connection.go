package domain

// LucidBotStatus é o estado da conexão com a plataforma de leads
type LucidBotStatus struct {
	Connected bool   `json:"connected"`
	AccountID string `json:"account_id"`
	PageID    string `json:"page_id"`
	LastSync  string `json:"last_sync"`
}

// DropiStatus é o estado da conexão com a plataforma de fulfillment
type DropiStatus struct {
	Connected     bool   `json:"connected"`
	DropiUserName string `json:"dropi_user_name"`
	Country       string `json:"country"`
	LastSync      string `json:"last_sync"`
}
