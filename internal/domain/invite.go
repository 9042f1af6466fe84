package domain

// InviteCode é consumido server-side no registro; o cliente só lista,
// cria e remove
type InviteCode struct {
	ID        int    `json:"id"`
	Code      string `json:"code"`
	MaxUses   int    `json:"max_uses"`
	Uses      int    `json:"uses"`
	ExpiresAt string `json:"expires_at"`
	IsActive  bool   `json:"is_active"`
}

// Exhausted indica se o código não aceita mais registros
func (c InviteCode) Exhausted() bool {
	return c.Uses >= c.MaxUses
}
