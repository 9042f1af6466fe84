package domain

// WalletDailyEntry é um ponto da série diária da carteira
type WalletDailyEntry struct {
	Date  string  `json:"date"`
	In    float64 `json:"in"`
	Out   float64 `json:"out"`
	Net   float64 `json:"net"`
	Count int     `json:"count"`
}

// WalletSummary agrega o fluxo de caixa da carteira no período
type WalletSummary struct {
	TotalIn  float64 `json:"total_in"`
	TotalOut float64 `json:"total_out"`
	Net      float64 `json:"net"`
	Count    int     `json:"count"`
}

// WalletDropshipping agrega os lançamentos da carteira etiquetados como
// crédito de ganância (pedido entregue) ou débito de devolução
type WalletDropshipping struct {
	Daily              []WalletDailyEntry `json:"daily"`
	TotalGanancias     float64            `json:"total_ganancias"`
	TotalFletes        float64            `json:"total_fletes"`
	TotalDevoluciones  float64            `json:"total_devoluciones"`
	UtilidadNeta       float64            `json:"utilidad_neta"`
	PromedioGanancia   float64            `json:"promedio_ganancia"`
	PromedioDevolucion float64            `json:"promedio_devolucion"`
	CountGanancias     int                `json:"count_ganancias"`
	CountDevoluciones  int                `json:"count_devoluciones"`
}

type WalletHistory struct {
	Summary      WalletSummary      `json:"summary"`
	Daily        []WalletDailyEntry `json:"daily"`
	Dropshipping WalletDropshipping `json:"dropshipping"`
}
