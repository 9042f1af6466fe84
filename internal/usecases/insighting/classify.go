package insighting

// Band é a faixa de triagem de um anúncio pelo seu CPA. É um apoio
// visual de decisão (escalar, otimizar, apagar) e nunca altera os
// agregados numéricos.
type Band string

const (
	BandSinVentas Band = "sin_ventas"
	BandEscala    Band = "escala"
	BandVasBien   Band = "vas_bien"
	BandOptimizar Band = "optimizar"
	BandApagar    Band = "apagar"
)

// Limites superiores (inclusivos) de cada faixa, em COP
const (
	escalaMaxCPA    = 5000
	vasBienMaxCPA   = 12000
	optimizarMaxCPA = 18000
)

// AllBands na ordem de avaliação
var AllBands = []Band{BandSinVentas, BandEscala, BandVasBien, BandOptimizar, BandApagar}

// ClassifyCPA classifica um CPA na sua faixa. Avaliação em ordem
// crescente, primeiro match vence; limites superiores inclusivos.
func ClassifyCPA(cpa float64) Band {
	switch {
	case cpa <= 0:
		return BandSinVentas
	case cpa <= escalaMaxCPA:
		return BandEscala
	case cpa <= vasBienMaxCPA:
		return BandVasBien
	case cpa <= optimizarMaxCPA:
		return BandOptimizar
	default:
		return BandApagar
	}
}
