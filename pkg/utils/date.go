package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// DateRange representa o intervalo de datas selecionado no dashboard
type DateRange struct {
	Start time.Time
	End   time.Time
}

// LastDays retorna o intervalo padrão do dashboard: últimos n dias até hoje
func LastDays(n int) DateRange {
	now := time.Now()
	return DateRange{
		Start: now.AddDate(0, 0, -n),
		End:   now,
	}
}

func (r DateRange) StartString() string {
	return r.Start.Format(time.DateOnly)
}

func (r DateRange) EndString() string {
	return r.End.Format(time.DateOnly)
}
