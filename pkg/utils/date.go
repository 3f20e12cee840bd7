package utils

import (
	"time"
)

const dateLayout = time.DateOnly

// ParseDate converte uma data YYYY-MM-DD. String vazia retorna nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// IsValidDate indica se a string é uma data de calendário válida no formato YYYY-MM-DD
func IsValidDate(dateStr string) bool {
	date, err := ParseDate(dateStr)
	return err == nil && date != nil
}

// MonthBounds retorna o primeiro e o último dia do mês da data (YYYY-MM-DD)
func MonthBounds(t time.Time) (string, string) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(dateLayout), last.Format(dateLayout)
}
