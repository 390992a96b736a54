package utils

import "time"

// ParseDate lit une date au format AAAA-MM-JJ. La chaîne vide donne la date
// zéro plutôt qu'une erreur : l'appelant décide si la date est exigée.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return &time.Time{}, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
