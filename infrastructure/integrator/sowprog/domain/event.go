package domain

// EventStyle est le style musical d'un événement SowProg.
type EventStyle struct {
	Label string `json:"label"`
}

type Event struct {
	Title           string     `json:"title"`
	EventStyle      EventStyle `json:"eventStyle"`
	FacebookFanPage string     `json:"facebookFanPage"`
	Picture         string     `json:"picture"`
}

// ScheduledEvent est une occurrence datée d'un événement.
type ScheduledEvent struct {
	Event         Event `json:"event"`
	FreeAdmission bool  `json:"freeAdmission"`
}

// SearchResponse est la réponse de scheduledEventsSplitByDate/search. Le
// pointeur distingue un conteneur absent (API en erreur) d'une liste vide
// (pas de concert ce jour-là).
type SearchResponse struct {
	EventDescriptionSplitByDate *[]ScheduledEvent `json:"eventDescriptionSplitByDate"`
}
