package models

import "github.com/google/uuid"

// AccidentRecord - одна строка датасета атропельо (AtropellosGS2015).
// Latitude и Longitude берутся из колонок X и Y соответственно, в том же
// порядке, в котором их получала исходная карта.
type AccidentRecord struct {
	ID               uuid.UUID `json:"id"`
	Location         string    `json:"location"`
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	AccidentCount    int       `json:"accident_count"`
	Fatalities       int       `json:"fatalities"`
	SeriousInjuries  int       `json:"serious_injuries"`
	ModerateInjuries int       `json:"moderate_injuries"`
	MinorInjuries    int       `json:"minor_injuries"`
}

// Injured возвращает суммарное число пострадавших, включая погибших
func (r AccidentRecord) Injured() int {
	return r.Fatalities + r.SeriousInjuries + r.ModerateInjuries + r.MinorInjuries
}

// SelectionAggregate - результат агрегации выбранных улиц.
// CanonicalKeys уникальны без учёта регистра и идут в порядке первого появления.
type SelectionAggregate struct {
	CanonicalKeys  []string `json:"canonical_keys"`
	TotalAccidents int      `json:"total_accidents"`
}
