package types

type TrackerStats struct {
	TotalPositions   int `json:"total_positions"`
	ActivePositions  int `json:"active_positions"`
	TotalPersons     int `json:"total_persons"`
	CurrentOfficials int `json:"current_officials"`
	TotalMentions    int `json:"total_mentions"`
}
