package models

// Pokemon is one row of the dataset. Type2 is empty for single-typed
// Pokémon and stored as NULL.
type Pokemon struct {
	Name       string `json:"name"`
	Type1      string `json:"type1"`
	Type2      string `json:"type2,omitempty"`
	HP         int    `json:"hp"`
	Attack     int    `json:"attack"`
	Defense    int    `json:"defense"`
	SpAtk      int    `json:"sp_atk"`
	SpDef      int    `json:"sp_def"`
	Speed      int    `json:"speed"`
	Generation int    `json:"generation"`
	Legendary  bool   `json:"legendary"`
}

// TotalStats is the sum of the six core stats.
func (p Pokemon) TotalStats() int {
	return p.HP + p.Attack + p.Defense + p.SpAtk + p.SpDef + p.Speed
}
