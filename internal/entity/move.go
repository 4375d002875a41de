package entity

// Move is the record of one accepted turn. Color is the player that moved.
type Move struct {
	Row    int   `json:"row"`
	Column int   `json:"column"`
	Color  Color `json:"color"`
}
