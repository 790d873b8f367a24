package entity

// Decision - the chosen move for a (board, turn) pair. Move is -1 when no move could be computed.
type Decision struct {
	Board  []int  `json:"board"`
	Turn   int    `json:"turn"`
	Move   int    `json:"move"`
	Score  int    `json:"score"`
	Nodes  int    `json:"nodes,omitempty"`
	Reason string `json:"reason,omitempty"`
	Cached bool   `json:"cached,omitempty"`
}

func (that *Decision) IsValid() bool {
	return that.Move >= 0
}
