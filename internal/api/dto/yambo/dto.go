package yambo

type HoldRequest struct {
	Index int `json:"index"` // die index, 0-4
}

type SaveRequest struct {
	Column string `json:"column"`
	Row    string `json:"row"`
}

type ScratchRequest struct {
	Column string `json:"column"`
}

type Cell struct {
	Column string `json:"column"`
	Row    string `json:"row"`
	State  string `json:"state"`
	Value  int    `json:"value"`
}

type Combinations struct {
	ThreeOfAKind bool `json:"three_of_a_kind"`
	FourOfAKind  bool `json:"four_of_a_kind"`
	FullHouse    bool `json:"full_house"`
	Straight     bool `json:"straight"`
	Yambo        bool `json:"yambo"`
}

type Totals struct {
	Upper int `json:"upper"`
	Bonus int `json:"bonus"`
	Lower int `json:"lower"`
	Grand int `json:"grand"`
}

type RollResponse struct {
	Values       [5]int       `json:"values"`
	Combinations Combinations `json:"combinations"`
	Eligible     []Cell       `json:"eligible"` // cells open for saving
	RollCount    int          `json:"roll_count"`
	MaxRolls     int          `json:"max_rolls"`
}

type SaveResponse struct {
	Cell     Cell   `json:"cell"`
	Totals   Totals `json:"totals"` // the saved cell's column
	GameOver bool   `json:"game_over"`
}

type TableResponse struct {
	Dice       [5]int            `json:"dice"`
	Holds      [5]bool           `json:"holds"`
	RollCount  int               `json:"roll_count"`
	MaxRolls   int               `json:"max_rolls"`
	Eligible   []Cell            `json:"eligible"`
	Totals     map[string]Totals `json:"totals"`
	GrandTotal int               `json:"grand_total"`
	Scratched  []string          `json:"scratched"` // scratched column IDs
	GameOver   bool              `json:"game_over"`
}
