package deal

// Stage is one named column of the pipeline.
type Stage string

const (
	StageLead        Stage = "LEAD"
	StageQualified   Stage = "QUALIFIED"
	StageProposal    Stage = "PROPOSAL"
	StageNegotiation Stage = "NEGOTIATION"
	StageWon         Stage = "WON"
	StageLost        Stage = "LOST"
)

// stageOrder is the fixed board order. LOST is the tail column.
var stageOrder = []Stage{
	StageLead,
	StageQualified,
	StageProposal,
	StageNegotiation,
	StageWon,
	StageLost,
}

// Stages returns all stages in board order. The returned slice is a copy.
func Stages() []Stage {
	out := make([]Stage, len(stageOrder))
	copy(out, stageOrder)
	return out
}

// Rank returns the zero-based board position of the stage, or -1 for an
// unknown stage.
func (s Stage) Rank() int {
	for i, st := range stageOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// IsValid returns true if the stage is one of the defined constants.
func (s Stage) IsValid() bool {
	return s.Rank() >= 0
}

// IsOpen reports whether deals in this stage still count toward the open
// pipeline value.
func (s Stage) IsOpen() bool {
	return s.IsValid() && s != StageWon && s != StageLost
}

// String implements fmt.Stringer.
func (s Stage) String() string {
	return string(s)
}

// BoardOrder returns the distinct valid stages of the input sorted by rank.
// Lock implementations acquire stages in this order.
func BoardOrder(stages ...Stage) []Stage {
	seen := make(map[Stage]bool, len(stages))
	out := make([]Stage, 0, len(stages))
	for _, st := range stageOrder {
		for _, s := range stages {
			if s == st && !seen[st] {
				seen[st] = true
				out = append(out, st)
			}
		}
	}
	return out
}
