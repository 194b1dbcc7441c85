package deal

import "github.com/shopspring/decimal"

// StageTotal aggregates the deals of one stage.
type StageTotal struct {
	Stage Stage
	Count int
	Value decimal.Decimal
}

// Summary is the pipeline overview shown above the board.
type Summary struct {
	Stages []StageTotal
	Count  int
	// OpenValue sums every stage except WON and LOST.
	OpenValue decimal.Decimal
	WonValue  decimal.Decimal
	LostValue decimal.Decimal
}

// Summarize aggregates deals per stage. Every stage appears in the result in
// board order, including empty ones.
func Summarize(deals []Deal) Summary {
	totals := make([]StageTotal, len(stageOrder))
	for i, st := range stageOrder {
		totals[i] = StageTotal{Stage: st, Value: decimal.Zero}
	}

	s := Summary{
		OpenValue: decimal.Zero,
		WonValue:  decimal.Zero,
		LostValue: decimal.Zero,
	}
	for i := range deals {
		d := &deals[i]
		rank := d.Stage.Rank()
		if rank < 0 {
			continue
		}
		totals[rank].Count++
		totals[rank].Value = totals[rank].Value.Add(d.Value)
		s.Count++

		switch {
		case d.Stage.IsOpen():
			s.OpenValue = s.OpenValue.Add(d.Value)
		case d.Stage == StageWon:
			s.WonValue = s.WonValue.Add(d.Value)
		default:
			s.LostValue = s.LostValue.Add(d.Value)
		}
	}
	s.Stages = totals
	return s
}
