package deal

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/deal-pipeline/internal/domain"
)

func stagePtr(s Stage) *Stage          { return &s }
func priorityPtr(p Priority) *Priority { return &p }

func filterFixtures() []Deal {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return []Deal{
		{ID: "acme", Title: "Acme Corp", Company: "Acme", Priority: PriorityHigh, Stage: StageLead, OrderIndex: 0, CreatedAt: base},
		{ID: "beta", Title: "Beta Inc", Company: "BetaTech", Contact: "Carlos Lima", Priority: PriorityLow, Stage: StageLead, OrderIndex: 1, CreatedAt: base},
		{ID: "omega", Title: "Manutenção anual", Company: "Omega Inc", Notes: "Fechado com DESCONTO", Priority: PriorityMedium, Stage: StageWon, OrderIndex: 0, CreatedAt: base},
	}
}

func ids(deals []Deal) []string {
	out := make([]string, len(deals))
	for i := range deals {
		out[i] = deals[i].ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter_Apply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "empty filter returns all in board order", filter: Filter{}, want: []string{"acme", "beta", "omega"}},
		{name: "q matches title case-insensitively", filter: Filter{Q: "ACME"}, want: []string{"acme"}},
		{name: "q lowercase matches", filter: Filter{Q: "acme"}, want: []string{"acme"}},
		{name: "q matches contact", filter: Filter{Q: "lima"}, want: []string{"beta"}},
		{name: "q matches notes", filter: Filter{Q: "desconto"}, want: []string{"omega"}},
		{name: "q matches any field with OR", filter: Filter{Q: "inc"}, want: []string{"beta", "omega"}},
		{name: "q and priority combine with AND", filter: Filter{Q: "acme", Priority: priorityPtr(PriorityLow)}, want: []string{}},
		{name: "q and matching priority", filter: Filter{Q: "acme", Priority: priorityPtr(PriorityHigh)}, want: []string{"acme"}},
		{name: "stage filter", filter: Filter{Stage: stagePtr(StageWon)}, want: []string{"omega"}},
		{name: "unicode needle", filter: Filter{Q: "MANUTENÇÃO"}, want: []string{"omega"}},
		{name: "empty q is ignored", filter: Filter{Q: ""}, want: []string{"acme", "beta", "omega"}},
		{name: "whitespace q is a literal needle", filter: Filter{Q: "   "}, want: []string{}},
		{name: "trailing space is part of the needle", filter: Filter{Q: "corp "}, want: []string{}},
		{name: "inner space matches", filter: Filter{Q: "acme c"}, want: []string{"acme"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ids(tt.filter.Apply(filterFixtures()))
			if !equalIDs(got, tt.want) {
				t.Errorf("Apply() ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_Validate(t *testing.T) {
	t.Parallel()

	f := Filter{Stage: stagePtr("CLOSED"), Priority: priorityPtr("URGENT")}
	err := f.Validate()
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Validate() = %v, want ErrValidation", err)
	}
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || len(verr.Fields) != 2 {
		t.Errorf("Validate() fields = %v, want stage and priority", err)
	}

	ok := Filter{Stage: stagePtr(StageLead)}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestSortBoard(t *testing.T) {
	t.Parallel()

	early := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)
	deals := []Deal{
		{ID: "lost", Stage: StageLost, OrderIndex: 0, CreatedAt: early},
		{ID: "won", Stage: StageWon, OrderIndex: 0, CreatedAt: early},
		{ID: "lead-1-late", Stage: StageLead, OrderIndex: 1, CreatedAt: late},
		{ID: "lead-1-early", Stage: StageLead, OrderIndex: 1, CreatedAt: early},
		{ID: "lead-0", Stage: StageLead, OrderIndex: 0, CreatedAt: late},
		{ID: "proposal", Stage: StageProposal, OrderIndex: 0, CreatedAt: early},
	}

	SortBoard(deals)

	want := []string{"lead-0", "lead-1-early", "lead-1-late", "proposal", "won", "lost"}
	if got := ids(deals); !equalIDs(got, want) {
		t.Errorf("SortBoard() = %v, want %v", got, want)
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	deals := []Deal{
		{Stage: StageLead, Value: decimal.NewFromInt(18000)},
		{Stage: StageLead, Value: decimal.NewFromInt(2000)},
		{Stage: StageNegotiation, Value: decimal.RequireFromString("65000.25")},
		{Stage: StageWon, Value: decimal.NewFromInt(12000)},
		{Stage: StageLost, Value: decimal.NewFromInt(500)},
	}

	s := Summarize(deals)

	if s.Count != 5 {
		t.Errorf("Count = %d, want 5", s.Count)
	}
	if want := decimal.RequireFromString("85000.25"); !s.OpenValue.Equal(want) {
		t.Errorf("OpenValue = %s, want %s", s.OpenValue, want)
	}
	if !s.WonValue.Equal(decimal.NewFromInt(12000)) {
		t.Errorf("WonValue = %s, want 12000", s.WonValue)
	}
	if !s.LostValue.Equal(decimal.NewFromInt(500)) {
		t.Errorf("LostValue = %s, want 500", s.LostValue)
	}
	if len(s.Stages) != len(Stages()) {
		t.Fatalf("len(Stages) = %d, want %d", len(s.Stages), len(Stages()))
	}
	lead := s.Stages[0]
	if lead.Stage != StageLead || lead.Count != 2 || !lead.Value.Equal(decimal.NewFromInt(20000)) {
		t.Errorf("LEAD total = %+v, want 2 deals worth 20000", lead)
	}
	if qualified := s.Stages[1]; qualified.Count != 0 || !qualified.Value.IsZero() {
		t.Errorf("QUALIFIED total = %+v, want empty", qualified)
	}
}
