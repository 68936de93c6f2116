package render

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/lvtransport/modi"
	"github.com/katalvlaran/lvtransport/transport"
)

// Report is the --output json document.
type Report struct {
	Name       string          `json:"name,omitempty"`
	Objective  string          `json:"objective"`
	Costs      [][]float64     `json:"costs"`
	Supply     []float64       `json:"supply"`
	Demand     []float64       `json:"demand"`
	Balance    BalanceReport   `json:"balance"`
	Solution   *SolutionReport `json:"solution,omitempty"`
	Optimizing *OptimizeReport `json:"optimization,omitempty"`
}

// BalanceReport mirrors transport.BalanceCheck.
type BalanceReport struct {
	TotalSupply float64 `json:"total_supply"`
	TotalDemand float64 `json:"total_demand"`
	Balanced    bool    `json:"balanced"`
}

// SolutionReport describes one initial plan.
type SolutionReport struct {
	Method      string       `json:"method"`
	FinalMethod string       `json:"final_method"`
	Allocation  [][]float64  `json:"allocation"`
	TotalCost   float64      `json:"total_cost"`
	Degenerate  bool         `json:"degenerate"`
	Steps       []StepReport `json:"steps,omitempty"`
}

// StepReport is one trace entry with 1-based cell labels.
type StepReport struct {
	Index       int        `json:"index"`
	Kind        string     `json:"kind"`
	Cell        [2]int     `json:"cell"`
	Cost        float64    `json:"cost"`
	Quantity    float64    `json:"quantity"`
	Penalties   *Penalties `json:"penalties,omitempty"`
	Explanation string     `json:"explanation"`
}

// Penalties carries Vogel penalties; undefined entries are null.
type Penalties struct {
	Rows  []*float64 `json:"rows"`
	Cols  []*float64 `json:"cols"`
	Side  string     `json:"side"`
	Index int        `json:"index"`
	Value float64    `json:"value"`
}

// OptimizeReport describes a MODI run.
type OptimizeReport struct {
	State       string            `json:"state"`
	Optimal     bool              `json:"optimal"`
	Allocation  [][]float64       `json:"allocation"`
	Cost        float64           `json:"cost"`
	InitialCost float64           `json:"initial_cost"`
	Pivots      int               `json:"pivots"`
	Error       string            `json:"error,omitempty"`
	Iterations  []IterationReport `json:"iterations"`
}

// IterationReport is one MODI pass. Undefined duals and opportunity
// costs are null.
type IterationReport struct {
	Index        int          `json:"index"`
	State        string       `json:"state"`
	Cost         float64      `json:"cost"`
	Degenerate   bool         `json:"degenerate"`
	Undetermined int          `json:"undetermined"`
	U            []*float64   `json:"u"`
	V            []*float64   `json:"v"`
	Opportunity  [][]*float64 `json:"opportunity"`
	Entering     *[2]int      `json:"entering,omitempty"`
	Loop         []LoopReport `json:"loop,omitempty"`
	Theta        float64      `json:"theta,omitempty"`
	Explanation  string       `json:"explanation"`
}

// LoopReport is one loop corner.
type LoopReport struct {
	Cell [2]int `json:"cell"`
	Sign string `json:"sign"`
}

// NewReport captures the problem and its balance.
func NewReport(name string, p *transport.Problem) *Report {
	bc := p.Balance()

	return &Report{
		Name:      name,
		Objective: p.Objective().String(),
		Costs:     p.Costs(),
		Supply:    p.Supply(),
		Demand:    p.Demand(),
		Balance:   BalanceReport{TotalSupply: bc.TotalSupply, TotalDemand: bc.TotalDemand, Balanced: bc.Balanced},
	}
}

// AddSolution attaches an initial plan, with its trace when withSteps is set.
func (rep *Report) AddSolution(sol transport.Solution, withSteps bool) *Report {
	s := &SolutionReport{
		Method:      sol.Method.String(),
		FinalMethod: sol.FinalMethod.String(),
		Allocation:  sol.Allocation.ToSlices(),
		TotalCost:   sol.TotalCost,
		Degenerate:  sol.IsDegenerate(),
	}
	if withSteps {
		for _, st := range sol.Steps {
			s.Steps = append(s.Steps, stepReport(st))
		}
	}
	rep.Solution = s

	return rep
}

// AddOptimization attaches a MODI run; runErr is the error Optimize
// returned alongside res, if any.
func (rep *Report) AddOptimization(res modi.Result, runErr error) *Report {
	o := &OptimizeReport{
		State:       res.State.String(),
		Optimal:     res.Optimal,
		Cost:        res.Cost,
		InitialCost: res.InitialCost,
		Pivots:      res.Pivots,
		Iterations:  make([]IterationReport, 0, len(res.Iterations)),
	}
	if res.Allocation != nil {
		o.Allocation = res.Allocation.ToSlices()
	}
	if runErr != nil {
		o.Error = runErr.Error()
	}
	for _, it := range res.Iterations {
		o.Iterations = append(o.Iterations, iterationReport(it))
	}
	rep.Optimizing = o

	return rep
}

// WriteJSON encodes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func stepReport(st transport.Step) StepReport {
	out := StepReport{
		Index:       st.Index,
		Kind:        st.Kind.String(),
		Cell:        label(st.Cell),
		Cost:        st.Cost,
		Quantity:    st.Quantity,
		Explanation: st.Explanation,
	}
	if p := st.Penalties; p != nil {
		out.Penalties = &Penalties{
			Rows:  optionalPenalties(p.Rows),
			Cols:  optionalPenalties(p.Cols),
			Side:  p.Side.String(),
			Index: p.Index + 1,
			Value: p.Value,
		}
	}

	return out
}

func iterationReport(it modi.Iteration) IterationReport {
	out := IterationReport{
		Index:        it.Index,
		State:        it.State.String(),
		Cost:         it.Cost,
		Degenerate:   it.Degenerate,
		Undetermined: it.Undetermined,
		U:            optionalDuals(it.U),
		V:            optionalDuals(it.V),
		Theta:        it.Theta,
		Explanation:  it.Explanation,
	}
	rows, cols := it.Opportunity.Rows(), it.Opportunity.Cols()
	out.Opportunity = make([][]*float64, rows)
	for i := 0; i < rows; i++ {
		out.Opportunity[i] = make([]*float64, cols)
		for j := 0; j < cols; j++ {
			if d, ok := it.OpportunityAt(i, j); ok {
				out.Opportunity[i][j] = &d
			}
		}
	}
	if it.Entering != nil {
		e := label(*it.Entering)
		out.Entering = &e
	}
	for _, lc := range it.Loop {
		out.Loop = append(out.Loop, LoopReport{Cell: label(lc.Cell), Sign: lc.Sign.String()})
	}

	return out
}

func label(c transport.Cell) [2]int { return [2]int{c.Row + 1, c.Col + 1} }

func optionalPenalties(ps []transport.Penalty) []*float64 {
	out := make([]*float64, len(ps))
	for k := range ps {
		if ps[k].Defined {
			v := ps[k].Value
			out[k] = &v
		}
	}

	return out
}

func optionalDuals(ds []modi.Dual) []*float64 {
	out := make([]*float64, len(ds))
	for k := range ds {
		if ds[k].Known {
			v := ds[k].Value
			out[k] = &v
		}
	}

	return out
}
