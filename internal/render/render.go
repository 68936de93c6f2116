// Package render prints problems, step traces and optimization runs as
// terminal tables, and builds the JSON report used by --output json.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/lvtransport/modi"
	"github.com/katalvlaran/lvtransport/transport"
)

// Renderer writes styled text to one writer.
type Renderer struct {
	out   io.Writer
	lr    *lipgloss.Renderer
	theme Theme
}

// New returns a Renderer on w; color=false disables all escape codes.
func New(w io.Writer, color bool) *Renderer {
	lr := newRenderer(w, color)

	return &Renderer{out: w, lr: lr, theme: DefaultTheme(lr)}
}

func (r *Renderer) println(s string) error {
	_, err := fmt.Fprintln(r.out, s)
	return err
}

func (r *Renderer) heading(title, sub string) error {
	s := r.theme.Title.Render(title)
	if sub != "" {
		s += " " + r.theme.Subtitle.Render(sub)
	}
	return r.println(s)
}

func (r *Renderer) newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.theme.Border).
		Headers(headers...)
}

// Balance prints both totals and the verdict.
func (r *Renderer) Balance(bc transport.BalanceCheck) error {
	verdict := r.theme.Good.Render("balanced")
	if !bc.Balanced {
		verdict = r.theme.Bad.Render("unbalanced")
	}

	return r.println(fmt.Sprintf("total supply %s, total demand %s: %s", num(bc.TotalSupply), num(bc.TotalDemand), verdict))
}

// Problem prints the cost grid with supply and demand margins.
func (r *Renderer) Problem(name string, p *transport.Problem) error {
	if err := r.heading(name, p.Objective().String()); err != nil {
		return err
	}
	costs := p.Costs()
	t := r.newTable(gridHeaders(p.Cols())...)
	supply, demand := p.Supply(), p.Demand()
	for i, row := range costs {
		cells := []string{origin(i)}
		for _, c := range row {
			cells = append(cells, num(c))
		}
		t.Row(append(cells, num(supply[i]))...)
	}
	t.Row(demandRow(demand)...)
	t.StyleFunc(func(row, _ int) lipgloss.Style {
		if row == table.HeaderRow {
			return r.theme.Header
		}
		return r.theme.Cell
	})

	return r.println(t.Render())
}

// Solution prints the allocation grid ("qty @ cost" on shipped cells) and
// the totals.
func (r *Renderer) Solution(sol transport.Solution) error {
	p := sol.Problem
	sub := sol.Method.String()
	if sol.FinalMethod != sol.Method {
		sub += " (finished by " + sol.FinalMethod.String() + ")"
	}
	if err := r.heading("Allocation", sub); err != nil {
		return err
	}

	alloc := sol.Allocation.ToSlices()
	costs := p.Costs()
	supply, demand := p.Supply(), p.Demand()
	t := r.newTable(gridHeaders(p.Cols())...)
	for i := range alloc {
		cells := []string{origin(i)}
		for j, q := range alloc[i] {
			cells = append(cells, allocCell(q, costs[i][j]))
		}
		t.Row(append(cells, num(supply[i]))...)
	}
	t.Row(demandRow(demand)...)
	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return r.theme.Header
		case row < len(alloc) && col >= 1 && col <= len(alloc[row]) && alloc[row][col-1] > 0:
			return r.theme.Basic
		default:
			return r.theme.Cell
		}
	})
	if err := r.println(t.Render()); err != nil {
		return err
	}

	label := "total cost"
	if p.Objective() == transport.Maximize {
		label = "total profit"
	}
	line := fmt.Sprintf("%s: %s, basic cells: %d of %d", label, num(sol.TotalCost), len(sol.Basis()), p.Rows()+p.Cols()-1)
	if sol.IsDegenerate() {
		line += " " + r.theme.Bad.Render("(degenerate)")
	}

	return r.println(line)
}

// Steps prints the decision trace.
func (r *Renderer) Steps(steps []transport.Step) error {
	if err := r.heading("Steps", fmt.Sprintf("%d", len(steps))); err != nil {
		return err
	}
	t := r.newTable("#", "Kind", "Cell", "Cost", "Qty", "Penalties", "Detail")
	for _, st := range steps {
		t.Row(
			fmt.Sprintf("%d", st.Index),
			st.Kind.String(),
			st.Cell.String(),
			num(st.Cost),
			num(st.Quantity),
			penalties(st.Penalties),
			st.Explanation,
		)
	}
	t.StyleFunc(func(row, _ int) lipgloss.Style {
		if row == table.HeaderRow {
			return r.theme.Header
		}
		return r.theme.Cell
	})

	return r.println(t.Render())
}

// Optimization prints every MODI iteration followed by the outcome.
func (r *Renderer) Optimization(p *transport.Problem, res modi.Result) error {
	for _, it := range res.Iterations {
		sub := it.State.String()
		if it.Degenerate {
			sub += ", degenerate basis"
		}
		if err := r.heading(fmt.Sprintf("Iteration %d", it.Index), sub); err != nil {
			return err
		}
		if err := r.println(fmt.Sprintf("u = %s   v = %s", duals(it.U), duals(it.V))); err != nil {
			return err
		}
		if err := r.println(r.opportunityTable(p, it)); err != nil {
			return err
		}
		if len(it.Loop) > 0 {
			if err := r.println(fmt.Sprintf("loop: %s   θ = %s", loop(it.Loop), num(it.Theta))); err != nil {
				return err
			}
		}
		if err := r.println(r.theme.Muted.Render(it.Explanation)); err != nil {
			return err
		}
	}

	verdict := r.theme.Good.Render(res.State.String())
	if !res.Optimal {
		verdict = r.theme.Bad.Render(res.State.String())
	}

	return r.println(fmt.Sprintf("result: %s, cost %s → %s after %d pivot(s)",
		verdict, num(res.InitialCost), num(res.Cost), res.Pivots))
}

func (r *Renderer) opportunityTable(p *transport.Problem, it modi.Iteration) string {
	alloc := it.Allocation.ToSlices()
	t := r.newTable(gridHeaders(p.Cols())[:p.Cols()+1]...)
	for i := range alloc {
		cells := []string{origin(i)}
		for j, q := range alloc[i] {
			switch d, ok := it.OpportunityAt(i, j); {
			case q > 0:
				cells = append(cells, "["+num(q)+"]")
			case !ok:
				cells = append(cells, "?")
			default:
				cells = append(cells, num(d))
			}
		}
		t.Row(cells...)
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return r.theme.Header
		case it.Entering != nil && row == it.Entering.Row && col == it.Entering.Col+1:
			return r.theme.Entering
		case row >= 0 && row < len(alloc) && col >= 1 && alloc[row][col-1] > 0:
			return r.theme.Basic
		default:
			return r.theme.Cell
		}
	})

	return t.Render()
}

// gridHeaders returns "", D1..Dn, "Supply".
func gridHeaders(cols int) []string {
	h := make([]string, 0, cols+2)
	h = append(h, "")
	for j := 0; j < cols; j++ {
		h = append(h, fmt.Sprintf("D%d", j+1))
	}

	return append(h, "Supply")
}

func demandRow(demand []float64) []string {
	out := []string{"Demand"}
	for _, d := range demand {
		out = append(out, num(d))
	}

	return append(out, "")
}

func origin(i int) string { return fmt.Sprintf("O%d", i+1) }

func allocCell(q, cost float64) string {
	if q > 0 {
		return num(q) + " @ " + num(cost)
	}

	return "- @ " + num(cost)
}

func penalties(p *transport.Penalties) string {
	if p == nil {
		return ""
	}
	side := func(ps []transport.Penalty) string {
		parts := make([]string, len(ps))
		for k, v := range ps {
			if v.Defined {
				parts[k] = num(v.Value)
			} else {
				parts[k] = "-"
			}
		}
		return strings.Join(parts, " ")
	}

	return fmt.Sprintf("r: %s | c: %s", side(p.Rows), side(p.Cols))
}

func duals(ds []modi.Dual) string {
	parts := make([]string, len(ds))
	for k, d := range ds {
		parts[k] = d.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func loop(cells []modi.LoopCell) string {
	parts := make([]string, len(cells))
	for k, c := range cells {
		parts[k] = c.Cell.String() + c.Sign.String()
	}

	return strings.Join(parts, " ")
}

func num(v float64) string { return fmt.Sprintf("%g", v) }

// Comparison prints one summary row per initial plan.
func (r *Renderer) Comparison(sols []transport.Solution) error {
	if err := r.heading("Comparison", fmt.Sprintf("%d methods", len(sols))); err != nil {
		return err
	}
	t := r.newTable("Method", "Finished by", "Cost", "Steps", "Basic cells", "Degenerate")
	for _, s := range sols {
		t.Row(
			s.Method.String(),
			s.FinalMethod.String(),
			num(s.TotalCost),
			fmt.Sprintf("%d", len(s.Steps)),
			fmt.Sprintf("%d", len(s.Basis())),
			fmt.Sprintf("%t", s.IsDegenerate()),
		)
	}
	t.StyleFunc(func(row, _ int) lipgloss.Style {
		if row == table.HeaderRow {
			return r.theme.Header
		}
		return r.theme.Cell
	})

	return r.println(t.Render())
}
