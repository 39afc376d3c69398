package engine

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/google/uuid"
)

// Result holds the timings of a single case.
type Result struct {
	Name    string
	Rounds  int64
	Ops     int64
	Total   time.Duration
	NsPerOp float64
}

// Report is the outcome of one engine run.
type Report struct {
	RunID      uuid.UUID
	Name       string
	Iterations int
	Rounds     int
	Started    time.Time
	Elapsed    time.Duration
	Results    []Result
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Table renders the results as a bordered table, one row per case.
func (r *Report) Table() string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("case", "ns/op", "rounds", "calls", "total").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, res := range r.Results {
		t.Row(
			res.Name,
			strconv.FormatFloat(res.NsPerOp, 'f', 2, 64),
			strconv.FormatInt(res.Rounds, 10),
			strconv.FormatInt(res.Ops, 10),
			res.Total.Round(time.Microsecond).String(),
		)
	}
	return t.String()
}

func (r *Report) String() string {
	return fmt.Sprintf("%s run %s: %d cases, %d rounds of %d calls, %s\n%s",
		r.Name, r.RunID, len(r.Results), r.Rounds, r.Iterations, r.Elapsed.Round(time.Millisecond), r.Table())
}
