package service

import (
	"bytes"
	"fmt"

	"github.com/goserg/trucoserver/internal/domain"
	"github.com/goserg/trucoserver/internal/score"
	"github.com/goserg/trucoserver/internal/scorehistory"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"github.com/xuri/excelize/v2"
)

var standingsHeader = []any{"Posición", "Jugador", "Partidos", "Ganados", "Perdidos", "% Victorias", "Elo", "Glicko-2", "Desvío"}

// StandingsXLSX renders the standings table as a spreadsheet.
func StandingsXLSX(tournament domain.Tournament, standings []domain.Standing) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetCellValue(sheet, "A1", tournament.Name); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheet, "A3", &standingsHeader); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", "I3", bold); err != nil {
		return nil, err
	}
	for i, st := range standings {
		axis, err := excelize.CoordinatesToCellName(1, i+4)
		if err != nil {
			return nil, err
		}
		row := []any{
			st.Rank,
			st.Player.Name,
			st.Played,
			st.Won,
			st.Lost,
			st.WinRate,
			st.Elo,
			fmt.Sprintf("%.0f", st.Glicko.Rating),
			fmt.Sprintf("%.0f", st.Glicko.Deviation),
		}
		if err := f.SetSheetRow(sheet, axis, &row); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(sheet, "B", "B", 24); err != nil {
		return nil, err
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var (
	localColor   = drawing.ColorFromHex("1f77b4")
	visitorColor = drawing.ColorFromHex("d62728")
)

// ScoreHistoryChart plots both scores over the recorded snapshots.
func ScoreHistoryChart(m domain.Match, snapshots []scorehistory.Snapshot) ([]byte, error) {
	if len(snapshots) == 0 {
		return nil, ErrNoOpenMatch
	}
	if len(snapshots) == 1 {
		// a single point has no x range
		snapshots = append(snapshots, snapshots[0])
	}
	xs := make([]float64, len(snapshots))
	local := make([]float64, len(snapshots))
	visitor := make([]float64, len(snapshots))
	for i, snap := range snapshots {
		xs[i] = float64(i)
		local[i] = float64(snap.Local)
		visitor[i] = float64(snap.Visitor)
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s vs %s", m.Local.Name, m.Visitor.Name),
		Width:  800,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name: "Cambio",
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f", v)
			},
		},
		YAxis: chart.YAxis{
			Name:  "Puntos",
			Range: &chart.ContinuousRange{Min: 0, Max: score.MaxPoints},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    m.Local.Name,
				XValues: xs,
				YValues: local,
				Style: chart.Style{
					StrokeColor: localColor,
					StrokeWidth: 2,
					DotWidth:    4,
					DotColor:    localColor,
				},
			},
			chart.ContinuousSeries{
				Name:    m.Visitor.Name,
				XValues: xs,
				YValues: visitor,
				Style: chart.Style{
					StrokeColor: visitorColor,
					StrokeWidth: 2,
					DotWidth:    4,
					DotColor:    visitorColor,
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
