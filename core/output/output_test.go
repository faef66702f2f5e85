package output

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"home-load/core/advisor"
	"home-load/core/session"
	"home-load/core/types"
	"home-load/internal/errors"
)

func summaryFor(t *testing.T, rooms ...types.Quantities) *types.Summary {
	t.Helper()
	o := session.New(
		session.WithClock(func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }),
		session.WithIDSource(func() string { return "fixed-id" }),
	)
	s, err := o.Run(context.Background(), session.CustomRequest(rooms, decimal.NewFromInt(7)))
	require.NoError(t, err)
	return s
}

func TestRegistry(t *testing.T) {
	r := NewDefaultRegistry(Options{})
	assert.Equal(t, []string{"cli", "json", "markdown", "xlsx"}, r.Names())

	f, err := r.Get("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f.Format())

	_, err = r.Get("html")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotSupported))

	assert.Error(t, r.Register(NewJSONFormatter()))
	assert.True(t, FormatXLSX.Binary())
	assert.False(t, FormatCLI.Binary())
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "₨840.00", Money(types.CurrencyPKR, decimal.NewFromInt(840)))
	assert.Equal(t, "$7.50", Money(types.CurrencyUSD, decimal.NewFromFloat(7.5)))
}

func TestCLIReport(t *testing.T) {
	s := summaryFor(t, types.Quantities{"Geyser": 2}, types.Quantities{"Geyser": 3})

	var buf bytes.Buffer
	require.NoError(t, NewCLIFormatter(false, true).Render(&buf, s))
	out := buf.String()

	assert.Contains(t, out, "▸ Room 1")
	assert.Contains(t, out, "Load: 6.00 kW (26.09 A)")
	assert.Contains(t, out, "Suggested Circuit Breaker: 30A ELCB (Earth Leakage Circuit Breaker)")
	assert.Contains(t, out, "Suggested Cable Size: 4 mm² Cable")
	assert.Contains(t, out, "Load: 9.00 kW (39.13 A)")
	assert.Contains(t, out, "Total Load: 15.00 kW (65.22 A)")
	assert.Contains(t, out, "Main Circuit Breaker: 40A RCCB (Residual Current Circuit Breaker)")
	assert.Contains(t, out, "Main Cable Size: 6 mm² Cable")
	assert.Contains(t, out, "Estimated Monthly Energy Cost: ₨12600.00 (at ₨7.00/unit)")
	assert.Contains(t, out, "Geyser")
	// Room 2 and the total are both above 30A.
	assert.Equal(t, 2, strings.Count(out, advisor.OverloadMessage))
}

func TestJSONReport(t *testing.T) {
	s := summaryFor(t, types.Quantities{"Fan": 1})

	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Render(&buf, s))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "fixed-id", decoded["session_id"])
	assert.Equal(t, "10A MCB (Miniature Circuit Breaker)", decoded["main_breaker"])
	assert.Equal(t, "63", decoded["monthly_cost"])
	assert.Len(t, decoded["rooms"], 1)
}

func TestMarkdownReport(t *testing.T) {
	s := summaryFor(t, types.Quantities{"Bulb": 2, "LCD/TV": 1})

	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter(false, true).Render(&buf, s))
	out := buf.String()

	assert.Contains(t, out, "| Room 1 | 0.22 | 0.96 | 10A MCB (Miniature Circuit Breaker) | 1.5 mm² Cable |")
	assert.Contains(t, out, "| LCD/TV | 1 | 0.100 | 0.100 |")
	assert.Contains(t, out, "- **Estimated Monthly Energy Cost:** ₨184.80 (at ₨7.00/unit)")
}

func TestMarkdownRendered(t *testing.T) {
	s := summaryFor(t, types.Quantities{"Fridge": 1})

	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter(true, false).Render(&buf, s))
	assert.Contains(t, buf.String(), "Total Summary")
	assert.Contains(t, buf.String(), "Room 1")
}

func TestXLSXReport(t *testing.T) {
	s := summaryFor(t, types.Quantities{"Geyser": 2}, types.Quantities{"AC": 1})

	var buf bytes.Buffer
	require.NoError(t, NewXLSXFormatter().Render(&buf, s))

	wb, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{"Rooms", "Summary"}, wb.GetSheetList())

	rows, err := wb.GetRows("Rooms")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, roomHeaders, rows[0])
	assert.Equal(t, "Room 1", rows[1][0])
	assert.Equal(t, "30A ELCB (Earth Leakage Circuit Breaker)", rows[1][3])
	assert.Equal(t, "No", rows[1][5])
	assert.Equal(t, "Room 2", rows[2][0])

	breaker, err := wb.GetCellValue("Summary", "B5")
	require.NoError(t, err)
	assert.Equal(t, "40A RCCB (Residual Current Circuit Breaker)", breaker)

	id, err := wb.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", id)
}

func TestCLIReportWarnsForOverloadedInstallation(t *testing.T) {
	room := types.Quantities{"Geyser": 1, "Iron": 1}
	s := summaryFor(t, room, room)

	var buf bytes.Buffer
	require.NoError(t, NewCLIFormatter(false, false).Render(&buf, s))
	out := buf.String()

	assert.Equal(t, 1, strings.Count(out, advisor.OverloadMessage))
	assert.Greater(t, strings.Index(out, advisor.OverloadMessage), strings.Index(out, "Total Summary"))
}
