package client

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/MKhiriev/cidr-viewer/internal/adapter"
	"github.com/MKhiriev/cidr-viewer/internal/app"
	"github.com/MKhiriev/cidr-viewer/internal/appconfig"
	"github.com/MKhiriev/cidr-viewer/internal/service"
	"github.com/MKhiriev/cidr-viewer/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).MarginTop(1)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	okStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	failStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	tableBorder  = lipgloss.RoundedBorder()
	borderColour = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// render writes v as indented JSON or lets table draw it, depending on the
// --output flag.
func (a *App) render(cmd *cobra.Command, v any, draw func(p *printer)) error {
	out := cmd.OutOrStdout()

	if a.opts.output == outputJSON {
		return writeJSON(out, v)
	}

	p := &printer{w: out}
	draw(p)
	return p.err
}

// renderPayload prints an API response body. The JSON output is the body as
// the server sent it. The table view needs a body that decodes into the
// models type; when it does not, the raw body is printed instead.
func (a *App) renderPayload(cmd *cobra.Command, payload adapter.Payload, draw func(p *printer) error) error {
	out := cmd.OutOrStdout()

	if a.opts.output == outputJSON {
		return writePayload(out, payload)
	}

	p := &printer{w: out}
	if err := draw(p); err != nil {
		a.logger.Warn().Err(err).Msg("response does not fit the table view, printing it as JSON")
		return writePayload(out, payload)
	}
	return p.err
}

func writeJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func writePayload(out io.Writer, payload adapter.Payload) error {
	if len(payload) == 0 {
		_, err := fmt.Fprintln(out, "null")
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, payload, "", "  "); err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	_, err := fmt.Fprintln(out, buf.String())
	return err
}

// printer keeps the first write error so that drawing code stays linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) println(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func (p *printer) section(title string, headers []string, rows [][]string) {
	p.println(titleStyle.Render(title))
	if len(rows) == 0 {
		p.println(mutedStyle.Render("  none"))
		return
	}
	p.println(newTable(headers, rows))
}

func newTable(headers []string, rows [][]string) string {
	return table.New().
		Border(tableBorder).
		BorderStyle(borderColour).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}

func (p *printer) analysis(resp models.AnalysisResponse) {
	valid := make([][]string, 0, len(resp.ValidCIDRs))
	for _, r := range resp.ValidCIDRs {
		valid = append(valid, []string{
			r.Original, category(r.Category), r.Network, r.Broadcast, r.Mask,
			strconv.Itoa(r.TotalIPs), strconv.Itoa(r.UsableIPs),
		})
	}
	p.section("Valid CIDRs", []string{"CIDR", "Category", "Network", "Broadcast", "Mask", "Total", "Usable"}, valid)

	if len(resp.InvalidCIDRs) > 0 {
		invalid := make([][]string, 0, len(resp.InvalidCIDRs))
		for _, r := range resp.InvalidCIDRs {
			invalid = append(invalid, []string{r.Original, category(r.Category), r.ErrorMsg})
		}
		p.section("Invalid CIDRs", []string{"CIDR", "Category", "Error"}, invalid)
	}

	gaps := make([][]string, 0, len(resp.Gaps))
	for _, g := range resp.Gaps {
		gaps = append(gaps, []string{g.StartIP, g.EndIP, strconv.Itoa(g.Size), g.SuggestedCIDR})
	}
	p.section("Gaps", []string{"Start", "End", "Size", "Suggested CIDR"}, gaps)

	overlaps := make([][]string, 0, len(resp.Overlaps))
	for _, o := range resp.Overlaps {
		overlaps = append(overlaps, []string{o.CIDR1, o.CIDR2, o.Intersection, o.Type})
	}
	p.section("Overlaps", []string{"CIDR 1", "CIDR 2", "Intersection", "Type"}, overlaps)

	s := resp.Summary
	p.section("Summary", []string{"Metric", "Value"}, [][]string{
		{"Total IPs", strconv.Itoa(s.TotalIPs)},
		{"Allocated IPs", strconv.Itoa(s.AllocatedIPs)},
		{"Available IPs", strconv.Itoa(s.AvailableIPs)},
		{"Gaps", strconv.Itoa(s.GapCount)},
		{"Overlaps", strconv.Itoa(s.OverlapCount)},
	})
}

func (p *printer) cidrRange(r models.CIDRRange) {
	if !r.Valid {
		p.println(failStyle.Render("invalid") + " " + r.Original + ": " + r.ErrorMsg)
		return
	}

	p.println(okStyle.Render("valid") + " " + r.Original)
	p.println(newTable([]string{"Field", "Value"}, [][]string{
		{"Network", r.Network},
		{"Broadcast", r.Broadcast},
		{"Mask", r.Mask},
		{"Total IPs", strconv.Itoa(r.TotalIPs)},
		{"Usable IPs", strconv.Itoa(r.UsableIPs)},
	}))
}

func (p *printer) health(resp models.HealthResponse) {
	if resp.Status == models.StatusHealthy {
		p.println(okStyle.Render(app.MsgAPIHealthy) + mutedStyle.Render(" at "+resp.Timestamp))
		return
	}
	p.println(failStyle.Render(app.MsgAPIUnhealthy) + mutedStyle.Render(" status "+resp.Status))
}

func (p *printer) healthStatus(status service.HealthStatus) {
	checkedAt := status.CheckedAt.Format("15:04:05")
	if status.Healthy {
		p.println(mutedStyle.Render(checkedAt+" ") + okStyle.Render(app.MsgAPIHealthy))
		return
	}

	line := mutedStyle.Render(checkedAt+" ") + failStyle.Render(app.MsgAPIUnhealthy)
	if status.Err != nil {
		line += ": " + status.Err.Error()
	}
	p.println(line)
}

func (p *printer) appConfig(cfg *appconfig.AppConfig) {
	rows := [][]string{
		{appconfig.KeyAPIBaseURL, cfg.APIBaseURL},
		{appconfig.KeyAPITimeout, cfg.APITimeout.String()},
	}
	for _, key := range slices.Sorted(maps.Keys(cfg.Values)) {
		if key == appconfig.KeyAPIBaseURL || key == appconfig.KeyAPITimeout {
			continue
		}
		rows = append(rows, []string{key, fmt.Sprint(cfg.Values[key])})
	}
	p.println(newTable([]string{"Key", "Value"}, rows))
}

func (p *printer) buildInfo(info models.AppBuildInfo) {
	p.println(newTable([]string{"Build", "Value"}, [][]string{
		{"Version", info.BuildVersion()},
		{"Date", info.BuildDate()},
		{"Commit", info.BuildCommit()},
	}))
}

func category(c string) string {
	if c == "" {
		return "-"
	}
	return c
}
