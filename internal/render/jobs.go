// Package render draws the feed and the home view for a terminal.
package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"text/tabwriter"

	"github.com/jimezsa/zupro/internal/models"
	"github.com/jimezsa/zupro/internal/pay"
	"github.com/muesli/termenv"
)

type Format string

const (
	FormatTable    Format = "table"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatTSV      Format = "tsv"
)

type Options struct {
	ColorEnabled bool
	Hyperlinks   bool
}

// Row is a job as exported: the pay label split into heading and amount.
type Row struct {
	models.Job
	PayCategory string `json:"pay_category"`
	PayAmount   string `json:"pay_amount"`
}

func Rows(jobs []models.Job) []Row {
	rows := make([]Row, 0, len(jobs))
	for _, job := range jobs {
		label := pay.Parse(job.PayLabel)
		rows = append(rows, Row{Job: job, PayCategory: label.Heading(), PayAmount: label.Amount})
	}
	return rows
}

func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "tsv":
		return FormatTSV, nil
	case "table", "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format: %s", value)
	}
}

func WriteJobs(w io.Writer, jobs []models.Job, format Format, opts Options) error {
	rows := Rows(jobs)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case FormatCSV:
		return writeCSV(w, rows, ',')
	case FormatTSV:
		return writeCSV(w, rows, '\t')
	case FormatMarkdown:
		return writeMarkdown(w, rows)
	default:
		return writeTable(w, rows, opts)
	}
}

func writeCSV(w io.Writer, rows []Row, delim rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delim
	header := []string{"id", "title", "location", "joining_date", "pay_category", "pay_amount", "map_url"}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{row.ID, row.Title, row.Location, row.JoiningDate, row.PayCategory, row.PayAmount, row.MapURL}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeTable(w io.Writer, rows []Row, opts Options) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "id\ttitle\tlocation\tjoining\tpay\tmap")
	output := termenv.NewOutput(w)
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			safe(row.ID),
			safe(row.Title),
			dash(row.Location),
			dash(row.JoiningDate),
			payText(row),
			mapLink(output, row.MapURL, opts),
		)
	}
	return tw.Flush()
}

func writeMarkdown(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, EmptyTitle)
		return err
	}
	for _, row := range rows {
		lines := []string{
			fmt.Sprintf("- **%s** (`%s`)", safe(row.Title), safe(row.ID)),
			fmt.Sprintf("  Location: %s", dash(row.Location)),
			fmt.Sprintf("  Joining: %s", dash(row.JoiningDate)),
			fmt.Sprintf("  %s: %s", row.PayCategory, dash(row.PayAmount)),
		}
		if link := safe(row.MapURL); link != "" {
			lines = append(lines, fmt.Sprintf("  Map: [Open in maps](<%s>)", link))
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func payText(row Row) string {
	if row.PayAmount == "" {
		return "-"
	}
	return row.PayCategory + ": " + row.PayAmount
}

func mapLink(output *termenv.Output, raw string, opts Options) string {
	link := safe(raw)
	if link == "" {
		return "-"
	}
	display := link
	if opts.Hyperlinks {
		display = shortLabel(link)
	}
	if opts.ColorEnabled {
		display = output.String(display).Foreground(output.Color(linkColor)).String()
	}
	if opts.Hyperlinks {
		display = hyperlink(link, display)
	}
	return display
}

const linkColor = "#87CEEB"

func hyperlink(target string, text string) string {
	const esc = "\x1b"
	return esc + "]8;;" + target + esc + "\\" + text + esc + "]8;;" + esc + "\\"
}

func shortLabel(raw string) string {
	const maxLen = 48
	label := raw
	if parsed, err := url.Parse(raw); err == nil && parsed.Host != "" {
		label = strings.TrimPrefix(parsed.Host, "www.") + parsed.Path
	}
	if len(label) > maxLen {
		label = label[:maxLen-3] + "..."
	}
	return label
}

func safe(value string) string {
	return strings.TrimSpace(value)
}

func dash(value string) string {
	if value = safe(value); value == "" {
		return "-"
	}
	return value
}
