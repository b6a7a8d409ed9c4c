package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/jimezsa/zupro/internal/pay"
)

type PayCmd struct {
	Raw []string `arg:"" help:"Pay labels, e.g. \"₹1,200/day\" or \"Starts at ₹900/day\"."`
}

type payResult struct {
	Raw      string `json:"raw"`
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

func (p *PayCmd) Run(ctx *Context) error {
	results := make([]payResult, 0, len(p.Raw))
	for _, raw := range p.Raw {
		label := pay.Parse(raw)
		results = append(results, payResult{Raw: raw, Category: label.Heading(), Amount: label.Amount})
	}

	if ctx.JSONOutput {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	if ctx.PlainText {
		for _, res := range results {
			fmt.Fprintf(ctx.Out, "%s\t%s\t%s\n", res.Raw, res.Category, res.Amount)
		}
		return nil
	}

	tw := tabwriter.NewWriter(ctx.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "raw\theading\tamount")
	for _, res := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", res.Raw, res.Category, res.Amount)
	}
	return tw.Flush()
}
