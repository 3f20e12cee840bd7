package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vfg2006/ledger-api/internal/aggregation"
	"github.com/vfg2006/ledger-api/internal/domain"
	"github.com/vfg2006/ledger-api/pkg/utils"
)

type reportOptions struct {
	file    string
	filters domain.FilterConfig
	kind    string
	view    string
	period  string
	json    bool
}

func newReportCmd() *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Gera o resumo e a tabela agrupada de um CSV de lançamentos",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "Arquivo CSV de lançamentos")
	cmd.Flags().StringVar(&opts.filters.Start, "start", "", "Data inicial (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.filters.End, "end", "", "Data final (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.filters.Customer, "customer", domain.FilterAll, "Cliente")
	cmd.Flags().StringVar(&opts.kind, "entry-type", domain.FilterAll, "Tipo: sales, cost ou all")
	cmd.Flags().StringVar(&opts.filters.AmountRange, "amount-range", domain.FilterAll, "Faixa de valor")
	cmd.Flags().StringVar(&opts.view, "view", string(domain.ViewCustomer), "Visão: customer, period ou amount-range")
	cmd.Flags().StringVar(&opts.period, "period", string(domain.GranularityMonth), "Período: day, week ou month")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Imprime o relatório em JSON")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runReport(out io.Writer, opts *reportOptions) error {
	opts.filters.Kind = domain.EntryKind(opts.kind)
	if err := opts.filters.Validate(); err != nil {
		return err
	}

	entries, err := readEntriesFile(opts.file)
	if err != nil {
		return err
	}

	report := aggregation.BuildReport(
		entries,
		opts.filters,
		domain.ParseAggregationView(opts.view),
		domain.ParsePeriodGranularity(opts.period),
	)

	if opts.json {
		pretty, err := utils.PrettyJson(report)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, pretty)
		return err
	}

	return printReport(out, report)
}

func printReport(out io.Writer, report domain.Report) error {
	fmt.Fprintf(out, "件数\t%d\n", report.EntryCount)
	fmt.Fprintf(out, "売上\t%s\n", utils.FormatYen(report.Summary.Sales))
	fmt.Fprintf(out, "原価\t%s\n", utils.FormatYen(report.Summary.Cost))
	fmt.Fprintf(out, "粗利\t%s\n", utils.FormatYen(report.Summary.Profit))
	fmt.Fprintf(out, "粗利率\t%s\n", utils.FormatPercent(report.Summary.Margin))
	fmt.Fprintf(out, "\n%s\n", report.ViewTitle)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t件数\t売上\t原価\t粗利\n", report.LabelTitle)
	for _, row := range report.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			row.Label,
			strconv.Itoa(row.Count),
			utils.FormatYen(row.Sales),
			utils.FormatYen(row.Cost),
			utils.FormatYen(row.Profit),
		)
	}

	return w.Flush()
}
