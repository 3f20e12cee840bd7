package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vfg2006/ledger-api/pkg/log"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Ferramentas de linha de comando do livro-caixa",
		Long: `ledgerctl gera relatórios a partir de arquivos CSV de lançamentos
e importa esses arquivos para o PostgreSQL.

Exemplos:
  ledgerctl report --file entries.csv --view period --period week
  ledgerctl import --file entries.csv --user-id 3`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Configure(logLevel)
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Nível de log (debug, info, warn, error)")

	root.AddCommand(newReportCmd())
	root.AddCommand(newImportCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}
