package breachwatch

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/breachwatch/breachwatch/internal/audit"
	"github.com/breachwatch/breachwatch/internal/config"
	"github.com/breachwatch/breachwatch/internal/enrich"
	"github.com/breachwatch/breachwatch/internal/report"
	"github.com/breachwatch/breachwatch/pkg/core"
)

var (
	flagDomain  string
	flagEmails  string
	flagOffline string
	flagOut     string
	flagMaxHIBP int
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the offline dataset for exposed accounts",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagDomain, "domain", "", "filter by domain, e.g. example.com")
	cmd.Flags().StringVar(&flagEmails, "emails", "", "path to file with one email per line")
	cmd.Flags().StringVar(&flagOffline, "offline", "sample_data/sample_breaches.csv", "offline breach CSV (path or glob)")
	cmd.Flags().StringVar(&flagOut, "out", "examples", "output directory for generated reports")
	cmd.Flags().IntVar(&flagMaxHIBP, "max-hibp", 0, "max number of HIBP lookups (0 = skip)")
	cmd.MarkFlagsMutuallyExclusive("domain", "emails")
}

func runScan(cmd *cobra.Command, _ []string) error {
	cwd, _ := os.Getwd()
	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(cwd); err == nil {
		lcfg = c
	}

	offline := flagOffline
	if !cmd.Flags().Changed("offline") {
		if v := pickString("", lcfg.Offline, gcfg.Offline); v != "" {
			offline = v
		}
	}
	out := flagOut
	if !cmd.Flags().Changed("out") {
		if v := pickString("", lcfg.Out, gcfg.Out); v != "" {
			out = v
		}
	}
	maxHIBP := flagMaxHIBP
	if !cmd.Flags().Changed("max-hibp") {
		maxHIBP = pickInt(0, lcfg.MaxHIBP, gcfg.MaxHIBP)
	}
	// Selection from config only when the CLI supplied neither mode.
	domain, emailsPath := flagDomain, flagEmails
	if domain == "" && emailsPath == "" {
		domain = pickString("", lcfg.Domain, gcfg.Domain)
		if domain == "" {
			emailsPath = pickString("", lcfg.Emails, gcfg.Emails)
		}
	}
	delay := enrich.DefaultDelay
	if v := pickString("", lcfg.HIBPDelay, gcfg.HIBPDelay); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			delay = d
		}
	}
	noColor := pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)

	summary, matches, err := core.Run(cmd.Context(), core.Config{
		DatasetPath: offline,
		Domain:      domain,
		EmailsPath:  emailsPath,
		MaxHIBP:     maxHIBP,
		HIBPDelay:   delay,
	})
	if err != nil {
		return err
	}

	csvPath, jsonPath, mdPath, err := report.WriteArtifacts(out, matches, summary)
	if err != nil {
		return err
	}

	if flagJSON {
		if err := core.MarshalSummary(os.Stdout, summary); err != nil {
			return err
		}
	} else {
		report.PrintSummary(os.Stdout, summary, report.PrintOptions{
			NoColor: noColor || !term.IsTerminal(int(os.Stdout.Fd())),
		})
		fmt.Fprintln(os.Stderr, "[+] Saved:", csvPath)
		fmt.Fprintln(os.Stderr, "[+] Saved:", jsonPath)
		fmt.Fprintln(os.Stderr, "[+] Saved:", mdPath)
	}

	// Best-effort run history; a failed append is only a warning.
	if err := audit.NewLog(cwd).Append(audit.RunRecord{
		Dataset:          offline,
		Domain:           domain,
		EmailList:        emailsPath,
		TotalMatches:     summary.TotalExposedAccounts,
		UniqueEmails:     summary.UniqueEmails,
		DistinctBreaches: summary.DistinctBreaches,
		RiskScore:        summary.RiskScore,
		RiskBand:         string(summary.RiskBand),
		OutDir:           out,
	}); err != nil {
		fmt.Fprintln(os.Stderr, "audit warning:", err)
	}
	return nil
}
