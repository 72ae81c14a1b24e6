package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reinfolib/reinfolib-cli/internal/api"
	"github.com/reinfolib/reinfolib-cli/internal/cli"
	"github.com/reinfolib/reinfolib-cli/internal/dryrun"
	"github.com/reinfolib/reinfolib-cli/internal/resolve"
	"github.com/reinfolib/reinfolib-cli/internal/stats"
)

func newPricesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "prices",
		Aliases: []string{"price", "p"},
		Short:   "Transaction prices, appraisals, and valuation points",
		Long:    "Search real estate transaction prices, official appraisal reports, and geocoded price points",
	}

	cmd.AddCommand(newPricesListCmd())
	cmd.AddCommand(newPricesPointsCmd())
	cmd.AddCommand(newPricesValuationsCmd())
	cmd.AddCommand(newPricesAppraisalsCmd())

	return cmd
}

// normalizePriceClass accepts the raw 2-digit code or a named category.
func normalizePriceClass(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	if len(value) <= 2 && isAllDigits(value) {
		if len(value) == 1 {
			value = "0" + value
		}
		return value, nil
	}
	name, err := normalizeEnum("price-class", value, []string{"transactions", "contracts"})
	if err != nil {
		return "", err
	}
	if name == "transactions" {
		return "01", nil
	}
	return "02", nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func newPricesListCmd() *cobra.Command {
	var (
		year       int
		quarter    int
		pref       string
		city       string
		station    string
		priceClass string
		lang       string
		summary    bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "search"},
		Short:   "Search transaction and contract prices",
		Example: `  reinfo prices list --year 2023 --pref tokyo
  reinfo prices list --year 2023 --quarter 3 --city 13101
  reinfo prices list --year 2023 --pref 13 --city chiyoda --summary
  reinfo prices list --year 2023 --station 003785 --json`,
		Args: cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			ctx := cmdContext(cmd)

			opts := api.TransactionPricesOptions{
				Year:     year,
				Quarter:  quarter,
				Station:  station,
				Language: lang,
			}

			var err error
			if opts.PriceClassification, err = normalizePriceClass(priceClass); err != nil {
				return err
			}
			if pref != "" {
				if opts.Area, err = resolve.PrefectureCode(pref); err != nil {
					return err
				}
			}

			client, err := getClient()
			if err != nil {
				return err
			}
			if city != "" {
				if opts.City, err = resolveCityCode(ctx, client, opts.Area, city); err != nil {
					return err
				}
			}

			if done, err := maybeDryRun(cmd, &dryrun.Preview{
				Operation:   "GET",
				Resource:    "transaction-prices",
				Description: "Search transaction and contract prices",
				Details: map[string]any{
					"year": year, "quarter": quarter,
					"area": opts.Area, "city": opts.City, "station": opts.Station,
				},
			}); done {
				return err
			}

			records, err := client.Prices().Transactions(ctx, opts)
			if err != nil {
				return err
			}

			if summary {
				return printPricesSummary(cmd, records)
			}
			if isJSON(cmd) {
				if isAgent(cmd) {
					return printJSON(cmd, records)
				}
				return printJSON(cmd, map[string]any{"items": records, "count": len(records)})
			}

			if len(records) == 0 {
				printIfNotQuiet(cmd, "No transactions found.\n")
				return nil
			}
			w := newTabWriterFromCmd(cmd)
			_, _ = fmt.Fprintln(w, "TYPE\tMUNICIPALITY\tDISTRICT\tPRICE\tAREA\tPERIOD")
			for _, rec := range records {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%g\t%s\n",
					rec.Type, rec.Municipality, rec.DistrictName,
					rec.TradePrice.Int(), rec.Area.Float(), rec.Period)
			}
			return w.Flush()
		}),
	}

	cmd.Flags().IntVar(&year, "year", 0, "Transaction year, 2005 or later (required)")
	cmd.Flags().IntVar(&quarter, "quarter", 0, "Transaction quarter 1-4")
	cmd.Flags().StringVar(&pref, "pref", "", "Prefecture code or name (e.g. 13, tokyo, 東京都)")
	cmd.Flags().StringVar(&city, "city", "", "Municipality code or name (name needs --pref)")
	cmd.Flags().StringVar(&station, "station", "", "6-digit station group code")
	cmd.Flags().StringVar(&priceClass, "price-class", "", "Price category: transactions|contracts or 01|02")
	cmd.Flags().StringVar(&lang, "lang", "", "Output language: ja|en")
	cmd.Flags().BoolVar(&summary, "summary", false, "Print aggregate price figures instead of records")
	_ = cmd.MarkFlagRequired("year")
	flagAlias(cmd.Flags(), "year", "yr")
	flagAlias(cmd.Flags(), "pref", "prefecture")
	flagAlias(cmd.Flags(), "price-class", "pc")
	registerStaticCompletions(cmd, "lang", []string{"ja", "en"})
	registerStaticCompletions(cmd, "price-class", []string{"transactions", "contracts"})
	registerPrefectureCompletions(cmd, "pref")

	return cmd
}

func printPricesSummary(cmd *cobra.Command, records []api.TransactionPrice) error {
	summary := stats.Summarize(records)
	if isJSON(cmd) {
		return printJSON(cmd, summary)
	}

	w := newTabWriterFromCmd(cmd)
	_, _ = fmt.Fprintf(w, "Records\t%d\n", summary.Count)
	_, _ = fmt.Fprintf(w, "Priced\t%d\n", summary.Priced)
	if summary.Priced > 0 {
		_, _ = fmt.Fprintf(w, "Mean price\t%.0f\n", summary.MeanPrice)
		_, _ = fmt.Fprintf(w, "Median price\t%.0f\n", summary.MedianPrice)
		_, _ = fmt.Fprintf(w, "Min price\t%d\n", summary.MinPrice)
		_, _ = fmt.Fprintf(w, "Max price\t%d\n", summary.MaxPrice)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if len(summary.ByType) > 0 {
		w = newTabWriterFromCmd(cmd)
		_, _ = fmt.Fprintln(w, "\nTYPE\tCOUNT\tMEAN\tMEDIAN")
		for _, b := range summary.ByType {
			_, _ = fmt.Fprintf(w, "%s\t%d\t%.0f\t%.0f\n", b.Type, b.Count, b.MeanPrice, b.MedianPrice)
		}
		return w.Flush()
	}
	return nil
}

func newPricesPointsCmd() *cobra.Command {
	var (
		tf         tileFlags
		from       string
		to         string
		priceClass string
		landType   string
	)

	cmd := &cobra.Command{
		Use:     "points",
		Aliases: []string{"pt"},
		Short:   "Geocoded transaction prices by tile (zoom 11-15)",
		Example: `  reinfo prices points --from 2015Q1 --to 2015Q4 --tile 13/7312/3008
  reinfo prices points --from 20151 --to 20154 --lat 35.68 --lon 139.77 --z 13
  reinfo prices points --from 2020Q1 --to 2023Q4 --z 13 --x 7270:7273 --y 3222 --json`,
		Args: cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			start, end, err := cli.ParsePeriodRange(from, to)
			if err != nil {
				return err
			}
			opts := api.TransactionPointsOptions{
				From:         start.Code(),
				To:           end.Code(),
				LandTypeCode: landType,
			}
			if opts.PriceClassification, err = normalizePriceClass(priceClass); err != nil {
				return err
			}

			client, err := getClient()
			if err != nil {
				return err
			}
			return runFeatureFetch(cmd, &tf, "transaction-points", renderTransactionPoints,
				func(ctx context.Context, t api.Tile) ([]api.Feature[api.TransactionPoint], error) {
					return client.Prices().TransactionPoints(ctx, t, opts)
				})
		}),
	}

	addTileFlags(cmd, &tf)
	cmd.Flags().StringVar(&from, "from", "", "Period start, e.g. 2015Q1 or 20151 (required)")
	cmd.Flags().StringVar(&to, "to", "", "Period end, e.g. 2015Q4 or 20154 (required)")
	cmd.Flags().StringVar(&priceClass, "price-class", "", "Price category: transactions|contracts or 01|02")
	cmd.Flags().StringVar(&landType, "land-type", "", "Comma-separated 2-digit land type codes")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	flagAlias(cmd.Flags(), "price-class", "pc")
	flagAlias(cmd.Flags(), "land-type", "lt")

	return cmd
}

func renderTransactionPoints(cmd *cobra.Command, features []api.Feature[api.TransactionPoint]) error {
	w := newTabWriterFromCmd(cmd)
	_, _ = fmt.Fprintln(w, "PERIOD\tCITY\tDISTRICT\tPRICE\tAREA\tCONTENTS")
	for _, f := range features {
		p := f.Properties
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			p.PointInTime, p.CityName, p.DistrictName,
			p.TradePriceTotal, p.Area, p.TransactionContents)
	}
	return w.Flush()
}

func newPricesValuationsCmd() *cobra.Command {
	var (
		tf          tileFlags
		year        int
		priceClass  string
		useCategory string
	)

	cmd := &cobra.Command{
		Use:     "valuations",
		Aliases: []string{"val"},
		Short:   "Official land valuation points by tile (zoom 13-15)",
		Long:    "Land valuation points from 地価公示 and 都道府県地価調査 surveys",
		Example: `  reinfo prices valuations --year 2020 --tile 13/7312/3008
  reinfo prices valuations --year 2020 --lat 35.68 --lon 139.77 --z 13
  reinfo prices valuations --year 2020 --price-class 1 --z 13 --x 7270:7271 --y 3222`,
		Args: cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			opts := api.ValuationPointsOptions{
				Year:                year,
				PriceClassification: priceClass,
				UseCategoryCode:     useCategory,
			}

			client, err := getClient()
			if err != nil {
				return err
			}
			return runFeatureFetch(cmd, &tf, "valuation-points", renderValuationPoints,
				func(ctx context.Context, t api.Tile) ([]api.Feature[api.ValuationPoint], error) {
					return client.Prices().ValuationPoints(ctx, t, opts)
				})
		}),
	}

	addTileFlags(cmd, &tf)
	cmd.Flags().IntVar(&year, "year", 0, "Valuation year, 1970-2024 (required)")
	cmd.Flags().StringVar(&priceClass, "price-class", "", "Survey: 0 both, 1 地価公示, 2 都道府県地価調査")
	cmd.Flags().StringVar(&useCategory, "use-category", "", "Comma-separated 2-digit use category codes")
	_ = cmd.MarkFlagRequired("year")
	flagAlias(cmd.Flags(), "year", "yr")
	flagAlias(cmd.Flags(), "price-class", "pc")
	flagAlias(cmd.Flags(), "use-category", "uc")
	registerStaticCompletions(cmd, "price-class", []string{"0", "1", "2"})

	return cmd
}

func renderValuationPoints(cmd *cobra.Command, features []api.Feature[api.ValuationPoint]) error {
	w := newTabWriterFromCmd(cmd)
	_, _ = fmt.Fprintln(w, "LOT\tPLACE\tPRICE\tCHANGE\tSTATION")
	for _, f := range features {
		p := f.Properties
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%.1f%%\t%s\n",
			p.StandardLotNumber, p.PlaceName, p.CurrentPrice,
			p.YearOnYearChange.Float(), p.NearestStation)
	}
	return w.Flush()
}

// appraisal use divisions as the upstream documents them.
var appraisalDivisions = map[string]string{
	"residential": "00",
	"prospective": "03",
	"commercial":  "05",
	"forest":      "07",
}

func normalizeDivision(value string) (string, error) {
	value = strings.TrimSpace(value)
	if isAllDigits(value) && len(value) <= 2 {
		if len(value) == 1 {
			value = "0" + value
		}
		return value, nil
	}
	name, err := normalizeEnum("division", value, []string{"residential", "prospective", "commercial", "forest"})
	if err != nil {
		return "", err
	}
	return appraisalDivisions[name], nil
}

func newPricesAppraisalsCmd() *cobra.Command {
	var (
		year     int
		pref     string
		division string
	)

	cmd := &cobra.Command{
		Use:     "appraisals",
		Aliases: []string{"appraisal", "ap"},
		Short:   "Official land appraisal reports",
		Example: `  reinfo prices appraisals --year 2022 --pref tokyo
  reinfo prices appraisals --year 2022 --pref 27 --division commercial
  reinfo prices appraisals --year 2022 --pref 13 --division 00 --json`,
		Args: cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			area, err := resolve.PrefectureCode(pref)
			if err != nil {
				return err
			}
			div, err := normalizeDivision(division)
			if err != nil {
				return err
			}
			opts := api.AppraisalReportsOptions{Year: year, Area: area, Division: div}

			if done, err := maybeDryRun(cmd, &dryrun.Preview{
				Operation:   "GET",
				Resource:    "appraisal-reports",
				Description: "Fetch official land appraisal reports",
				Details:     map[string]any{"year": year, "area": area, "division": div},
			}); done {
				return err
			}

			client, err := getClient()
			if err != nil {
				return err
			}
			reports, err := client.Prices().AppraisalReports(cmdContext(cmd), opts)
			if err != nil {
				return err
			}

			if isJSON(cmd) {
				if isAgent(cmd) {
					return printJSON(cmd, reports)
				}
				return printJSON(cmd, map[string]any{"items": reports, "count": len(reports)})
			}

			if len(reports) == 0 {
				printIfNotQuiet(cmd, "No appraisal reports found.\n")
				return nil
			}
			w := newTabWriterFromCmd(cmd)
			_, _ = fmt.Fprintln(w, "DATE\tAREA\tADDRESS\tPRICE/m2\tCHANGE")
			for _, rep := range reports {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%.0f\t%.1f%%\n",
					rep.PriceDate, rep.StandardLotAreaName, rep.LotAddress,
					rep.PricePerSquareMeter.Float(), rep.ChangeRate.Float())
			}
			return w.Flush()
		}),
	}

	cmd.Flags().IntVar(&year, "year", 0, "Valuation year (required)")
	cmd.Flags().StringVar(&pref, "pref", "", "Prefecture code or name (required)")
	cmd.Flags().StringVar(&division, "division", "00", "Use division: residential|prospective|commercial|forest or 2-digit code")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("pref")
	flagAlias(cmd.Flags(), "year", "yr")
	flagAlias(cmd.Flags(), "pref", "prefecture")
	flagAlias(cmd.Flags(), "division", "div")
	registerStaticCompletions(cmd, "division", []string{"residential", "prospective", "commercial", "forest"})
	registerPrefectureCompletions(cmd, "pref")

	return cmd
}
