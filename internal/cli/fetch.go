package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/filedrift/renamekit/internal/config"
	"github.com/filedrift/renamekit/internal/fetch"
	"github.com/filedrift/renamekit/internal/logging"
)

// coinPause is the courtesy delay between requests to the public CoinGecko
// API, which rate-limits aggressively.
const coinPause = time.Second

// fetchOpts holds the flags shared by every fetch subcommand.
type fetchOpts struct {
	export    string
	output    string
	colorMode string
	verbose   bool
}

// addFetchFlags registers the shared export and display flags.
func addFetchFlags(cmd *cobra.Command, opts *fetchOpts) {
	f := cmd.Flags()
	f.StringVar(&opts.export, "export", "", "export fetched data: json or csv")
	f.StringVarP(&opts.output, "output", "o", "", "export file path (default: <command>_data_<timestamp>.<format>)")
	f.StringVar(&opts.colorMode, "color", string(config.ColorAuto), "color output: auto, always or never")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug output")
}

// fetchLogger validates the display flags and builds a logger for a fetch
// subcommand.
func fetchLogger(opts *fetchOpts) (*logging.Logger, error) {
	mode, err := config.ParseColorMode(opts.colorMode)
	if err != nil {
		return nil, err
	}
	if opts.export != "" && opts.export != "json" && opts.export != "csv" {
		return nil, fmt.Errorf("invalid export format %q (use 'json' or 'csv')", opts.export)
	}
	cfg := config.Config{ColorMode: mode, Verbose: opts.verbose}
	return logging.NewLogger(&cfg)
}

// exportData writes the fetched records to disk when --export was given.
// v is the JSON shape; records the CSV shape of the same data.
func exportData(log *logging.Logger, opts *fetchOpts, command string, v interface{}, records []fetch.CSVRecord) error {
	if opts.export == "" {
		return nil
	}
	path := opts.output
	if path == "" {
		path = fetch.DefaultOutputName(command, opts.export, time.Now())
	}

	var err error
	switch opts.export {
	case "json":
		err = fetch.ExportJSON(path, v)
	case "csv":
		err = fetch.ExportCSV(path, records)
	}
	if err != nil {
		return err
	}
	log.Success("Data exported to %s", path)
	return nil
}

// FetchCmd returns the fetch command group: small API consumers with JSON/CSV
// export.
func FetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch data from public APIs",
		Long: `Fetch data from public JSON APIs and optionally export it as JSON or CSV.

Examples:
  renamekit fetch github golang --max 5
  renamekit fetch weather London --export json
  renamekit fetch crypto bitcoin ethereum --export csv -o prices.csv`,
	}
	cmd.AddCommand(fetchGitHubCmd())
	cmd.AddCommand(fetchWeatherCmd())
	cmd.AddCommand(fetchCryptoCmd())
	return cmd
}

func fetchGitHubCmd() *cobra.Command {
	var opts fetchOpts
	var max int

	cmd := &cobra.Command{
		Use:   "github <user>",
		Short: "Fetch a user's public repositories from the GitHub API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := fetchLogger(&opts)
			if err != nil {
				return err
			}
			defer log.Close()

			user := args[0]
			log.Info("Fetching repositories for %s", user)

			client := fetch.NewClient(fetch.GitHubBaseURL, nil)
			repos, err := fetch.GitHubRepos(cmd.Context(), client, user, max)
			if err != nil {
				return err
			}
			if len(repos) == 0 {
				return fmt.Errorf("no repositories found for %q", user)
			}
			log.Success("Fetched %d repositories", len(repos))

			for _, r := range repos {
				log.Info("%s (%s) ★%d: %s", r.Name, r.Language, r.Stars, r.Description)
			}

			records := make([]fetch.CSVRecord, len(repos))
			for i, r := range repos {
				records[i] = r
			}
			return exportData(log, &opts, "github", repos, records)
		},
	}
	cmd.Flags().IntVar(&max, "max", 10, "maximum repositories to fetch")
	addFetchFlags(cmd, &opts)
	return cmd
}

func fetchWeatherCmd() *cobra.Command {
	var opts fetchOpts
	var apiKey string

	cmd := &cobra.Command{
		Use:   "weather <city>",
		Short: "Fetch current weather from the OpenWeatherMap API",
		Long: `Fetch the current weather for a city in metric units.

An OpenWeatherMap API key is required (--api-key or OPENWEATHER_API_KEY).
Without one, fixed demonstration data is shown instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := fetchLogger(&opts)
			if err != nil {
				return err
			}
			defer log.Close()

			city := args[0]
			if apiKey == "" {
				apiKey = os.Getenv("OPENWEATHER_API_KEY")
			}

			var w fetch.Weather
			if apiKey == "" {
				log.Warn("No API key set, using demo data (set OPENWEATHER_API_KEY for live data)")
				w = fetch.DemoWeather(city, time.Now())
			} else {
				log.Info("Fetching weather for %s", city)
				client := fetch.NewClient(fetch.WeatherBaseURL, nil)
				w, err = fetch.CurrentWeather(cmd.Context(), client, city, apiKey)
				if err != nil {
					return err
				}
			}

			log.Success("Weather for %s", w.City)
			log.Info("Temperature: %.1f°C (feels like %.1f°C)", w.Temperature, w.FeelsLike)
			log.Info("Conditions: %s", w.Description)
			log.Info("Humidity: %d%%, wind %.1f m/s", w.Humidity, w.WindSpeed)

			return exportData(log, &opts, "weather", w, []fetch.CSVRecord{w})
		},
	}
	cmd.Flags().StringVar(&apiKey, "api-key", "", "OpenWeatherMap API key")
	addFetchFlags(cmd, &opts)
	return cmd
}

func fetchCryptoCmd() *cobra.Command {
	var opts fetchOpts

	cmd := &cobra.Command{
		Use:   "crypto <coin>...",
		Short: "Fetch cryptocurrency prices from the CoinGecko API",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := fetchLogger(&opts)
			if err != nil {
				return err
			}
			defer log.Close()

			client := fetch.NewClient(fetch.CryptoBaseURL, nil)

			var prices []fetch.CoinPrice
			for i, id := range args {
				if i > 0 {
					// Pause between coins; the public API rate-limits.
					select {
					case <-time.After(coinPause):
					case <-cmd.Context().Done():
						return cmd.Context().Err()
					}
				}

				log.Info("Fetching price for %s", id)
				p, err := fetch.FetchCoinPrice(cmd.Context(), client, id)
				if err != nil {
					log.Warn("Skipping %s: %v", id, err)
					continue
				}
				log.Success("%s (%s): $%.2f (24h: %+.2f%%)", p.Name, p.Symbol, p.PriceUSD, p.Change24h)
				prices = append(prices, p)
			}

			if len(prices) == 0 {
				return errors.New("no price data fetched")
			}

			records := make([]fetch.CSVRecord, len(prices))
			for i, p := range prices {
				records[i] = p
			}
			return exportData(log, &opts, "crypto", prices, records)
		},
	}
	addFetchFlags(cmd, &opts)
	return cmd
}
