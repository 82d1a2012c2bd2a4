package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cortado-sim/desim/desim"
	"github.com/cortado-sim/desim/examples"
)

var (
	logLevel string
	until    float64

	scenarioFile string
)

var rootCmd = &cobra.Command{
	Use:   "desim-demo",
	Short: "Runs the bundled desim example programs",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; desim-demo has nothing secret to load from it
		// today, but the hook is here for every binary regardless of
		// whether it's needed yet.
		_ = godotenv.Load()

		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)

		return nil
	},
}

var clocksCmd = &cobra.Command{
	Use:   "clocks",
	Short: "Run the clocks demo: two independent timers printing at different rates",
	RunE: func(cmd *cobra.Command, args []string) error {
		return examples.Clocks(logrus.StandardLogger(), desim.VTime(until))
	},
}

var pingPongCmd = &cobra.Command{
	Use:   "pingpong",
	Short: "Run the ping-pong demo: two actors handing control back and forth",
	RunE: func(cmd *cobra.Command, args []string) error {
		return examples.PingPong(logrus.StandardLogger(), desim.VTime(until), 1, 2)
	},
}

// bankScenario is the shape a --scenario YAML file is parsed into, overriding
// fields of examples.DefaultBankParams that are present.
type bankScenario struct {
	Counters            *uint64  `yaml:"counters"`
	Customers           *int     `yaml:"customers"`
	MeanArrivalInterval *float64 `yaml:"mean_arrival_interval"`
	MaxWaitTime         *float64 `yaml:"max_wait_time"`
	MeanServiceTime     *float64 `yaml:"mean_service_time"`
}

func loadBankParams() (examples.BankParams, error) {
	p := examples.DefaultBankParams()

	if scenarioFile == "" {
		return p, nil
	}

	data, err := os.ReadFile(scenarioFile)
	if err != nil {
		return p, err
	}

	var sc bankScenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return p, err
	}

	if sc.Counters != nil {
		p.Counters = *sc.Counters
	}
	if sc.Customers != nil {
		p.Customers = *sc.Customers
	}
	if sc.MeanArrivalInterval != nil {
		p.MeanArrivalInterval = *sc.MeanArrivalInterval
	}
	if sc.MaxWaitTime != nil {
		p.MaxWaitTime = desim.VTime(*sc.MaxWaitTime)
	}
	if sc.MeanServiceTime != nil {
		p.MeanServiceTime = *sc.MeanServiceTime
	}

	return p, nil
}

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Run the bank demo: customers queueing for a limited number of tellers",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadBankParams()
		if err != nil {
			return err
		}

		return examples.Bank(logrus.StandardLogger(), p)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "log level (trace, debug, info, warn, error, fatal, panic)")

	clocksCmd.Flags().Float64Var(&until, "until", 5, "simulated time to run until")
	pingPongCmd.Flags().Float64Var(&until, "until", 8, "simulated time to run until")
	bankCmd.Flags().StringVar(&scenarioFile, "scenario", "", "YAML file overriding the bank demo's parameters")

	rootCmd.AddCommand(clocksCmd, pingPongCmd, bankCmd)
}

// Execute runs the desim-demo CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
