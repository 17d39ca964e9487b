// Package main provides the devconsole CLI application entry point.
// devconsole is an embeddable developer console with a typed command
// grammar; this binary hosts it in a terminal window.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"devconsole/internal/commands/builtin"
	"devconsole/internal/config"
	"devconsole/internal/console"
	"devconsole/internal/logger"
	"devconsole/internal/tui"
	"devconsole/internal/version"
)

var (
	cfgFile  string
	logLevel string
	logFile  string
	testMode bool
)

// rootCmd starts the interactive console when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "devconsole",
	Short: "devconsole - an embeddable developer console",
	Long: `devconsole hosts an interactive command console with a typed argument
grammar: commands are registered with schemas, input lines are parsed into
typed literals and bound to each command's arguments before dispatch.`,
	Run: runConsole,
}

// evalCmd runs input lines non-interactively and prints the transcript.
var evalCmd = &cobra.Command{
	Use:   "eval <line>...",
	Short: "Evaluate console lines non-interactively",
	Long: `Evaluate one or more console lines without entering the interactive
window and print the resulting transcript to stdout. Useful for scripting
and for smoke-testing registered commands.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runEval,
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		info, err := version.GetInfo()
		if err != nil {
			fmt.Printf("devconsole v%s\n", version.GetVersion())
			return
		}
		fmt.Println(info.String())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./devconsole.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&testMode, "test-mode", false, "Run in deterministic test mode")

	if err := viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-level flag: %v\n", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-file flag: %v\n", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("test_mode", rootCmd.PersistentFlags().Lookup("test-mode")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding test-mode flag: %v\n", err)
		os.Exit(1)
	}

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initLogger)
}

func initLogger() {
	if err := logger.Configure(logLevel, logFile, testMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

// newConsole builds a session with the built-in command set registered.
func newConsole(cfg *config.Config) *console.Console {
	c := console.New(console.Options{HistorySize: cfg.HistorySize})
	c.AddCommand(builtin.Clear(c))
	c.AddCommand(builtin.Exit(c))
	c.AddCommand(builtin.Help(c))
	c.AddCommand(builtin.Log())
	return c
}

func loadConfig() *config.Config {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}
	return cfg
}

func runConsole(_ *cobra.Command, _ []string) {
	logger.Info("Starting devconsole", "version", version.GetVersion())

	cfg := loadConfig()
	c := newConsole(cfg)
	logger.Info("Console session ready", "session", c.ID(), "commands", c.Registry().Len())

	if err := tui.Run(c, cfg); err != nil {
		logger.Fatal("Console terminated abnormally", "error", err)
	}
}

func runEval(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	c := newConsole(cfg)

	for _, line := range args {
		c.SetBuffer(line)
		c.Submit()
		c.Tick()
		if c.QuitRequested() {
			break
		}
	}

	for _, line := range c.Scrollback() {
		fmt.Println(line)
	}
}
