package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"adhd-task-assistant/config"
	"adhd-task-assistant/internal/app"
	"adhd-task-assistant/internal/model"
	"adhd-task-assistant/pkg/log"
)

var rootCmd = &cobra.Command{
	Use:   "adhd",
	Short: "ADHD task assistant CLI",
	Long: `Capture tasks in plain language and get a short, ranked list of what to do next.
- say: run an utterance through the assistant ("remind me to call mom tomorrow").
- classify: show how an utterance is understood without changing anything.
- tasks: list open tasks in a view (prioritized, optimal, quick, hyperfocus).
- show / status: inspect one task or change its status.`,
	SilenceUsage: true,
}

func main() {
	cobra.OnInitialize(initConfig)
	addPersistentFlags()
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	if path := viper.GetString("config"); path != "" {
		viper.SetConfigFile(path)
	}
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().String("config", "", "config file (default ./config/config.yaml)")
	rootCmd.PersistentFlags().Bool("json", false, "output JSON")
	rootCmd.PersistentFlags().String("user", "local", "user id the commands run as")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable logging")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("user", rootCmd.PersistentFlags().Lookup("user"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func registerCommands() {
	rootCmd.AddCommand(sayCmd())
	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(tasksCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(statusCmd())
	rootCmd.AddCommand(calendarAuthCmd())
}

// withApp loads configuration, builds the assistant and closes it after fn.
func withApp(ctx context.Context, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	l := log.NewNop()
	if viper.GetBool("verbose") {
		l = log.Init(log.ZapConfig{
			Level:    cfg.Logger.Level,
			Mode:     cfg.Logger.Mode,
			Encoding: cfg.Logger.Encoding,
		})
	}

	a, err := app.New(ctx, cfg, l)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}

func scope() model.Scope {
	user := viper.GetString("user")
	return model.Scope{UserID: user, Username: user}
}

func utteranceArg(args []string) string {
	return strings.Join(args, " ")
}
