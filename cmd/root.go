package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.2.0"
)

var rootCmd = &cobra.Command{
	Use:   "fixgen",
	Short: "Generate consistent CSV fixture datasets for demo pipelines",
	Long: `
fixgen synthesizes bounded fixture datasets for the example pipelines:
customers, employees, documents and embeddings for the RAG volume pipeline,
and users, activity, model metadata and predictions for the ML pipeline.

Downstream tables reference identifiers generated by upstream tables, so
every foreign key in the output resolves to a real row.`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("fixgen version %s\n", Version)
			os.Exit(0)
		}
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./fixgen.config.json)")
	rootCmd.PersistentFlags().Int64("seed", 0, "random seed (0 = time-based)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("fixgen.config")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		// config file is optional; defaults cover everything
	}
}

// newRand builds the generator RNG. The --seed flag wins over the config
// seed; 0 keeps the original behavior, varying output run to run.
func newRand(cmd *cobra.Command, cfgSeed int64) *rand.Rand {
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = cfgSeed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func done(msg string) {
	fmt.Println()
	color.Green("✅ %s", msg)
}
