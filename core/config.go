package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Env      string
		Debug    bool
		TestMode bool
		AppName  string
		Build    string

		RollbarToken string

		Server ServerConfig
		Demo   DemoConfig
	}

	ServerConfig struct {
		Host            string
		Addr            string
		DebugHost       string
		ShutdownTimeout time.Duration
	}

	// DemoConfig holds the defaults used when a generation request omits a field,
	// and when main/admin seed a dataset on their own.
	DemoConfig struct {
		SeedOnBoot      bool
		StudentCount    int
		PeriodDays      int
		Pattern         string
		SeasonalEffects bool
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Kokoro")
	v.SetDefault("build", "develop")
	v.SetDefault("serverHost", "localhost")
	v.SetDefault("serverAddr", ":8000")
	v.SetDefault("serverDebugHost", "localhost:4000")
	v.SetDefault("serverShutdownTimeout", 5*time.Second)
	v.SetDefault("rollbarToken", "")
	v.SetDefault("demoSeedOnBoot", true)
	v.SetDefault("demoStudentCount", 30)
	v.SetDefault("demoPeriodDays", 30)
	v.SetDefault("demoPattern", "normal")
	v.SetDefault("demoSeasonalEffects", true)

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	var testMode bool
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		testMode = true
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	return &Config{
		Env:          env,
		Debug:        v.GetBool("debug"),
		TestMode:     testMode,
		AppName:      v.GetString("appName"),
		Build:        v.GetString("build"),
		RollbarToken: v.GetString("rollbarToken"),
		Server: ServerConfig{
			Host:            v.GetString("serverHost"),
			Addr:            v.GetString("serverAddr"),
			DebugHost:       v.GetString("serverDebugHost"),
			ShutdownTimeout: v.GetDuration("serverShutdownTimeout"),
		},
		Demo: DemoConfig{
			SeedOnBoot:      v.GetBool("demoSeedOnBoot"),
			StudentCount:    v.GetInt("demoStudentCount"),
			PeriodDays:      v.GetInt("demoPeriodDays"),
			Pattern:         v.GetString("demoPattern"),
			SeasonalEffects: v.GetBool("demoSeasonalEffects"),
		},
	}
}
