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

type Config struct {
	Debug       bool
	TestMode    bool
	Env         string // DEV (local; default), TEST, QA, PROD
	AppName     string
	Build       string
	StoragePath string

	API struct {
		BaseURL string
		Timeout time.Duration
	}

	Server struct {
		Host               string
		Port               int
		SecretKey          []byte
		JWTExpirationDelta time.Duration
		RollbarToken       string
	}
}

// NewConfig loads the app configuration from the environment,
// optionally seeded from `config/.env.<env>` if it exists.
func NewConfig() *Config {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("debug", true)
	v.SetDefault("appName", "CourseEventPortal")
	v.SetDefault("build", "dev")
	v.SetDefault("storagePath", filepath.Join(homeDir(), ".course-event-portal", "state.db"))
	v.SetDefault("apiBaseUrl", "https://university-lp-backend.vercel.app/api")
	v.SetDefault("apiTimeout", 30*time.Second)
	v.SetDefault("serverHost", "localhost")
	v.SetDefault("serverPort", 8000)
	v.SetDefault("secretKey", "t3q$=7#2ap&b!yx)dkw^vz5(u+0mc9@hs4_ngf6r8jle1io*")
	v.SetDefault("jwtExpirationDelta", 7*24*time.Hour)

	env := os.Getenv("ENV")
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	conf := &Config{
		Debug:       v.GetBool("debug"),
		TestMode:    v.GetBool("testMode"),
		Env:         env,
		AppName:     v.GetString("appName"),
		Build:       v.GetString("build"),
		StoragePath: v.GetString("storagePath"),
	}
	conf.API.BaseURL = strings.TrimRight(v.GetString("apiBaseUrl"), "/")
	conf.API.Timeout = v.GetDuration("apiTimeout")
	conf.Server.Host = v.GetString("serverHost")
	conf.Server.Port = v.GetInt("serverPort")
	conf.Server.SecretKey = []byte(v.GetString("secretKey"))
	conf.Server.JWTExpirationDelta = v.GetDuration("jwtExpirationDelta")
	conf.Server.RollbarToken = v.GetString("rollbarToken")
	return conf
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
