package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	// Config holds the app settings. Defaults can be overridden with
	// `<ENV>_`-prefixed environment variables or a config/.env.<env> file.
	Config struct {
		Debug     bool
		TestMode  bool
		Env       string // DEV (local; default), TEST, QA, PROD
		Build     string
		AppName   string
		SecretKey string
		WorkDir   string

		FromEmail      string
		SendgridApiKey string
		RollbarToken   string

		Server ServerConfig
		Remote RemoteConfig

		SearchDebounceDelay time.Duration
	}

	ServerConfig struct {
		Host               string
		Address            string
		ShutdownTimeout    time.Duration
		JWTExpirationDelta time.Duration
	}

	// RemoteConfig points at the record-keeping API that owns all storage.
	RemoteConfig struct {
		AbsencesURL string
		TeachersURL string
		SubjectsURL string
		Timeout     time.Duration
	}
)

var Conf *Config

func init() {
	Conf = loadConfig()
}

func loadConfig() *Config {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("debug", true)
	v.SetDefault("build", "dev")
	v.SetDefault("appName", "Ciriaqui")
	v.SetDefault("secretKey", "n0q2-yth)rdb$+81=kz&vpxj5(j!c)#*f5(#wg7k^$dfhm9enw")
	v.SetDefault("fromEmail", "noreply@localhost")
	v.SetDefault("sendgridApiKey", "")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("serverHost", "localhost")
	v.SetDefault("serverAddress", ":3000")
	v.SetDefault("serverShutdownTimeout", 5*time.Second)
	v.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	v.SetDefault("remoteAbsencesUrl", "http://localhost:8080/ciriaqui/api/lacks")
	v.SetDefault("remoteTeachersUrl", "http://localhost:8080/ciriaqui/api/teachers")
	v.SetDefault("remoteSubjectsUrl", "http://localhost:8080/ciriaqui/api/subjects")
	v.SetDefault("remoteTimeout", 30*time.Second)
	v.SetDefault("searchDebounceDelay", 500*time.Millisecond)

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	var testMode bool
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		testMode = true
	}
	v.SetEnvPrefix(env)

	wd := Getwd()

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	return &Config{
		Debug:          v.GetBool("debug"),
		TestMode:       testMode,
		Env:            env,
		Build:          v.GetString("build"),
		AppName:        v.GetString("appName"),
		SecretKey:      v.GetString("secretKey"),
		WorkDir:        wd,
		FromEmail:      v.GetString("fromEmail"),
		SendgridApiKey: v.GetString("sendgridApiKey"),
		RollbarToken:   v.GetString("rollbarToken"),
		Server: ServerConfig{
			Host:               v.GetString("serverHost"),
			Address:            v.GetString("serverAddress"),
			ShutdownTimeout:    v.GetDuration("serverShutdownTimeout"),
			JWTExpirationDelta: v.GetDuration("jwtExpirationDelta"),
		},
		Remote: RemoteConfig{
			AbsencesURL: v.GetString("remoteAbsencesUrl"),
			TeachersURL: v.GetString("remoteTeachersUrl"),
			SubjectsURL: v.GetString("remoteSubjectsUrl"),
			Timeout:     v.GetDuration("remoteTimeout"),
		},
		SearchDebounceDelay: v.GetDuration("searchDebounceDelay"),
	}
}

// DefaultFromEmail is the sender address used for app emails.
func (c *Config) DefaultFromEmail() mail.Address {
	return mail.Address{Name: c.AppName, Address: c.FromEmail}
}
