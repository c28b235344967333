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
	serverConfig struct {
		Host               string
		Addr               string
		JWTExpirationDelta time.Duration
	}

	// planConfig holds the study-plan policy values. They default to the
	// current LM Data Science rules but stay configurable since they change
	// with curriculum revisions.
	planConfig struct {
		CFUTarget         int
		SoftOverageMax    int
		StandardFreeCount int
		PSIFreeCount      int
	}

	coordinatorConfig struct {
		Name         string
		Email        string
		PasswordHash string // bcrypt; see `admin hashpassword`
	}

	relayConfig struct {
		URL     string
		APIKey  string
		Timeout time.Duration
	}

	Config struct {
		Debug            bool
		TestMode         bool
		Env              string
		Build            string
		AppName          string
		SecretKey        string
		WorkDir          string
		DefaultFromEmail mail.Address
		SendgridAPIKey   string
		RollbarToken     string

		Server      serverConfig
		Plan        planConfig
		Coordinator coordinatorConfig
		Relay       relayConfig
	}
)

var Conf *Config

func init() {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("debug", true)
	v.SetDefault("appName", "StudyPlan")
	v.SetDefault("secretKey", "x1dr=j&0y(q5mn+$2#)wgz8@u7_e4s%bvl9c!ahk36tfpo")
	v.SetDefault("defaultFromEmail", "noreply@localhost")
	v.SetDefault("serverHost", "localhost")
	v.SetDefault("serverAddr", ":8000")
	v.SetDefault("jwtExpirationDelta", 4*time.Hour)
	v.SetDefault("cfuTarget", 60)
	v.SetDefault("softOverageMax", 6)
	v.SetDefault("standardFreeCount", 2)
	v.SetDefault("psiFreeCount", 3)
	v.SetDefault("coordinatorName", "Course Coordinator")
	v.SetDefault("coordinatorEmail", "")
	v.SetDefault("coordinatorPasswordHash", "")
	v.SetDefault("relayURL", "")
	v.SetDefault("relayAPIKey", "")
	v.SetDefault("relayTimeout", 30*time.Second)
	v.SetDefault("sendgridAPIKey", "")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("build", "dev")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
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

	Conf = &Config{
		Debug:     v.GetBool("debug"),
		TestMode:  v.GetBool("testMode"),
		Env:       env,
		Build:     v.GetString("build"),
		AppName:   v.GetString("appName"),
		SecretKey: v.GetString("secretKey"),
		WorkDir:   wd,
		DefaultFromEmail: mail.Address{
			Name:    v.GetString("appName"),
			Address: v.GetString("defaultFromEmail"),
		},
		SendgridAPIKey: v.GetString("sendgridAPIKey"),
		RollbarToken:   v.GetString("rollbarToken"),
		Server: serverConfig{
			Host:               v.GetString("serverHost"),
			Addr:               v.GetString("serverAddr"),
			JWTExpirationDelta: v.GetDuration("jwtExpirationDelta"),
		},
		Plan: planConfig{
			CFUTarget:         v.GetInt("cfuTarget"),
			SoftOverageMax:    v.GetInt("softOverageMax"),
			StandardFreeCount: v.GetInt("standardFreeCount"),
			PSIFreeCount:      v.GetInt("psiFreeCount"),
		},
		Coordinator: coordinatorConfig{
			Name:         v.GetString("coordinatorName"),
			Email:        v.GetString("coordinatorEmail"),
			PasswordHash: v.GetString("coordinatorPasswordHash"),
		},
		Relay: relayConfig{
			URL:     v.GetString("relayURL"),
			APIKey:  v.GetString("relayAPIKey"),
			Timeout: v.GetDuration("relayTimeout"),
		},
	}
}
