package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Laddition       Laddition       `mapstructure:",squash"`
	Sowprog         Sowprog         `mapstructure:",squash"`
	ImageCharts     ImageCharts     `mapstructure:",squash"`
	Venue           Venue           `mapstructure:",squash"`
	ShiftIngestSync ShiftIngestSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Laddition porte les identifiants de l'API caisse L'Addition.
type Laddition struct {
	URL        string `mapstructure:"laddition_url"`
	AuthToken  string `mapstructure:"laddition_authorization_token"`
	CustomerID string `mapstructure:"laddition_customer_id"`
}

// Sowprog porte les identifiants de l'agenda SowProg (authentification basique).
type Sowprog struct {
	URL      string `mapstructure:"sowprog_url"`
	Email    string `mapstructure:"sowprog_email_credential"`
	Password string `mapstructure:"sowprog_password"`
}

type ImageCharts struct {
	URL string `mapstructure:"image_charts_url"`
}

// Venue décrit l'établissement : nom de l'enseigne et bornes horaires d'un
// service (ouverture le jour J, fermeture le lendemain matin).
type Venue struct {
	Company          string `mapstructure:"venue_company"`
	ShiftOpeningTime string `mapstructure:"venue_shift_opening_time"`
	ShiftClosingTime string `mapstructure:"venue_shift_closing_time"`
}

type ShiftIngestSync struct {
	CronSchedule string `mapstructure:"shift_ingest_sync_cron"`
	LookbackDays int    `mapstructure:"shift_ingest_sync_lookback_days"`
	Enabled      bool   `mapstructure:"shift_ingest_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/cultplace")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("LADDITION_URL", "https://api.laddition.com")
	viper.SetDefault("LADDITION_AUTHORIZATION_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("LADDITION_CUSTOMER_ID", "your_customer_id")

	viper.SetDefault("SOWPROG_URL", "https://agenda.sowprog.com/rest/v1_2")
	viper.SetDefault("SOWPROG_EMAIL_CREDENTIAL", "your_email")
	viper.SetDefault("SOWPROG_PASSWORD", "your_password")

	viper.SetDefault("IMAGE_CHARTS_URL", "https://image-charts.com/chart")

	viper.SetDefault("VENUE_COMPANY", "La Petite Halle")
	viper.SetDefault("VENUE_SHIFT_OPENING_TIME", "15:00:00") // ouverture du service
	viper.SetDefault("VENUE_SHIFT_CLOSING_TIME", "06:00:00") // fermeture, le lendemain

	viper.SetDefault("SHIFT_INGEST_SYNC_CRON", "0 7 * * *") // tous les jours à 7h, après la fermeture
	viper.SetDefault("SHIFT_INGEST_SYNC_LOOKBACK_DAYS", 1)
	viper.SetDefault("SHIFT_INGEST_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Charger d'abord le fichier .env via godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Variables chargées par godotenv (viper n'a pas pu lire .env) :", err)
	} else {
		logrus.Info("Fichier .env lu par viper avec succès")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile tente de charger le fichier .env depuis les emplacements connus
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Impossible d'obtenir le répertoire courant :", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Fichier .env chargé depuis :", location)
			return
		}
	}

	logrus.Warn("Aucun fichier .env trouvé, utilisation des variables d'environnement")
}
