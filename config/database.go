package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB is the shared connection handle, set once by ConnectDB at startup.
var DB *gorm.DB

func LoadEnv() {
	_ = godotenv.Load()
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Params   string
}

func LoadDatabaseConfig() DatabaseConfig {
	LoadEnv()

	cfg := DatabaseConfig{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASS"),
		Name:     os.Getenv("DB_NAME"),
		Params:   os.Getenv("DB_PARAMS"),
	}
	if cfg.Params == "" {
		// parseTime is required for GORM's time.Time scanning.
		cfg.Params = "charset=utf8mb4&parseTime=true&loc=Local"
	}
	return cfg
}

// DSN renders the MySQL connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", c.User, c.Password, c.Host, c.Port, c.Name, c.Params)
}

// ConnectDB opens the MySQL connection and stores the shared handle. A
// connection failure at startup is fatal; config.Validate has already checked
// that the coordinates are present.
func ConnectDB() *gorm.DB {
	cfg := LoadDatabaseConfig()

	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database %q: %v", cfg.Name, err)
	}

	DB = db
	log.Printf("connected to database %q", cfg.Name)
	return DB
}
