package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	// MemoryPath as DB_PATH keeps the SQLite store in memory for the life of
	// the process.
	MemoryPath = ":memory:"
)

type Config struct {
	Port string

	DBDriver       string
	DBPath         string
	DBHost         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBPort         string
	DBSSLMode      string
	DBMaxOpenConns int

	SeedDir     string
	StaticDir   string
	CORSOrigins []string
	LogLevel    string
}

func get(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	v := get(k, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		log.Printf("config: ignoring invalid %s=%q, using %d", k, v, def)
		return def
	}
	return n
}

// Load reads the environment, after merging in a .env file from the working
// directory when one exists. Variables already set in the environment win.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env not loaded: %v", err)
	}

	return &Config{
		Port: get("PORT", "5050"),

		DBDriver:       strings.ToLower(get("DB_DRIVER", DriverSQLite)),
		DBPath:         get("DB_PATH", "students.db"),
		DBHost:         get("DB_HOST", "localhost"),
		DBUser:         get("DB_USER", "postgres"),
		DBPassword:     get("DB_PASSWORD", ""),
		DBName:         get("DB_NAME", "students"),
		DBPort:         get("DB_PORT", "5432"),
		DBSSLMode:      get("DB_SSLMODE", "disable"),
		DBMaxOpenConns: getInt("DB_MAX_OPEN_CONNS", 10),

		SeedDir:     get("SEED_DIR", ""),
		StaticDir:   get("STATIC_DIR", ""),
		CORSOrigins: splitList(get("CORS_ORIGINS", "*")),
		LogLevel:    strings.ToLower(get("LOG_LEVEL", "warn")),
	}
}

// PostgresDSN builds the key/value DSN understood by pgx.
func (c *Config) PostgresDSN() string {
	dsn := "host=" + c.DBHost + " user=" + c.DBUser + " dbname=" + c.DBName + " port=" + c.DBPort + " sslmode=" + c.DBSSLMode
	if c.DBPassword != "" {
		dsn += " password=" + c.DBPassword
	}
	return dsn
}

// SQLiteDSN points at the database file with foreign key enforcement on.
func (c *Config) SQLiteDSN() string {
	return c.DBPath + "?_foreign_keys=on"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
