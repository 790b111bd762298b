package config

import (
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	Server        ServerConfig
	Logger        LoggerConfig
	Storage       StorageConfig
	License       LicenseConfig
	LicenseServer LicenseServerConfig
}

type ServerConfig struct {
	AppEnv   string
	GRPCAddr string
	NodeID   int64
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type StorageConfig struct {
	DataDir string
	DBFile  string
}

type LicenseConfig struct {
	ServerURL string
}

type LicenseServerConfig struct {
	Addr        string
	DBPath      string
	AdminAPIKey string
}

// DatabasePath is the location of the embedded database file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.DBFile)
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:   getEnv("APP_ENV", "production"),
			GRPCAddr: getEnv("GRPC_ADDR", "127.0.0.1:50551"),
			NodeID:   int64(getEnvInt("NODE_ID", 1)),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "info"),
			Encoding:          getEnv("LOGGER_ENCODING", "json"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Storage: StorageConfig{
			DataDir: getEnv("DATA_DIR", defaultDataDir()),
			DBFile:  getEnv("DB_FILE", "omnipos.db"),
		},
		License: LicenseConfig{
			ServerURL: getEnv("LICENSE_SERVER_URL", "http://localhost:3002"),
		},
		LicenseServer: LicenseServerConfig{
			Addr:        getEnv("LICENSE_SERVER_ADDR", ":3002"),
			DBPath:      getEnv("LICENSE_DB_PATH", "licenses.db"),
			AdminAPIKey: getEnv("LICENSE_ADMIN_API_KEY", ""),
		},
	}
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "data"
	}
	return filepath.Join(dir, "omnipos-desktop")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
