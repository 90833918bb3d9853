package config

import (
	"fmt"
	"os"
)

const (
	portEnvVar = "PORT"
	appNameVar = "APP_NAME"
	dbURIVar   = "MONGODB_URI"
	dbUserVar  = "DB_USER"
	dbPassVar  = "DB_PASS"
	dbNameVar  = "DB_NAME"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, "5000")
	if port[0] != ':' {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Task Server")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

// GetDatabaseURI returns the MongoDB connection string. MONGODB_URI wins when
// set; otherwise the URI is assembled from DB_USER/DB_PASS the way the hosted
// cluster expects it.
func (EnvVars) GetDatabaseURI() string {
	if uri := os.Getenv(dbURIVar); uri != "" {
		return uri
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@cluster0.x5y82lv.mongodb.net/?retryWrites=true&w=majority",
		os.Getenv(dbUserVar), os.Getenv(dbPassVar))
}

func (EnvVars) GetDatabaseName() string {
	return GetEnv(dbNameVar, "taskDB")
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
