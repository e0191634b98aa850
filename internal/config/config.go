package config

import (
	"os"
	"strconv"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string
	HTTPPort         string
	OperatorWorkers  int
	RecurringCron    string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		HTTPPort:         "9446",
		OperatorWorkers:  4,
		RecurringCron:    "0 0 * * *",
	}

	envPostgresAddress := os.Getenv("POSTGRES_ADDRESS")
	envPostgresPort := os.Getenv("POSTGRES_PORT")
	envPostgresDB := os.Getenv("POSTGRES_DB")
	envPostgresUsername := os.Getenv("POSTGRES_USERNAME")
	envPostgresPassword := os.Getenv("POSTGRES_PASSWORD")
	envHTTPPort := os.Getenv("HTTP_PORT")
	envOperatorWorkers := os.Getenv("OPERATOR_WORKERS")
	envRecurringCron := os.Getenv("RECURRING_CRON")

	if len(envPostgresAddress) != 0 {
		env.PostgresAddress = envPostgresAddress
	}

	if len(envPostgresPort) != 0 {
		env.PostgresPort = envPostgresPort
	}

	if len(envPostgresDB) != 0 {
		env.PostgresDB = envPostgresDB
	}

	if len(envPostgresUsername) != 0 {
		env.PostgresUsername = envPostgresUsername
	}

	if len(envPostgresPassword) != 0 {
		env.PostgresPassword = envPostgresPassword
	}

	if len(envHTTPPort) != 0 {
		env.HTTPPort = envHTTPPort
	}

	if len(envOperatorWorkers) != 0 {
		workers, err := strconv.Atoi(envOperatorWorkers)
		if err != nil {
			return nil, err
		}
		env.OperatorWorkers = workers
	}

	if len(envRecurringCron) != 0 {
		env.RecurringCron = envRecurringCron
	}

	return &env, nil
}
