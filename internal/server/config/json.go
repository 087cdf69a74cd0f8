package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/railticket/internal/flagx"
	"github.com/dmitrijs2005/railticket/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "15m" and integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC  string         `json:"endpoint_addr_grpc"`
	MetricsAddr       string         `json:"metrics_addr"`
	DatabaseDSN       string         `json:"database_dsn"`
	S3RootUser        string         `json:"s3_root_user"`
	S3RootPassword    string         `json:"s3_root_password"`
	S3Bucket          string         `json:"s3_bucket"`
	S3Region          string         `json:"s3_region"`
	S3BaseEndpoint    string         `json:"s3_base_endpoint"`
	PresignExpiry     timex.Duration `json:"presign_expiry"`
	SignInRate        float64        `json:"sign_in_rate"`
	SignInBurst       int            `json:"sign_in_burst"`
	Argon2MemoryKiB   uint32         `json:"argon2_memory_kib"`
	Argon2Iterations  uint32         `json:"argon2_iterations"`
	Argon2Parallelism uint8          `json:"argon2_parallelism"`
	LogLevel          string         `json:"log_level"`
}

// parseJson loads configuration values from the JSON file named by the -c or
// -config flag. Keys that are missing or zero leave cfg untouched. If the
// file cannot be read or contains invalid JSON, the function panics.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var c JsonConfig

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(file, &c); err != nil {
		panic(err)
	}

	setString := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setString(&cfg.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&cfg.MetricsAddr, c.MetricsAddr)
	setString(&cfg.DatabaseDSN, c.DatabaseDSN)
	setString(&cfg.S3RootUser, c.S3RootUser)
	setString(&cfg.S3RootPassword, c.S3RootPassword)
	setString(&cfg.S3Bucket, c.S3Bucket)
	setString(&cfg.S3Region, c.S3Region)
	setString(&cfg.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&cfg.LogLevel, c.LogLevel)

	if c.PresignExpiry.Duration != 0 {
		cfg.PresignExpiry = c.PresignExpiry.Duration
	}
	if c.SignInRate != 0 {
		cfg.SignInRate = c.SignInRate
	}
	if c.SignInBurst != 0 {
		cfg.SignInBurst = c.SignInBurst
	}
	if c.Argon2MemoryKiB != 0 {
		cfg.Argon2MemoryKiB = c.Argon2MemoryKiB
	}
	if c.Argon2Iterations != 0 {
		cfg.Argon2Iterations = c.Argon2Iterations
	}
	if c.Argon2Parallelism != 0 {
		cfg.Argon2Parallelism = c.Argon2Parallelism
	}
}
