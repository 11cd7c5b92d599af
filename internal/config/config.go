package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/USA-RedDragon/geodist-server/internal/geo"
	"github.com/USA-RedDragon/geodist-server/internal/units"
	"github.com/go-errors/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP        HTTP        `json:"http"`
	Persistence Persistence `json:"persistence"`
	Redis       Redis       `json:"redis"`
	Cache       Cache       `json:"cache"`
	JWT         JWT         `json:"jwt"`
	Geo         Geo         `json:"geo"`
}

type JWT struct {
	Secret string `json:"secret"`
}

type Persistence struct {
	Database Database `json:"database"`
}

type DatabaseDriver string

const (
	DatabaseDriverSQLite   DatabaseDriver = "sqlite"
	DatabaseDriverMySQL    DatabaseDriver = "mysql"
	DatabaseDriverPostgres DatabaseDriver = "postgres"
)

type Database struct {
	Driver          DatabaseDriver `json:"driver"`
	Database        string         `json:"database"`
	Username        string         `json:"username"`
	Password        string         `json:"password"`
	Host            string         `json:"host"`
	Port            uint16         `json:"port"`
	ExtraParameters string         `json:"extra_parameters" yaml:"extra_parameters"`
}

type Sentinel struct {
	Enabled    bool     `json:"enabled"`
	Addresses  []string `json:"addresses"`
	MasterName string   `json:"master_name" yaml:"master_name"`
	Username   string   `json:"username"`
	Password   string   `json:"password"`
}

type Redis struct {
	Enabled  bool     `json:"enabled"`
	Address  string   `json:"address"`
	Username string   `json:"username"`
	Password string   `json:"password"`
	Database int      `json:"database"`
	Sentinel Sentinel `json:"sentinel"`
}

type Cache struct {
	Enabled bool          `json:"enabled"`
	TTL     time.Duration `json:"ttl"`
}

type Geo struct {
	DefaultUnit     string `json:"default_unit" yaml:"default_unit"`
	DefaultStrategy string `json:"default_strategy" yaml:"default_strategy"`
	MaxBatch        int    `json:"max_batch" yaml:"max_batch"`
	BatchWorkers    int    `json:"batch_workers" yaml:"batch_workers"`
}

type HTTPListener struct {
	IPV4Host string `json:"ipv4_host" yaml:"ipv4_host"`
	IPV6Host string `json:"ipv6_host" yaml:"ipv6_host"`
	Port     uint16 `json:"port"`
}

type Tracing struct {
	Enabled      bool   `json:"enabled"`
	OTLPEndpoint string `json:"otlp_endpoint" yaml:"otlp_endpoint"`
}

type PProf struct {
	Enabled bool `json:"enabled"`
}

type Metrics struct {
	HTTPListener `yaml:",inline"`
	Enabled      bool `json:"enabled"`
}

type HTTP struct {
	HTTPListener `yaml:",inline"`
	Tracing
	PProf          PProf    `json:"pprof"`
	TrustedProxies []string `json:"trusted_proxies" yaml:"trusted_proxies"`
	Metrics        Metrics  `json:"metrics"`
	CORSHosts      []string `json:"cors_hosts" yaml:"cors_hosts"`
	Compression    bool     `json:"compression"`
}

//nolint:golint,gochecknoglobals
var (
	ConfigFileKey                         = "config"
	HTTPIPV4HostKey                       = "http.ipv4_host"
	HTTPIPV6HostKey                       = "http.ipv6_host"
	HTTPPortKey                           = "http.port"
	HTTPTracingEnabledKey                 = "http.tracing.enabled"
	HTTPTracingOTLPEndKey                 = "http.tracing.otlp_endpoint"
	HTTPPProfEnabledKey                   = "http.pprof.enabled"
	HTTPTrustedProxiesKey                 = "http.trusted_proxies"
	HTTPMetricsEnabledKey                 = "http.metrics.enabled"
	HTTPMetricsIPV4HostKey                = "http.metrics.ipv4_host"
	HTTPMetricsIPV6HostKey                = "http.metrics.ipv6_host"
	HTTPMetricsPortKey                    = "http.metrics.port"
	HTTPCORSHostsKey                      = "http.cors_hosts"
	HTTPCompressionKey                    = "http.compression"
	PersistenceDatabaseDriverKey          = "persistence.database.driver"
	PersistenceDatabaseDatabaseKey        = "persistence.database.database"
	PersistenceDatabaseUsernameKey        = "persistence.database.username"
	PersistenceDatabasePasswordKey        = "persistence.database.password"
	PersistenceDatabaseHostKey            = "persistence.database.host"
	PersistenceDatabasePortKey            = "persistence.database.port"
	PersistenceDatabaseExtraParametersKey = "persistence.database.extra_parameters"
	RedisEnabledKey                       = "redis.enabled"
	RedisAddressKey                       = "redis.address"
	RedisUsernameKey                      = "redis.username"
	//nolint:golint,gosec
	RedisPasswordKey           = "redis.password"
	RedisDatabaseKey           = "redis.database"
	RedisSentinelEnabledKey    = "redis.sentinel.enabled"
	RedisSentinelAddressesKey  = "redis.sentinel.addresses"
	RedisSentinelMasterNameKey = "redis.sentinel.master_name"
	RedisSentinelUsernameKey   = "redis.sentinel.username"
	//nolint:golint,gosec
	RedisSentinelPasswordKey = "redis.sentinel.password"
	CacheEnabledKey          = "cache.enabled"
	CacheTTLKey              = "cache.ttl"
	JWTSecretKey             = "jwt.secret"
	GeoDefaultUnitKey        = "geo.default_unit"
	GeoDefaultStrategyKey    = "geo.default_strategy"
	GeoMaxBatchKey           = "geo.max_batch"
	GeoBatchWorkersKey       = "geo.batch_workers"
)

const (
	DefaultConfigPath                  = "config.yaml"
	DefaultHTTPIPV4Host                = "0.0.0.0"
	DefaultHTTPIPV6Host                = "::"
	DefaultHTTPPort                    = 8080
	DefaultHTTPMetricsIPV4Host         = "127.0.0.1"
	DefaultHTTPMetricsIPV6Host         = "::1"
	DefaultHTTPMetricsPort             = 8081
	DefaultPersistenceDatabaseDriver   = DatabaseDriverSQLite
	DefaultPersistenceDatabaseDatabase = "geodist.db"
	DefaultCacheTTL                    = 10 * time.Minute
	DefaultGeoDefaultUnit              = string(units.Miles)
	DefaultGeoDefaultStrategy          = string(geo.StrategyMeanRadius)
	DefaultGeoMaxBatch                 = 1000
	DefaultGeoBatchWorkers             = 8
)

func RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(ConfigFileKey, "c", DefaultConfigPath, "Config file path")
	cmd.Flags().String(HTTPIPV4HostKey, DefaultHTTPIPV4Host, "HTTP server IPv4 host")
	cmd.Flags().String(HTTPIPV6HostKey, DefaultHTTPIPV6Host, "HTTP server IPv6 host")
	cmd.Flags().Uint16(HTTPPortKey, DefaultHTTPPort, "HTTP server port")
	cmd.Flags().Bool(HTTPTracingEnabledKey, false, "Enable Open Telemetry tracing")
	cmd.Flags().String(HTTPTracingOTLPEndKey, "", "Open Telemetry endpoint")
	cmd.Flags().Bool(HTTPPProfEnabledKey, false, "Enable pprof")
	cmd.Flags().StringSlice(HTTPTrustedProxiesKey, []string{}, "Comma-separated list of trusted proxies")
	cmd.Flags().Bool(HTTPMetricsEnabledKey, false, "Enable metrics server")
	cmd.Flags().String(HTTPMetricsIPV4HostKey, DefaultHTTPMetricsIPV4Host, "Metrics server IPv4 host")
	cmd.Flags().String(HTTPMetricsIPV6HostKey, DefaultHTTPMetricsIPV6Host, "Metrics server IPv6 host")
	cmd.Flags().Uint16(HTTPMetricsPortKey, DefaultHTTPMetricsPort, "Metrics server port")
	cmd.Flags().StringSlice(HTTPCORSHostsKey, []string{}, "Comma-separated list of CORS hosts")
	cmd.Flags().Bool(HTTPCompressionKey, false, "Gzip HTTP responses")
	cmd.Flags().String(PersistenceDatabaseDriverKey, string(DefaultPersistenceDatabaseDriver), "Database driver")
	cmd.Flags().String(PersistenceDatabaseDatabaseKey, DefaultPersistenceDatabaseDatabase, "Database path")
	cmd.Flags().String(PersistenceDatabaseUsernameKey, "", "Database username")
	cmd.Flags().String(PersistenceDatabasePasswordKey, "", "Database password")
	cmd.Flags().String(PersistenceDatabaseHostKey, "", "Database host")
	cmd.Flags().Uint16(PersistenceDatabasePortKey, 0, "Database port")
	cmd.Flags().String(PersistenceDatabaseExtraParametersKey, "", "Database extra parameters")
	cmd.Flags().Bool(RedisEnabledKey, false, "Cache distances in Redis")
	cmd.Flags().String(RedisAddressKey, "", "Redis address")
	cmd.Flags().String(RedisUsernameKey, "", "Redis username")
	cmd.Flags().String(RedisPasswordKey, "", "Redis password")
	cmd.Flags().Int(RedisDatabaseKey, 0, "Redis database")
	cmd.Flags().Bool(RedisSentinelEnabledKey, false, "Use Redis sentinel")
	cmd.Flags().StringSlice(RedisSentinelAddressesKey, []string{}, "Comma-separated list of Redis sentinel addresses")
	cmd.Flags().String(RedisSentinelMasterNameKey, "", "Redis sentinel master name")
	cmd.Flags().String(RedisSentinelUsernameKey, "", "Redis sentinel username")
	cmd.Flags().String(RedisSentinelPasswordKey, "", "Redis sentinel password")
	cmd.Flags().Bool(CacheEnabledKey, false, "Cache computed distances")
	cmd.Flags().Duration(CacheTTLKey, DefaultCacheTTL, "Cached distance lifetime")
	cmd.Flags().String(JWTSecretKey, "", "JWT signing secret guarding place writes")
	cmd.Flags().String(GeoDefaultUnitKey, DefaultGeoDefaultUnit, "Unit used when a request names none")
	cmd.Flags().String(GeoDefaultStrategyKey, DefaultGeoDefaultStrategy, "Distance strategy used when a request names none")
	cmd.Flags().Int(GeoMaxBatchKey, DefaultGeoMaxBatch, "Maximum number of pairs in a batch request")
	cmd.Flags().Int(GeoBatchWorkersKey, DefaultGeoBatchWorkers, "Concurrent workers per batch request")
}

var (
	ErrOTLPEndpointRequired    = errors.New("OTLP endpoint is required when tracing is enabled")
	ErrDBHostRequired          = errors.New("Database host is required")
	ErrDBDatabaseRequired      = errors.New("Database name is required")
	ErrDatabaseDriverRequired  = errors.New("Database driver is required")
	ErrDatabaseDriverInvalid   = errors.New("Database driver must be sqlite, mysql or postgres")
	ErrRedisAddressRequired    = errors.New("Redis address is required when Redis is enabled")
	ErrRedisMasterNameRequired = errors.New("Redis sentinel master name is required when sentinel is enabled")
	ErrRedisSentinelsRequired  = errors.New("Redis sentinel addresses are required when sentinel is enabled")
	ErrDefaultUnitInvalid      = errors.New("Default unit must be a linear unit")
	ErrDefaultStrategyInvalid  = errors.New("Default strategy must be mean or ellipsoidal")
	ErrMaxBatchInvalid         = errors.New("Maximum batch size must be positive")
	ErrBatchWorkersInvalid     = errors.New("Batch workers must be positive")
)

func (c *Config) Validate() error {
	if c.HTTP.Tracing.Enabled && c.HTTP.Tracing.OTLPEndpoint == "" {
		return ErrOTLPEndpointRequired
	}
	if c.Persistence.Database.Driver == "" {
		return ErrDatabaseDriverRequired
	}
	switch c.Persistence.Database.Driver {
	case DatabaseDriverSQLite, DatabaseDriverMySQL, DatabaseDriverPostgres:
	default:
		return ErrDatabaseDriverInvalid
	}
	if c.Persistence.Database.Driver != DatabaseDriverSQLite && c.Persistence.Database.Host == "" {
		return ErrDBHostRequired
	}
	if c.Persistence.Database.Database == "" {
		return ErrDBDatabaseRequired
	}
	if c.Redis.Enabled {
		if c.Redis.Sentinel.Enabled {
			if c.Redis.Sentinel.MasterName == "" {
				return ErrRedisMasterNameRequired
			}
			if len(c.Redis.Sentinel.Addresses) == 0 {
				return ErrRedisSentinelsRequired
			}
		} else if c.Redis.Address == "" {
			return ErrRedisAddressRequired
		}
	}
	unit, err := units.Parse(c.Geo.DefaultUnit)
	if err != nil || units.Classify(unit) != units.Linear {
		return ErrDefaultUnitInvalid
	}
	if _, err := geo.ParseStrategy(c.Geo.DefaultStrategy); err != nil {
		return ErrDefaultStrategyInvalid
	}
	if c.Geo.MaxBatch <= 0 {
		return ErrMaxBatchInvalid
	}
	if c.Geo.BatchWorkers <= 0 {
		return ErrBatchWorkersInvalid
	}

	return nil
}

func LoadConfig(cmd *cobra.Command) (*Config, error) {
	var config Config

	// Load flags from envs
	ctx, cancel := context.WithCancelCause(cmd.Context())
	defer cancel(nil)
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if ctx.Err() != nil {
			return
		}
		optName := strings.ReplaceAll(strings.ReplaceAll(strings.ToUpper(f.Name), "-", "_"), ".", "__")
		if val, ok := os.LookupEnv(optName); !f.Changed && ok {
			if err := f.Value.Set(val); err != nil {
				cancel(err)
			}
			f.Changed = true
		}
	})
	if ctx.Err() != nil {
		return &config, fmt.Errorf("failed to load env: %w", context.Cause(ctx))
	}

	configPath, err := cmd.Flags().GetString(ConfigFileKey)
	if err != nil {
		return &config, fmt.Errorf("failed to get config path: %w", err)
	}
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return &config, fmt.Errorf("failed to read config: %w", err)
		} else if err == nil {
			if err := yaml.Unmarshal(data, &config); err != nil {
				return &config, fmt.Errorf("failed to unmarshal config: %w", err)
			}
		}
	}

	err = overrideFlags(&config, cmd)
	if err != nil {
		return &config, fmt.Errorf("failed to override flags: %w", err)
	}

	// Defaults
	if config.HTTP.IPV4Host == "" {
		config.HTTP.IPV4Host = DefaultHTTPIPV4Host
	}
	if config.HTTP.IPV6Host == "" {
		config.HTTP.IPV6Host = DefaultHTTPIPV6Host
	}
	if config.HTTP.Port == 0 {
		config.HTTP.Port = DefaultHTTPPort
	}
	if config.HTTP.Metrics.IPV4Host == "" {
		config.HTTP.Metrics.IPV4Host = DefaultHTTPMetricsIPV4Host
	}
	if config.HTTP.Metrics.IPV6Host == "" {
		config.HTTP.Metrics.IPV6Host = DefaultHTTPMetricsIPV6Host
	}
	if config.HTTP.Metrics.Port == 0 {
		config.HTTP.Metrics.Port = DefaultHTTPMetricsPort
	}
	if config.Persistence.Database.Driver == "" {
		config.Persistence.Database.Driver = DefaultPersistenceDatabaseDriver
	}
	if config.Persistence.Database.Database == "" {
		config.Persistence.Database.Database = DefaultPersistenceDatabaseDatabase
	}
	if config.Cache.TTL == 0 {
		config.Cache.TTL = DefaultCacheTTL
	}
	if config.Geo.DefaultUnit == "" {
		config.Geo.DefaultUnit = DefaultGeoDefaultUnit
	}
	if config.Geo.DefaultStrategy == "" {
		config.Geo.DefaultStrategy = DefaultGeoDefaultStrategy
	}
	if config.Geo.MaxBatch == 0 {
		config.Geo.MaxBatch = DefaultGeoMaxBatch
	}
	if config.Geo.BatchWorkers == 0 {
		config.Geo.BatchWorkers = DefaultGeoBatchWorkers
	}

	return &config, nil
}

// DefaultUnit returns the parsed default output unit.
func (c *Config) DefaultUnit() units.Unit {
	unit, err := units.Parse(c.Geo.DefaultUnit)
	if err != nil {
		return units.Miles
	}
	return unit
}

// DefaultStrategy returns the parsed default distance strategy.
func (c *Config) DefaultStrategy() geo.Strategy {
	strategy, err := geo.ParseStrategy(c.Geo.DefaultStrategy)
	if err != nil {
		return geo.StrategyMeanRadius
	}
	return strategy
}
