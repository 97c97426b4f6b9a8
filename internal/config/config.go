package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/rail-route-service/internal/routing"
)

// Источники датасета железнодорожной сети
const (
	DatasetSourceGeoJSON  = "geojson"
	DatasetSourceOSMPBF   = "osmpbf"
	DatasetSourcePostgres = "postgres"
)

type Config struct {
	Server  ServerConfig
	OSMDB   DatabaseConfig
	Redis   RedisConfig
	Cache   CacheConfig
	Log     LogConfig
	Dataset DatasetConfig
	Routing RoutingConfig
	Worker  WorkerConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string // пусто - разрешены все источники
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	NetworkCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

// DatasetConfig - откуда загружать станции и пути
type DatasetConfig struct {
	Source       string
	Path         string
	RailwayTypes []string
}

// RoutingConfig - параметры построения графа и поиска маршрута (км, км/ч)
type RoutingConfig struct {
	SnapLinkKm        float64
	BridgeKm          float64
	CandidateRadiusKm float64
	MaxCandidates     int
	MaxDistanceKm     float64
	PairSanityKm      float64
	SpeedKmh          float64
	StationLinkKm     float64
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	MaxRetries        int
	BatchSize         int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// .env опционален: в контейнере всё приходит из окружения
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        viper.GetString("API_HOST"),
			Port:        viper.GetInt("API_PORT"),
			Env:         viper.GetString("API_ENV"),
			CORSOrigins: viper.GetString("API_CORS_ORIGINS"),
		},
		OSMDB: DatabaseConfig{
			Host:            viper.GetString("OSM_DB_HOST"),
			Port:            viper.GetInt("OSM_DB_PORT"),
			User:            viper.GetString("OSM_DB_USER"),
			Password:        viper.GetString("OSM_DB_PASSWORD"),
			DBName:          viper.GetString("OSM_DB_NAME"),
			SSLMode:         viper.GetString("OSM_DB_SSLMODE"),
			MaxConns:        viper.GetInt("OSM_DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("OSM_DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("OSM_DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("OSM_DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Enabled:  viper.GetBool("REDIS_ENABLED"),
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			NetworkCacheTTL: time.Duration(viper.GetInt("NETWORK_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Dataset: DatasetConfig{
			Source:       strings.ToLower(strings.TrimSpace(viper.GetString("DATASET_SOURCE"))),
			Path:         viper.GetString("DATASET_PATH"),
			RailwayTypes: parseList(viper.GetString("DATASET_RAILWAY_TYPES")),
		},
		Routing: RoutingConfig{
			SnapLinkKm:        viper.GetFloat64("ROUTING_SNAP_LINK_KM"),
			BridgeKm:          viper.GetFloat64("ROUTING_BRIDGE_KM"),
			CandidateRadiusKm: viper.GetFloat64("ROUTING_CANDIDATE_RADIUS_KM"),
			MaxCandidates:     viper.GetInt("ROUTING_MAX_CANDIDATES"),
			MaxDistanceKm:     viper.GetFloat64("ROUTING_MAX_DISTANCE_KM"),
			PairSanityKm:      viper.GetFloat64("ROUTING_PAIR_SANITY_KM"),
			SpeedKmh:          viper.GetFloat64("ROUTING_SPEED_KMH"),
			StationLinkKm:     viper.GetFloat64("ROUTING_STATION_LINK_KM"),
		},
		Worker: WorkerConfig{
			Enabled:           viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     viper.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(viper.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			MaxRetries:        viper.GetInt("WORKER_MAX_RETRIES"),
			BatchSize:         viper.GetInt("WORKER_BATCH_SIZE"),
		},
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults - значения по умолчанию для незаданных переменных
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.OSMDB.SSLMode == "" {
		c.OSMDB.SSLMode = "disable"
	}
	if c.OSMDB.MaxConns == 0 {
		c.OSMDB.MaxConns = 10
	}
	if c.OSMDB.MaxIdleConns == 0 {
		c.OSMDB.MaxIdleConns = 5
	}
	if c.Redis.Port == 0 {
		c.Redis.Port = 6379
	}
	if c.Cache.NetworkCacheTTL == 0 {
		c.Cache.NetworkCacheTTL = 24 * time.Hour
	}
	if c.Dataset.Source == "" {
		c.Dataset.Source = DatasetSourceGeoJSON
	}
	if c.Dataset.Path == "" && c.Dataset.Source == DatasetSourceGeoJSON {
		c.Dataset.Path = "data/railways.geojson"
	}

	r := &c.Routing
	if r.SnapLinkKm == 0 {
		r.SnapLinkKm = 0.09
	}
	if r.BridgeKm == 0 {
		r.BridgeKm = 4
	}
	if r.CandidateRadiusKm == 0 {
		r.CandidateRadiusKm = 6
	}
	if r.MaxCandidates == 0 {
		r.MaxCandidates = 6
	}
	if r.MaxDistanceKm == 0 {
		r.MaxDistanceKm = 6000
	}
	if r.PairSanityKm == 0 {
		r.PairSanityKm = 5500
	}
	if r.SpeedKmh == 0 {
		r.SpeedKmh = 60
	}
	if r.StationLinkKm == 0 {
		r.StationLinkKm = 4
	}

	if c.Worker.ConsumerGroup == "" {
		c.Worker.ConsumerGroup = "route-workers"
	}
	if c.Worker.StreamReadTimeout == 0 {
		c.Worker.StreamReadTimeout = 5000 * time.Millisecond
	}
	if c.Worker.MaxRetries == 0 {
		c.Worker.MaxRetries = 3
	}
	if c.Worker.BatchSize == 0 {
		c.Worker.BatchSize = 20
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case DatasetSourceGeoJSON, DatasetSourceOSMPBF:
		if c.Dataset.Path == "" {
			return fmt.Errorf("DATASET_PATH is required for source %q", c.Dataset.Source)
		}
	case DatasetSourcePostgres:
		if c.OSMDB.Host == "" || c.OSMDB.DBName == "" {
			return fmt.Errorf("OSM_DB_HOST and OSM_DB_NAME are required for source %q", c.Dataset.Source)
		}
	default:
		return fmt.Errorf("unknown DATASET_SOURCE %q", c.Dataset.Source)
	}

	if c.Routing.SnapLinkKm < 0 || c.Routing.BridgeKm < 0 {
		return fmt.Errorf("routing thresholds must not be negative")
	}
	if c.Routing.SpeedKmh <= 0 {
		return fmt.Errorf("ROUTING_SPEED_KMH must be positive")
	}
	if c.Worker.Enabled && !c.Redis.Enabled {
		return fmt.Errorf("worker requires REDIS_ENABLED=true")
	}

	return nil
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// RoutingEngine - параметры движка маршрутизации; незаданные поля берутся из routing.DefaultConfig
func (c *Config) RoutingEngine() routing.Config {
	return routing.Config{
		RailwayTypes:      c.Dataset.RailwayTypes,
		SnapLinkKm:        c.Routing.SnapLinkKm,
		BridgeKm:          c.Routing.BridgeKm,
		CandidateRadiusKm: c.Routing.CandidateRadiusKm,
		MaxCandidates:     c.Routing.MaxCandidates,
		MaxDistanceKm:     c.Routing.MaxDistanceKm,
		PairSanityKm:      c.Routing.PairSanityKm,
		SpeedKmh:          c.Routing.SpeedKmh,
		StationLinkKm:     c.Routing.StationLinkKm,
	}.WithDefaults()
}
