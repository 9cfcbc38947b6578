package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sportatlas/catalog/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the pipeline.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	DataDir        string
	LogLevel       logging.Level

	WikipediaWeight    float64
	GoogleTrendsWeight float64
	MatchSuffixes      []string

	SnapshotsEnabled        bool
	DBURL                   string
	DBDisablePreparedBinary bool

	SyncWorkers int

	WikipediaEnabled             bool
	WikipediaBaseURL             string
	WikipediaTimeout             time.Duration
	WikipediaCircuitEnabled      bool
	WikipediaCircuitFailureCount int
	WikipediaCircuitOpenTimeout  time.Duration
	WikipediaCircuitHalfOpenMax  int

	SportsDBEnabled             bool
	SportsDBBaseURL             string
	SportsDBTimeout             time.Duration
	SportsDBMaxRetries          int
	SportsDBCircuitEnabled      bool
	SportsDBCircuitFailureCount int
	SportsDBCircuitOpenTimeout  time.Duration
	SportsDBCircuitHalfOpenMax  int
	SportsDBCacheTTL            time.Duration

	ESPNEnabled bool
	ESPNBaseURL string
	ESPNTimeout time.Duration

	AllSportDBEnabled            bool
	AllSportDBBaseURL            string
	AllSportDBToken              string
	AllSportDBTimeout            time.Duration
	AllSportDBMaxRetries         int
	AllSportDBCalendarWindowDays int

	UptraceEnabled     bool
	UptraceDSN         string
	UptraceLogsEnabled bool

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	wikiWeight, err := getEnvAsFloat("POPULARITY_WIKIPEDIA_WEIGHT", 0.55)
	if err != nil {
		return Config{}, fmt.Errorf("parse POPULARITY_WIKIPEDIA_WEIGHT: %w", err)
	}
	trendsWeight, err := getEnvAsFloat("POPULARITY_TRENDS_WEIGHT", 0.45)
	if err != nil {
		return Config{}, fmt.Errorf("parse POPULARITY_TRENDS_WEIGHT: %w", err)
	}
	if wikiWeight < 0 || trendsWeight < 0 {
		return Config{}, fmt.Errorf("popularity weights must be >= 0")
	}
	if wikiWeight == 0 && trendsWeight == 0 {
		return Config{}, fmt.Errorf("at least one popularity weight must be > 0")
	}

	snapshotsEnabled, err := strconv.ParseBool(getEnv("SNAPSHOTS_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SNAPSHOTS_ENABLED: %w", err)
	}
	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if snapshotsEnabled && dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when SNAPSHOTS_ENABLED=true")
	}
	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	syncWorkers, err := getEnvAsInt("SYNC_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse SYNC_WORKERS: %w", err)
	}
	if syncWorkers < 1 {
		return Config{}, fmt.Errorf("SYNC_WORKERS must be >= 1")
	}

	wikipediaEnabled, err := strconv.ParseBool(getEnv("WIKIPEDIA_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WIKIPEDIA_ENABLED: %w", err)
	}
	wikipediaTimeout, err := time.ParseDuration(getEnv("WIKIPEDIA_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WIKIPEDIA_TIMEOUT: %w", err)
	}
	if wikipediaTimeout <= 0 {
		return Config{}, fmt.Errorf("WIKIPEDIA_TIMEOUT must be > 0")
	}
	wikipediaCircuitEnabled, err := strconv.ParseBool(getEnv("WIKIPEDIA_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WIKIPEDIA_CIRCUIT_ENABLED: %w", err)
	}
	wikipediaCircuitFailureCount, err := getEnvAsInt("WIKIPEDIA_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse WIKIPEDIA_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if wikipediaCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("WIKIPEDIA_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	wikipediaCircuitOpenTimeout, err := time.ParseDuration(getEnv("WIKIPEDIA_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WIKIPEDIA_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if wikipediaCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("WIKIPEDIA_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	wikipediaCircuitHalfOpenMax, err := getEnvAsInt("WIKIPEDIA_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse WIKIPEDIA_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if wikipediaCircuitHalfOpenMax < 1 {
		return Config{}, fmt.Errorf("WIKIPEDIA_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	sportsDBEnabled, err := strconv.ParseBool(getEnv("SPORTSDB_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDB_ENABLED: %w", err)
	}
	sportsDBTimeout, err := time.ParseDuration(getEnv("SPORTSDB_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDB_TIMEOUT: %w", err)
	}
	if sportsDBTimeout <= 0 {
		return Config{}, fmt.Errorf("SPORTSDB_TIMEOUT must be > 0")
	}
	sportsDBMaxRetries, err := getEnvAsInt("SPORTSDB_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDB_MAX_RETRIES: %w", err)
	}
	if sportsDBMaxRetries < 0 {
		return Config{}, fmt.Errorf("SPORTSDB_MAX_RETRIES must be >= 0")
	}
	sportsDBCircuitEnabled, err := strconv.ParseBool(getEnv("SPORTSDB_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDB_CIRCUIT_ENABLED: %w", err)
	}
	sportsDBCircuitFailureCount, err := getEnvAsInt("SPORTSDB_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDB_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if sportsDBCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("SPORTSDB_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	sportsDBCircuitOpenTimeout, err := time.ParseDuration(getEnv("SPORTSDB_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDB_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if sportsDBCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("SPORTSDB_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	sportsDBCircuitHalfOpenMax, err := getEnvAsInt("SPORTSDB_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDB_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if sportsDBCircuitHalfOpenMax < 1 {
		return Config{}, fmt.Errorf("SPORTSDB_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	sportsDBCacheTTL, err := time.ParseDuration(getEnv("SPORTSDB_CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDB_CACHE_TTL: %w", err)
	}
	if sportsDBCacheTTL <= 0 {
		return Config{}, fmt.Errorf("SPORTSDB_CACHE_TTL must be > 0")
	}

	espnEnabled, err := strconv.ParseBool(getEnv("ESPN_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_ENABLED: %w", err)
	}
	espnTimeout, err := time.ParseDuration(getEnv("ESPN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_TIMEOUT: %w", err)
	}
	if espnTimeout <= 0 {
		return Config{}, fmt.Errorf("ESPN_TIMEOUT must be > 0")
	}

	allSportDBEnabled, err := strconv.ParseBool(getEnv("ALLSPORTDB_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ALLSPORTDB_ENABLED: %w", err)
	}
	allSportDBToken := strings.TrimSpace(getEnv("ALLSPORTDB_TOKEN", ""))
	if allSportDBEnabled && allSportDBToken == "" {
		return Config{}, fmt.Errorf("ALLSPORTDB_TOKEN is required when ALLSPORTDB_ENABLED=true")
	}
	allSportDBTimeout, err := time.ParseDuration(getEnv("ALLSPORTDB_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ALLSPORTDB_TIMEOUT: %w", err)
	}
	if allSportDBTimeout <= 0 {
		return Config{}, fmt.Errorf("ALLSPORTDB_TIMEOUT must be > 0")
	}
	allSportDBMaxRetries, err := getEnvAsInt("ALLSPORTDB_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse ALLSPORTDB_MAX_RETRIES: %w", err)
	}
	if allSportDBMaxRetries < 0 {
		return Config{}, fmt.Errorf("ALLSPORTDB_MAX_RETRIES must be >= 0")
	}
	allSportDBCalendarWindowDays, err := getEnvAsInt("ALLSPORTDB_CALENDAR_WINDOW_DAYS", 365)
	if err != nil {
		return Config{}, fmt.Errorf("parse ALLSPORTDB_CALENDAR_WINDOW_DAYS: %w", err)
	}
	if allSportDBCalendarWindowDays < 1 {
		return Config{}, fmt.Errorf("ALLSPORTDB_CALENDAR_WINDOW_DAYS must be >= 1")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cfg := Config{
		AppEnv:                       appEnv,
		ServiceName:                  getEnv("APP_SERVICE_NAME", "sports-catalog-pipeline"),
		ServiceVersion:               getEnv("APP_SERVICE_VERSION", "dev"),
		DataDir:                      getEnv("DATA_DIR", "data"),
		LogLevel:                     parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		WikipediaWeight:              wikiWeight,
		GoogleTrendsWeight:           trendsWeight,
		MatchSuffixes:                splitCSV(getEnv("MATCH_SUFFIXES", " league, division, liga, tour")),
		SnapshotsEnabled:             snapshotsEnabled,
		DBURL:                        dbURL,
		DBDisablePreparedBinary:      dbDisablePreparedBinary,
		SyncWorkers:                  syncWorkers,
		WikipediaEnabled:             wikipediaEnabled,
		WikipediaBaseURL:             getEnv("WIKIPEDIA_BASE_URL", "https://wikimedia.org/api/rest_v1"),
		WikipediaTimeout:             wikipediaTimeout,
		WikipediaCircuitEnabled:      wikipediaCircuitEnabled,
		WikipediaCircuitFailureCount: wikipediaCircuitFailureCount,
		WikipediaCircuitOpenTimeout:  wikipediaCircuitOpenTimeout,
		WikipediaCircuitHalfOpenMax:  wikipediaCircuitHalfOpenMax,
		SportsDBEnabled:              sportsDBEnabled,
		SportsDBBaseURL:              getEnv("SPORTSDB_BASE_URL", "https://www.thesportsdb.com/api/v1/json/3"),
		SportsDBTimeout:              sportsDBTimeout,
		SportsDBMaxRetries:           sportsDBMaxRetries,
		SportsDBCircuitEnabled:       sportsDBCircuitEnabled,
		SportsDBCircuitFailureCount:  sportsDBCircuitFailureCount,
		SportsDBCircuitOpenTimeout:   sportsDBCircuitOpenTimeout,
		SportsDBCircuitHalfOpenMax:   sportsDBCircuitHalfOpenMax,
		SportsDBCacheTTL:             sportsDBCacheTTL,
		ESPNEnabled:                  espnEnabled,
		ESPNBaseURL:                  getEnv("ESPN_BASE_URL", "https://site.api.espn.com/apis/site/v2/sports"),
		ESPNTimeout:                  espnTimeout,
		AllSportDBEnabled:            allSportDBEnabled,
		AllSportDBBaseURL:            getEnv("ALLSPORTDB_BASE_URL", "https://api.allsportdb.com/v3"),
		AllSportDBToken:              allSportDBToken,
		AllSportDBTimeout:            allSportDBTimeout,
		AllSportDBMaxRetries:         allSportDBMaxRetries,
		AllSportDBCalendarWindowDays: allSportDBCalendarWindowDays,
		UptraceEnabled:               uptraceEnabled,
		UptraceDSN:                   uptraceDSN,
		UptraceLogsEnabled:           uptraceLogsEnabled,
		PyroscopeEnabled:             pyroscopeEnabled,
		PyroscopeServerAddress:       pyroscopeServerAddress,
		PyroscopeAuthToken:           strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:       strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:   strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:          pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.MatchSuffixes) == 0 {
		return Config{}, fmt.Errorf("MATCH_SUFFIXES cannot be empty")
	}

	return cfg, nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsFloat(key string, fallback float64) (float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}

	return out, nil
}

// splitCSV keeps one leading space per item: match suffixes are
// whole-word-at-end fragments like " league".
func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimRight(part, " ")
		if strings.TrimSpace(item) == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
