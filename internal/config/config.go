package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Engine holds the tunable parameters of the simulation and impact engines.
// Every value started life as a literal in the projection heuristics; they are
// surfaced here so callers can recalibrate without a rebuild. The defaults are
// intentionally unchanged pending calibration against real data.
type Engine struct {
	// Simulation
	Iterations       int     // default iteration count for a simulation run
	Workers          int     // parallelism degree of the iteration loop
	MonteCarloTrials int     // iteration count of the dedicated risk pass
	GrowthRate       float64 // nominal annual growth applied during projection
	HistogramBins    int     // bin count for Monte Carlo distributions

	// Financial projection
	CashFlowYears int     // fixed horizon for option cash-flow series
	DiscountRate  float64 // rate used for option NPV

	// Impact analyzer time-bucket heuristics
	ShortTermRevenueBump float64 // fractional revenue bump in the short-term bucket
	LongTermShareGain    float64 // market-share points gained in the long-term bucket
}

// AppConfig holds the complete application configuration.
type AppConfig struct {
	Engine   Engine
	DataPath string
	LogDir   string
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory (highest priority for installed binaries)
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	dataPath := getEnv("DATA_PATH", "")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	cfg := &AppConfig{
		Engine:   EngineFromEnv(),
		DataPath: dataPath,
		LogDir:   filepath.Join(dataPath, "logs"),
	}

	return cfg, nil
}

// DefaultEngine returns the engine parameters with their built-in defaults.
func DefaultEngine() Engine {
	return Engine{
		Iterations:           100,
		Workers:              runtime.NumCPU(),
		MonteCarloTrials:     1000,
		GrowthRate:           0.05,
		HistogramBins:        20,
		CashFlowYears:        5,
		DiscountRate:         0.10,
		ShortTermRevenueBump: 0.10,
		LongTermShareGain:    2.0,
	}
}

// EngineFromEnv returns the engine parameters with environment overrides applied.
func EngineFromEnv() Engine {
	e := DefaultEngine()
	e.Iterations = getEnvInt("SIM_ITERATIONS", e.Iterations)
	e.Workers = getEnvInt("SIM_WORKERS", e.Workers)
	e.MonteCarloTrials = getEnvInt("SIM_MC_TRIALS", e.MonteCarloTrials)
	e.GrowthRate = getEnvFloat("SIM_GROWTH_RATE", e.GrowthRate)
	e.HistogramBins = getEnvInt("SIM_HISTOGRAM_BINS", e.HistogramBins)
	e.CashFlowYears = getEnvInt("SIM_CASHFLOW_YEARS", e.CashFlowYears)
	e.DiscountRate = getEnvFloat("SIM_DISCOUNT_RATE", e.DiscountRate)
	e.ShortTermRevenueBump = getEnvFloat("IMPACT_SHORT_TERM_REVENUE_BUMP", e.ShortTermRevenueBump)
	e.LongTermShareGain = getEnvFloat("IMPACT_LONG_TERM_SHARE_GAIN", e.LongTermShareGain)
	return e
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Warn().Str("key", key).Str("value", value).Msg("Ignoring non-integer environment override")
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Warn().Str("key", key).Str("value", value).Msg("Ignoring non-numeric environment override")
	}
	return fallback
}
