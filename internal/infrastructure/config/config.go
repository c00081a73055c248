package config

import (
	"fmt"
	"strings"

	"github.com/restoerp/backend/internal/domain/catalog"
	"github.com/restoerp/backend/internal/domain/company"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App    AppConfig
	Log    LogConfig
	Policy PolicyConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// PolicyConfig externalizes the business-policy knobs that default to
// the published values: the price swing guard ratios and the per-plan
// branch ceilings.
type PolicyConfig struct {
	PriceSwing PriceSwingConfig
	Plans      map[string]int // plan name -> max branches, -1 = unlimited
}

// PriceSwingConfig holds the price change guard ratios
type PriceSwingConfig struct {
	MaxIncreaseRatio string // e.g. "5.0"
	MaxDecreaseRatio string // e.g. "0.5"
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with RESTOERP_ prefix (e.g., RESTOERP_LOG_LEVEL)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("./backend")
	v.AddConfigPath("/app")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("RESTOERP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Policy: PolicyConfig{
			PriceSwing: PriceSwingConfig{
				MaxIncreaseRatio: v.GetString("policy.price_swing.max_increase_ratio"),
				MaxDecreaseRatio: v.GetString("policy.price_swing.max_decrease_ratio"),
			},
			Plans: planCeilings(v),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "restoerp")
	v.SetDefault("app.env", "development")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("policy.price_swing.max_increase_ratio", "5.0")
	v.SetDefault("policy.price_swing.max_decrease_ratio", "0.5")
	v.SetDefault("policy.plans.basico", 1)
	v.SetDefault("policy.plans.profissional", 5)
	v.SetDefault("policy.plans.enterprise", company.SemLimite)
}

func planCeilings(v *viper.Viper) map[string]int {
	return map[string]int{
		"basico":       v.GetInt("policy.plans.basico"),
		"profissional": v.GetInt("policy.plans.profissional"),
		"enterprise":   v.GetInt("policy.plans.enterprise"),
	}
}

// PlanPolicy maps the configured plan ceilings to the domain policy.
func (c *Config) PlanPolicy() company.PlanPolicy {
	policy := company.DefaultPlanPolicy()
	if limit, ok := c.Policy.Plans["basico"]; ok {
		policy.MaxFiliais[company.PlanoBasico] = limit
	}
	if limit, ok := c.Policy.Plans["profissional"]; ok {
		policy.MaxFiliais[company.PlanoProfissional] = limit
	}
	if limit, ok := c.Policy.Plans["enterprise"]; ok {
		policy.MaxFiliais[company.PlanoEnterprise] = limit
	}
	return policy
}

// PriceSwingPolicy maps the configured swing ratios to the domain
// policy, falling back to the published defaults on malformed values.
func (c *Config) PriceSwingPolicy() catalog.PriceSwingPolicy {
	policy := catalog.DefaultPriceSwingPolicy()
	if r, err := decimal.NewFromString(c.Policy.PriceSwing.MaxIncreaseRatio); err == nil && r.IsPositive() {
		policy.MaxIncreaseRatio = r
	}
	if r, err := decimal.NewFromString(c.Policy.PriceSwing.MaxDecreaseRatio); err == nil && r.IsPositive() {
		policy.MaxDecreaseRatio = r
	}
	return policy
}
