package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Bot holds all configuration for the bot server.
type Bot struct {
	LogLevel string `yaml:"log_level"`

	Database DatabaseConfig `yaml:"database"`
	Combat   Combat         `yaml:"combat"`
	Rates    Rates          `yaml:"rates"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Combat holds the resolution tunables. Every chance is a 0..1 fraction.
type Combat struct {
	// Hit determination: chance = BaseHitChance + HitPerPoint·(acc−eva),
	// clamped to [MinHitChance, MaxHitChance].
	BaseHitChance float64 `yaml:"base_hit_chance"`
	HitPerPoint   float64 `yaml:"hit_per_point"`
	MinHitChance  float64 `yaml:"min_hit_chance"`
	MaxHitChance  float64 `yaml:"max_hit_chance"`

	// Crit damage multiplier used when no equipment modifies it.
	DefaultCritDamage float64 `yaml:"default_crit_damage"`

	// Chip damage floor on any successful hit.
	MinDamage int32 `yaml:"min_damage"`

	// Declared-reaction factors.
	BlockFactor   float64 `yaml:"block_factor"`   // damage multiplier under Block
	DodgeBase     float64 `yaml:"dodge_base"`     // base dodge-roll chance
	DodgePerPoint float64 `yaml:"dodge_per_point"`
	CounterRatio  float64 `yaml:"counter_ratio"` // fraction reflected on Counter

	// Flee: chance = BaseFleeChance + FleePerPoint·(actorSpeed−targetSpeed),
	// clamped to [MinFleeChance, MaxFleeChance].
	BaseFleeChance float64 `yaml:"base_flee_chance"`
	FleePerPoint   float64 `yaml:"flee_per_point"`
	MinFleeChance  float64 `yaml:"min_flee_chance"`
	MaxFleeChance  float64 `yaml:"max_flee_chance"`

	// Meditate/Wait recovery amounts.
	MeditateMana    int32 `yaml:"meditate_mana"`
	MeditateStamina int32 `yaml:"meditate_stamina"`
	WaitStamina     int32 `yaml:"wait_stamina"`

	// Soft defeat: HP clamps to DeathFloor instead of zero; EndCombat on
	// defeat revives at ReviveFraction of max HP.
	DeathFloor     int32   `yaml:"death_floor"`
	ReviveFraction float64 `yaml:"revive_fraction"`
}

// Rates holds server-wide reward multipliers.
type Rates struct {
	XPMultiplier   float64 `yaml:"xp_multiplier"`
	DropMultiplier float64 `yaml:"drop_multiplier"`
}

// DefaultBot returns Bot config with sensible defaults.
func DefaultBot() Bot {
	return Bot{
		LogLevel: "info",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "rpgbot",
			Password: "rpgbot",
			DBName:   "rpgbot",
			SSLMode:  "disable",
		},
		Combat: DefaultCombat(),
		Rates: Rates{
			XPMultiplier:   1.0,
			DropMultiplier: 1.0,
		},
	}
}

// DefaultCombat returns the default resolution tunables.
func DefaultCombat() Combat {
	return Combat{
		BaseHitChance:     0.80,
		HitPerPoint:       0.02,
		MinHitChance:      0.20,
		MaxHitChance:      0.98,
		DefaultCritDamage: 2.0,
		MinDamage:         1,
		BlockFactor:       0.5,
		DodgeBase:         0.40,
		DodgePerPoint:     0.02,
		CounterRatio:      0.30,
		BaseFleeChance:    0.75,
		FleePerPoint:      0.01,
		MinFleeChance:     0.10,
		MaxFleeChance:     0.95,
		MeditateMana:      15,
		MeditateStamina:   10,
		WaitStamina:       5,
		DeathFloor:        1,
		ReviveFraction:    0.5,
	}
}

// Load loads bot config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Bot, error) {
	cfg := DefaultBot()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
