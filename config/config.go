package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "TRALASHOP_CONFIG_FILE"

type store struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
}

type storageKeys struct {
	Cart    string `mapstructure:"cart"`
	Users   string `mapstructure:"users"`
	Session string `mapstructure:"session"`
	Theme   string `mapstructure:"theme"`
	Orders  string `mapstructure:"orders"`
}

type ui struct {
	LoadingDelay      time.Duration `mapstructure:"loading_delay"`
	ToastDuration     time.Duration `mapstructure:"toast_duration"`
	AnimationDuration time.Duration `mapstructure:"animation_duration"`
	DebounceDelay     time.Duration `mapstructure:"debounce_delay"`
	LoadMoreDelay     time.Duration `mapstructure:"load_more_delay"`
}

type pagination struct {
	ItemsPerPage  int `mapstructure:"items_per_page"`
	LoadMoreCount int `mapstructure:"load_more_count"`
}

// api is the cloud-integration placeholder carried over from the original
// config; no core operation consumes it.
type api struct {
	BaseURL       string        `mapstructure:"base_url"`
	Timeout       time.Duration `mapstructure:"timeout"`
	RetryAttempts int           `mapstructure:"retry_attempts"`
}

type features struct {
	Wishlist   bool `mapstructure:"wishlist"`
	Reviews    bool `mapstructure:"reviews"`
	Comparison bool `mapstructure:"comparison"`
	Filters    bool `mapstructure:"filters"`
}

type Config struct {
	LogLevel   slog.Level  `mapstructure:"log_level"`
	Store      store       `mapstructure:"store"`
	Keys       storageKeys `mapstructure:"storage_keys"`
	UI         ui          `mapstructure:"ui"`
	Pagination pagination  `mapstructure:"pagination"`
	API        api         `mapstructure:"api"`
	Features   features    `mapstructure:"features"`
}

// Load reads the config file when one is present and falls back to the
// built-in defaults otherwise, so the binary runs with no file at all.
func Load() Config {
	setDefaults()

	path := getConfigFilepath()
	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				die(err)
			}
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		die(err)
	}
	return cfg
}

func setDefaults() {
	viper.SetDefault("log_level", int(slog.LevelInfo))

	viper.SetDefault("store.backend", "file")
	viper.SetDefault("store.path", "tralashop_store.json")

	viper.SetDefault("storage_keys.cart", "tralashop_cart")
	viper.SetDefault("storage_keys.users", "tralashop_users")
	viper.SetDefault("storage_keys.session", "tralashop_current_user")
	viper.SetDefault("storage_keys.theme", "tralashop_theme")
	viper.SetDefault("storage_keys.orders", "tralashop_orders")

	viper.SetDefault("ui.loading_delay", 2*time.Second)
	viper.SetDefault("ui.toast_duration", 3*time.Second)
	viper.SetDefault("ui.animation_duration", 300*time.Millisecond)
	viper.SetDefault("ui.debounce_delay", 300*time.Millisecond)
	viper.SetDefault("ui.load_more_delay", time.Second)

	viper.SetDefault("pagination.items_per_page", 12)
	viper.SetDefault("pagination.load_more_count", 4)

	viper.SetDefault("api.base_url", "https://api.tralashop.com")
	viper.SetDefault("api.timeout", 10*time.Second)
	viper.SetDefault("api.retry_attempts", 3)

	viper.SetDefault("features.wishlist", true)
	viper.SetDefault("features.reviews", true)
	viper.SetDefault("features.comparison", true)
	viper.SetDefault("features.filters", true)
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	template := `
	General:
	LogLevel=%q
	Store: backend=%q path=%q

	StorageKeys:
		Cart=%q
		Users=%q
		Session=%q
		Theme=%q
		Orders=%q

	UI:
		LoadingDelay=%s
		ToastDuration=%s
		DebounceDelay=%s
		LoadMoreDelay=%s

	Pagination: itemsPerPage=%d loadMoreCount=%d

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(template, "\n"),
		c.LogLevel,
		c.Store.Backend, c.Store.Path,
		c.Keys.Cart,
		c.Keys.Users,
		c.Keys.Session,
		c.Keys.Theme,
		c.Keys.Orders,
		c.UI.LoadingDelay,
		c.UI.ToastDuration,
		c.UI.DebounceDelay,
		c.UI.LoadMoreDelay,
		c.Pagination.ItemsPerPage, c.Pagination.LoadMoreCount,
	)
}
