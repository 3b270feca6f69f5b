package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	KeyLog      = "log"
	KeyLogLevel = "logLevel"
	KeyCompact  = "compact"
	KeyLock     = "lock"
	KeyOutput   = "output"
	EnvPrefix   = "bundle"
	configDir   = ".bundle-index"
)

var HomeDir string
var ConfigDir string

func InitConfig() {
	var err error
	HomeDir, err = os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	ConfigDir = filepath.Join(HomeDir, configDir)
}

func InitViper() {
	viper.SetDefault(KeyLog, false)
	viper.SetDefault(KeyCompact, false)
	viper.SetDefault(KeyLock, false)
	viper.SetDefault(KeyOutput, "index.js")

	viper.SetConfigType("json")
	viper.SetConfigName("config")
	viper.AddConfigPath(ConfigDir)
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; do nothing and rely on defaults
		} else {
			panic("cannot read config: " + err.Error())
		}
	}
	// set prefix "bundle" for environment variables
	// the environment variables then have to match pattern "bundle_<viper variable>", lower or uppercase
	viper.SetEnvPrefix(EnvPrefix)

	// bind viper variables to environment variables
	_ = viper.BindEnv(KeyLog)      // env variable name = BUNDLE_LOG
	_ = viper.BindEnv(KeyLogLevel) // env variable name = BUNDLE_LOGLEVEL
	_ = viper.BindEnv(KeyCompact)  // env variable name = BUNDLE_COMPACT
	_ = viper.BindEnv(KeyLock)     // env variable name = BUNDLE_LOCK
	_ = viper.BindEnv(KeyOutput)   // env variable name = BUNDLE_OUTPUT
}
