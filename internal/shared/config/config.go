package config

import (
	"os"
	"strconv"

	"gopkg.in/ini.v1"

	"ledlink/internal/shared/types"
)

// Load fills cfg from the given ini file. A missing file is not an error:
// the client is expected to run with built-in defaults on a stock dev kit,
// so callers pass types.DefaultConfig() and only overrides live on disk.
func Load(cfg *types.Config, fileName string) error {
	iniFile, err := ini.LooseLoad(fileName)
	if err != nil {
		return err
	}
	if err := iniFile.MapTo(cfg); err != nil {
		return err
	}
	applyEnvOverrides(cfg)
	return nil
}

func applyEnvOverrides(cfg *types.Config) {
	overrideFromEnvStr(&cfg.ClientConf.Address, "LEDLINK_ADDRESS")
	overrideFromEnvInt(&cfg.ClientConf.Port, "LEDLINK_PORT")
}

func overrideFromEnvStr(target *string, envName string) {
	if envValue := os.Getenv(envName); envValue != "" {
		*target = envValue
	}
}

func overrideFromEnvInt(target *int, envName string) {
	envValue := os.Getenv(envName)
	if envValue != "" {
		if intValue, err := strconv.Atoi(envValue); err == nil {
			*target = intValue
		}
	}
}
