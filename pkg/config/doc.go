// Package config loads environment-based configuration structs.
//
// Load parses env tags via caarlos0/env after a one-time best-effort
// .env load, so local development picks up a dotenv file while deployed
// environments rely on real variables:
//
//	type StoreConfig struct {
//		Driver string `env:"ENTITLEMENT_STORE_DRIVER" envDefault:"file"`
//		Path   string `env:"ENTITLEMENT_STORE_PATH" envDefault:"entitlement.json"`
//	}
//
//	var cfg StoreConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
package config
