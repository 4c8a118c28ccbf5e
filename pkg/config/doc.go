// Package config loads typed configuration from the process environment.
//
// Structs are described with caarlos0/env field tags. The first call to Load
// also reads a `.env` file from the working directory when one exists
// (godotenv). Each struct type is parsed once and cached; later calls for the
// same type copy the cached value.
//
//	type ServerConfig struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Reset drops the cache, which tests use after changing the environment.
package config
