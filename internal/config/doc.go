// Package config provides configuration loading and merging for meow.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier ones field by field):
//  1. Built-in defaults
//  2. JSON config file (explicit -c path, or .env.json and config.json)
//  3. Environment variables prefixed with MEOW_
//
// Every source is first decoded into a layer of optional fields, so a value
// that is present but zero (MEOW_ZONE=0) still overrides. A failure in any
// source fails the whole load.
//
// The main entry point is [Load].
package config
