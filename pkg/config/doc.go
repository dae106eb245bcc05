// Package config defines imprint's YAML configuration and its loading
// pipeline.
//
// Configuration is loaded in phases: defaults, YAML file, IMPRINT_*
// environment overrides, validation. Every command that needs more than
// flags goes through LoadConfig or LoadConfigWithEnvOverrides.
//
// # Example
//
//	scan:
//	  root: /var/data
//	  skip_hidden: true
//	  workers: 4
//	storage:
//	  backend: sqlite
//	  path: data/fingerprints.db
//	watch:
//	  debounce_interval: "250ms"
//	schedule:
//	  cron: "0 3 * * *"
//	logging:
//	  level: info
//	  format: json
//	metrics:
//	  enabled: true
//	  listen: "127.0.0.1:9410"
package config
