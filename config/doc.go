// Package config handles loading and parsing of configuration from YAML files
// and environment variables. It defines the probe configuration structure
// including candidate endpoints, retry behavior, selection priority, and the
// persistence target for the winning URL.
package config
