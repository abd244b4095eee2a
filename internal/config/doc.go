// Package config reads the configuration of the propsel command.
package config
