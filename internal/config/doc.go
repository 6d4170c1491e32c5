// Package config loads, merges, and validates application configuration.
//
// Values are collected from several sources and merged field by field, with
// later sources filling in what earlier ones left zero:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// [GetStructuredConfig] builds the server-side configuration and
// [GetClientConfig] the admin client's.
package config
