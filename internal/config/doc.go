// Package config provides configuration loading, merging, and validation
// for the console.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. A .env file (loaded into the process environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The entry point is [GetConsoleConfig].
package config
