// Package config loads SDK settings from the environment and optional
// config files. Resolution order: explicit values in the file, then
// JEWELMUSIC_* environment variables, then defaults. A .env file is
// loaded first when present so local development works without exported
// variables.
package config
