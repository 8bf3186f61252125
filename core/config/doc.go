// Package config provides configuration management for the schema engine.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key, user header, default external source
//   - Database: entity graph store driver and connection details
//   - Storage: S3/MinIO credentials and the bucket holding schema documents
//   - Log: logging level and format
//   - Engine: supported delete semantics, bulk sync prefix and worker count
//   - Auth: allowed user ids
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Engine.DeleteSemantics)
package config
