// Package config provides configuration loading for the altname tool.
//
// # Overview
//
// Configuration is read from TOML files. The package supports:
//
//   - ${VAR} and ${VAR:-default} substitution before parsing
//   - Default values for every setting not present in the file
//   - ALTNAME_LOG_LEVEL as an override for logging.level
//   - Validation of every value the encoder would reject
//
// # Configuration File
//
//	[logging]
//	level = "debug"
//	format = "json"
//
//	[encoding]
//	format = "pem"
//	strict = true
//
//	[altname]
//	email = ["admin@example.com"]
//	dns = ["example.com", "www.example.com"]
//	ip = ["${HOST_IP:-192.0.2.1}"]
//	critical = false
//
//	[[altname.othername]]
//	oid = "1.3.6.1.4.1.311.20.2.3"
//	value = "user@example.com"
//	type = "UTF8String"
//
// # Loading Configuration
//
//	cfg, err := config.LoadConfig("altname.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if errs := config.ValidateConfig(cfg); len(errs) > 0 {
//	    // report errs
//	}
package config
