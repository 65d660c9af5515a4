// Package config loads and validates configuration for the collate CLI and
// demo server.
//
// Configuration is read from collate.json, collate.yaml or collate.yml in
// the working directory (first match wins), then overridden by COLLATE_*
// environment variables, then by command-line flags:
//
//	{
//	  "server": { "port": 8080 },
//	  "render": { "title": "Providers", "pretty": true },
//	  "metrics": { "enabled": true },
//	  "props": { "theme": "dark", "locale": "de" },
//	  "layers": ["theme", "locale", "user"]
//	}
package config
