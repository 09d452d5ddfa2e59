package estyped

// ServerConfig defines one search engine server.
type ServerConfig struct {
	Name      string   // Server name (e.g., "primary", "archive")
	Version   int      // go-elasticsearch transport version: 8 or 9
	Addresses []string // Node addresses (e.g., ["http://es-1:9200", "http://es-2:9200"])
	Username  string   // Authentication username
	Password  string   // Authentication password
}

// Config defines configuration for multiple servers.
type Config struct {
	DefaultServer string                  // Name of the default server
	Servers       map[string]ServerConfig // Map of server_name -> ServerConfig
}

// Validate checks if configuration is valid.
func (c *Config) Validate() error {
	if len(c.Servers) == 0 {
		return ErrEmptyServers
	}

	if c.DefaultServer == "" {
		return ErrNoDefaultServer
	}

	if _, ok := c.Servers[c.DefaultServer]; !ok {
		return ErrDefaultServerMissing
	}

	for name, server := range c.Servers {
		if name == "" {
			return ErrEmptyServerName
		}
		if len(server.Addresses) == 0 {
			return ErrEmptyServerAddresses(name)
		}
		if server.Version != 8 && server.Version != 9 {
			return ErrInvalidVersion(name, server.Version)
		}
	}

	return nil
}
