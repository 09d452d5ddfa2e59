package estyped

import (
	"net/url"

	elasticV8 "github.com/elastic/go-elasticsearch/v8"
	elasticV9 "github.com/elastic/go-elasticsearch/v9"
	"github.com/pkg/errors"
)

// Entry represents a registered server with its pre-created transport.
type Entry struct {
	Name      string    // Server name
	Version   int       // Transport version (8 or 9)
	Server    Server    // Base URL for the server
	Transport Transport // Pre-created transport
}

// Registry manages transports for multiple named servers. All transports
// are created once during initialization.
type Registry struct {
	defaultName string
	byName      map[string]Entry
}

// NewRegistry creates a new empty registry.
func NewRegistry(defaultName string) *Registry {
	if defaultName == "" {
		defaultName = "default"
	}
	return &Registry{
		defaultName: defaultName,
		byName:      make(map[string]Entry),
	}
}

// NewRegistryFromConfig creates a registry from configuration. All
// transports are created during initialization (one-time setup).
func NewRegistryFromConfig(cfg *Config) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	reg := NewRegistry(cfg.DefaultServer)

	for name, serverCfg := range cfg.Servers {
		baseURL := serverCfg.Addresses[0]
		u, err := url.Parse(baseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, ErrInvalidBaseURL(name, baseURL)
		}

		var transport Transport

		switch serverCfg.Version {
		case 9:
			cl, err := elasticV9.NewClient(elasticV9.Config{
				Addresses: serverCfg.Addresses,
				Username:  serverCfg.Username,
				Password:  serverCfg.Password,
			})
			if err != nil {
				return nil, errors.Wrapf(err, "failed to create v9 transport for %q", name)
			}
			transport = NewTransportV9(cl, u)

		case 8:
			cl, err := elasticV8.NewClient(elasticV8.Config{
				Addresses: serverCfg.Addresses,
				Username:  serverCfg.Username,
				Password:  serverCfg.Password,
			})
			if err != nil {
				return nil, errors.Wrapf(err, "failed to create v8 transport for %q", name)
			}
			transport = NewTransportV8(cl, u)

		default:
			// This should never happen after Validate()
			return nil, ErrInvalidVersion(name, serverCfg.Version)
		}

		reg.byName[name] = Entry{
			Name:      name,
			Version:   serverCfg.Version,
			Server:    Server(baseURL),
			Transport: transport,
		}
	}

	return reg, nil
}

// GetTransport returns the pre-created transport by server name.
func (r *Registry) GetTransport(serverName string) (Transport, error) {
	if serverName == "" {
		serverName = r.defaultName
	}

	entry, ok := r.byName[serverName]
	if !ok {
		return nil, ErrServerNotFound(serverName)
	}

	return entry.Transport, nil
}

// GetEntry returns the full entry (transport + metadata) by server name.
func (r *Registry) GetEntry(serverName string) (Entry, error) {
	if serverName == "" {
		serverName = r.defaultName
	}

	entry, ok := r.byName[serverName]
	if !ok {
		return Entry{}, ErrServerNotFound(serverName)
	}

	return entry, nil
}

// GetClient builds a typed client for a named server.
func (r *Registry) GetClient(serverName string, log Logger) (*Client, error) {
	entry, err := r.GetEntry(serverName)
	if err != nil {
		return nil, err
	}
	return NewClient(entry.Transport, entry.Server, log)
}

// Default returns the default server's transport.
func (r *Registry) Default() (Transport, error) {
	return r.GetTransport(r.defaultName)
}

// ListServers returns all registered server names.
func (r *Registry) ListServers() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	return names
}
