package config

// Config represents the complete semantic-delta configuration. It can be
// loaded from .sdp/config.yml with environment variable overrides.
type Config struct {
	Chunking ChunkingConfig `yaml:"chunking" mapstructure:"chunking"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
}

// ChunkingConfig controls the hybrid semantic/CDC chunker's size bounds.
type ChunkingConfig struct {
	MinChunkSize uint32 `yaml:"min_chunk_size" mapstructure:"min_chunk_size"`
	AvgChunkSize uint32 `yaml:"avg_chunk_size" mapstructure:"avg_chunk_size"`
	MaxChunkSize uint32 `yaml:"max_chunk_size" mapstructure:"max_chunk_size"`
}

// ServerConfig controls the stdio RPC server.
type ServerConfig struct {
	LogRequests bool `yaml:"log_requests" mapstructure:"log_requests"`
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Chunking: ChunkingConfig{
			MinChunkSize: 4096,
			AvgChunkSize: 16384,
			MaxChunkSize: 65536,
		},
		Server: ServerConfig{
			LogRequests: false,
		},
	}
}
