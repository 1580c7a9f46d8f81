package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-dao/nexus-governance/internal/domain"
)

func TestLoadGovernanceEmitterConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *GovernanceEmitterConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
contract_address: "0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984"
worker:
  pool_size: 10
  queue_size: 500
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_STREAM"
  max_reconnects: 5
  reconnect_wait: "5s"
  connection_name: "test-connection"
ethereum:
  websocket_url: "ws://localhost:8545"
  rpc_url: "http://localhost:8545"
  chain_id: "eip155:1"
  start_block: 1000
`,
			expectError: false,
			validate: func(t *testing.T, cfg *GovernanceEmitterConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984", cfg.Contract)
				assert.Equal(t, 10, cfg.Worker.WorkerPoolSize)
				assert.Equal(t, 500, cfg.Worker.WorkerQueueSize)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "testuser", cfg.Database.User)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "TEST_STREAM", cfg.NATS.StreamName)
				assert.Equal(t, "ws://localhost:8545", cfg.Ethereum.WebSocketURL)
				assert.Equal(t, "eip155:1", string(cfg.Ethereum.ChainID))
				assert.Equal(t, uint64(1000), cfg.Ethereum.StartBlock)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
ethereum:
  websocket_url: "ws://localhost:8545"
  rpc_url: "http://localhost:8545"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *GovernanceEmitterConfig) {
				// Check defaults
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.NATS.MaxReconnects)
				assert.Equal(t, "2s", cfg.NATS.ReconnectWait.String())
				assert.Equal(t, "GOVERNANCE_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, "eip155:1", string(cfg.Ethereum.ChainID))
				assert.Equal(t, 20, cfg.Worker.WorkerPoolSize)
			},
		},
		{
			name:        "missing config file",
			configFile:  "",
			expectError: false,
			validate:    nil,
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true,
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			var configFile string

			if tt.configFile != "" {
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			} else {
				configFile = filepath.Join(tmpDir, "nonexistent.yaml")
			}

			cfg, err := LoadGovernanceEmitterConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				if tt.validate != nil {
					require.NoError(t, err)
					require.NotNil(t, cfg)
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadEventBridgeConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *EventBridgeConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: false
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_STREAM"
  consumer_name: "test-bridge"
  ack_wait: "45s"
  max_deliver: 5
worker:
  pool_size: 8
  queue_size: 256
`,
			expectError: false,
			validate: func(t *testing.T, cfg *EventBridgeConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, "test-bridge", cfg.NATS.ConsumerName)
				assert.Equal(t, 45*time.Second, cfg.NATS.AckWait)
				assert.Equal(t, 5, cfg.NATS.MaxDeliver)
				assert.Equal(t, 8, cfg.Worker.WorkerPoolSize)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *EventBridgeConfig) {
				assert.Equal(t, "GOVERNANCE_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, "event-bridge", cfg.NATS.ConsumerName)
				assert.Equal(t, 30*time.Second, cfg.NATS.AckWait)
				assert.Equal(t, 3, cfg.NATS.MaxDeliver)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadEventBridgeConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.validate != nil {
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadWorkerGovernanceConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *WorkerGovernanceConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
operator_address: "0x53d284357ec70cE289D6D64134DfAc8E511c8a3D"
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
temporal:
  host_port: "temporal.internal:7233"
  namespace: "governance"
  governance_task_queue: "governance-votes"
ethereum:
  chain_id: "eip155:11155111"
governance:
  contract_address: "0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984"
  admin_address: "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B"
  voting_period: 7200
  execution_delay_seconds: 3600
  quorum_percentage: 2000
  proposal_threshold: "500"
  grace_period_seconds: 604800
`,
			expectError: false,
			validate: func(t *testing.T, cfg *WorkerGovernanceConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "0x53d284357ec70cE289D6D64134DfAc8E511c8a3D", cfg.OperatorAddress)
				assert.Equal(t, "temporal.internal:7233", cfg.Temporal.HostPort)
				assert.Equal(t, "governance", cfg.Temporal.Namespace)
				assert.Equal(t, "governance-votes", cfg.Temporal.GovernanceTaskQueue)
				assert.Equal(t, "eip155:11155111", string(cfg.Ethereum.ChainID))
				assert.Equal(t, uint64(7200), cfg.Governance.VotingPeriod)
				assert.Equal(t, int64(3600), cfg.Governance.ExecutionDelaySeconds)
				assert.Equal(t, uint64(2000), cfg.Governance.QuorumPercentage)
				assert.Equal(t, "500", cfg.Governance.ProposalThreshold)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
governance:
  contract_address: "0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984"
  admin_address: "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *WorkerGovernanceConfig) {
				assert.Equal(t, "localhost:7233", cfg.Temporal.HostPort)
				assert.Equal(t, "default", cfg.Temporal.Namespace)
				assert.Equal(t, "governance-pipeline", cfg.Temporal.GovernanceTaskQueue)
				assert.Equal(t, 50, cfg.Temporal.MaxConcurrentActivityExecutionSize)
				assert.Equal(t, uint64(50400), cfg.Governance.VotingPeriod)
				assert.Equal(t, int64(48*3600), cfg.Governance.ExecutionDelaySeconds)
				assert.Equal(t, uint64(1000), cfg.Governance.QuorumPercentage)
				assert.Equal(t, "100", cfg.Governance.ProposalThreshold)
				assert.Equal(t, int64(14*24*3600), cfg.Governance.GracePeriodSeconds)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadWorkerGovernanceConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.validate != nil {
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 30
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
auth:
  jwt_public_key: "test-key"
  api_keys:
    - "key-1"
    - "key-2"
governance:
  contract_address: "0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984"
  admin_address: "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 30, cfg.Server.ReadTimeout)
				assert.Equal(t, "test-key", cfg.Auth.JWTPublicKey)
				assert.Equal(t, []string{"key-1", "key-2"}, cfg.Auth.APIKeys)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 10, cfg.Server.ReadTimeout)
				assert.Equal(t, 10, cfg.Server.WriteTimeout)
				assert.Equal(t, 120, cfg.Server.IdleTimeout)
				assert.Equal(t, "governance-pipeline", cfg.Temporal.GovernanceTaskQueue)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadAPIConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.validate != nil {
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		ReadHost: "db-read.internal",
		User:     "gov",
		Password: "secret",
		DBName:   "governance",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=gov password=secret dbname=governance sslmode=require",
		cfg.DSN())

	// ReadDSN falls back to the write port when no read port is set
	assert.Equal(t,
		"host=db-read.internal port=5433 user=gov password=secret dbname=governance sslmode=require",
		cfg.ReadDSN())

	cfg.ReadPort = 5434
	assert.Equal(t,
		"host=db-read.internal port=5434 user=gov password=secret dbname=governance sslmode=require",
		cfg.ReadDSN())
}

func TestGovernanceConfig_LedgerConfig(t *testing.T) {
	g := GovernanceConfig{
		ContractAddress:        "0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984",
		AdminAddress:           "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B",
		SingleTransactionLimit: "1000000",
		DailyWithdrawalLimit:   "5000000",
		VotingPeriod:           7200,
		ExecutionDelaySeconds:  3600,
		QuorumPercentage:       2000,
		ProposalThreshold:      "500",
		GracePeriodSeconds:     604800,
	}

	cfg, err := g.LedgerConfig(domain.ChainEthereumMainnet)
	require.NoError(t, err)
	assert.Equal(t, domain.ChainEthereumMainnet, cfg.Chain)
	assert.Equal(t, "0x1f9840a85d5af5bf1d1762f925bdaddc4201f984", cfg.Contract.String())
	assert.Equal(t, "0xab5801a7d398351b8be11c439e05c5b3259aec9b", cfg.Admin.String())
	assert.Equal(t, uint64(7200), cfg.Params.VotingPeriod)
	assert.Equal(t, time.Hour, cfg.Params.ExecutionDelay)
	assert.Equal(t, uint64(2000), cfg.Params.QuorumPercentage)
	assert.Equal(t, "500", cfg.Params.ProposalThreshold.String())
	assert.Equal(t, 7*24*time.Hour, cfg.Params.GracePeriod)
	assert.Equal(t, "1000000", cfg.SingleTransactionLimit.String())
	assert.Equal(t, "5000000", cfg.DailyWithdrawalLimit.String())

	g.ProposalThreshold = "not-a-number"
	_, err = g.LedgerConfig(domain.ChainEthereumMainnet)
	assert.Error(t, err)
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	// Create temporary directory for env files
	envDir := filepath.Join(tmpDir, "env")
	err := os.MkdirAll(envDir, 0750)
	require.NoError(t, err)

	// Env vars carry the NEXUS_GOV_ prefix
	envFile := filepath.Join(envDir, ".env")
	envContent := `NEXUS_GOV_DEBUG=true
NEXUS_GOV_DATABASE_HOST=env-host
NEXUS_GOV_DATABASE_PORT=3306
NEXUS_GOV_DATABASE_USER=env-user
NEXUS_GOV_DATABASE_PASSWORD=env-pass
NEXUS_GOV_DATABASE_DBNAME=env-db
NEXUS_GOV_NATS_URL=nats://env:4222
`
	err = os.WriteFile(envFile, []byte(envContent), 0600)
	require.NoError(t, err)

	// Create config file with different values to verify env vars override
	configPath := filepath.Join(tmpDir, "config.yaml")
	configFile := `
debug: false
database:
  host: file-host
  port: 5432
  user: file-user
  password: file-pass
  dbname: file-db
nats:
  url: "nats://file:4222"
`

	err = os.WriteFile(configPath, []byte(configFile), 0600)
	require.NoError(t, err)

	cfg, err := LoadEventBridgeConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Environment variables from the .env file override config file values
	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "env-user", cfg.Database.User)
	assert.Equal(t, "env-pass", cfg.Database.Password)
	assert.Equal(t, "env-db", cfg.Database.DBName)
	assert.Equal(t, "nats://env:4222", cfg.NATS.URL)
}
