package eth

import (
	"testing"
	"time"
)

func TestNewConfiguration_Success(t *testing.T) {
	t.Setenv("ETH_RPC_URL", "http://localhost:8545")
	t.Setenv("ETH_CHAIN_ID", "1234")
	t.Setenv("ETH_BATCH_POLICY", "skip")
	t.Setenv("ETH_REQUEST_TIMEOUT_SECONDS", "10")

	cfg, err := NewConfiguration()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.ChainID() != 1234 {
		t.Errorf("expected chain ID 1234, got %d", cfg.ChainID())
	}
	if cfg.RPCURL() != "http://localhost:8545" {
		t.Errorf("expected RPC URL http://localhost:8545, got %s", cfg.RPCURL())
	}
	if cfg.BatchPolicy() != PolicySkip {
		t.Errorf("expected skip policy, got %s", cfg.BatchPolicy())
	}
	if cfg.RequestTimeout() != 10*time.Second {
		t.Errorf("expected timeout 10s, got %s", cfg.RequestTimeout())
	}
}

func TestNewBlockClient_MissingRPCURL(t *testing.T) {
	t.Setenv("ETH_RPC_URL", "")
	cfg, err := NewConfiguration()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := NewBlockClient(cfg); err == nil {
		t.Fatal("expected error for missing RPC URL, got nil")
	}
}

func TestNewConfiguration_InvalidValues(t *testing.T) {
	t.Setenv("ETH_RPC_URL", "http://localhost:8545")

	t.Setenv("ETH_CHAIN_ID", "mainnet")
	if _, err := NewConfiguration(); err == nil {
		t.Error("expected error for invalid chain ID, got nil")
	}

	t.Setenv("ETH_CHAIN_ID", "1")
	t.Setenv("ETH_BATCH_POLICY", "retry")
	if _, err := NewConfiguration(); err == nil {
		t.Error("expected error for invalid batch policy, got nil")
	}
}

func TestConfigDefaults(t *testing.T) {
	t.Setenv("ETH_RPC_URL", "http://localhost:8545")
	t.Setenv("ETH_CHAIN_ID", "")
	t.Setenv("ETH_BATCH_POLICY", "")
	t.Setenv("ETH_REQUEST_TIMEOUT_SECONDS", "-3")

	cfg, err := NewConfiguration()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.ChainID() != 0 {
		t.Errorf("expected chain ID check disabled, got %d", cfg.ChainID())
	}
	if cfg.BatchPolicy() != PolicyAbort {
		t.Errorf("expected default abort policy, got %s", cfg.BatchPolicy())
	}
	if cfg.RequestTimeout() != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %s", cfg.RequestTimeout())
	}
}

func TestConfigOverride(t *testing.T) {
	cfg := &config{rpcURL: "http://localhost:8545", chainId: 1, timeoutSeconds: 30}

	err := cfg.Override(Overrides{RPCURL: "http://node:8545", BatchPolicy: "skip", RequestTimeoutSeconds: 5})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.RPCURL() != "http://node:8545" {
		t.Errorf("expected overridden RPC URL, got %s", cfg.RPCURL())
	}
	if cfg.ChainID() != 1 {
		t.Errorf("expected chain ID to be kept, got %d", cfg.ChainID())
	}
	if cfg.BatchPolicy() != PolicySkip {
		t.Errorf("expected skip policy, got %s", cfg.BatchPolicy())
	}
	if cfg.RequestTimeout() != 5*time.Second {
		t.Errorf("expected timeout 5s, got %s", cfg.RequestTimeout())
	}

	if err := cfg.Override(Overrides{BatchPolicy: "bogus"}); err == nil {
		t.Error("expected error for invalid batch policy, got nil")
	}
}
