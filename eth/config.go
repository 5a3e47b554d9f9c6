package eth

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	envRpcURL  = "ETH_RPC_URL"
	envChainID = "ETH_CHAIN_ID"

	// -- conversion
	// abort: one bad transaction or withdrawal fails the block
	// skip:  bad elements are logged and dropped
	envBatchPolicy = "ETH_BATCH_POLICY"

	// -- request timeout for every RPC call, in seconds
	envRequestTimeoutSeconds = "ETH_REQUEST_TIMEOUT_SECONDS"

	DEFAULT_REQUEST_TIMEOUT_SECONDS = 30
)

// Config is what the block client needs to know about its node.
type Config interface {
	RPCURL() string
	// ChainID is the chain the node must serve, 0 disables the check.
	ChainID() uint64
	BatchPolicy() BatchPolicy
	RequestTimeout() time.Duration
}

type config struct {
	rpcURL         string
	chainId        uint64
	policy         BatchPolicy
	timeoutSeconds int
}

// Overrides replaces configuration values loaded from the environment.
// Zero values are ignored.
type Overrides struct {
	RPCURL                string
	ChainID               uint64
	BatchPolicy           string
	RequestTimeoutSeconds int
}

func NewConfiguration() (*config, error) {
	// ETH_RPC_URL may still come from Override, NewBlockClient checks it
	rpcURL := os.Getenv(envRpcURL)

	var chainId uint64
	if chainIDStr := os.Getenv(envChainID); chainIDStr != "" {
		id, err := strconv.ParseUint(chainIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ETH_CHAIN_ID: %w", err)
		}
		chainId = id
	}

	policy, err := ParseBatchPolicy(os.Getenv(envBatchPolicy))
	if err != nil {
		return nil, fmt.Errorf("invalid ETH_BATCH_POLICY: %w", err)
	}

	return &config{
		rpcURL:         rpcURL,
		chainId:        chainId,
		policy:         policy,
		timeoutSeconds: requestTimeoutFromEnv(),
	}, nil
}

// Override applies o on top of the loaded values.
func (c *config) Override(o Overrides) error {
	if o.RPCURL != "" {
		c.rpcURL = o.RPCURL
	}
	if o.ChainID != 0 {
		c.chainId = o.ChainID
	}
	if o.BatchPolicy != "" {
		policy, err := ParseBatchPolicy(o.BatchPolicy)
		if err != nil {
			return err
		}
		c.policy = policy
	}
	if o.RequestTimeoutSeconds > 0 {
		c.timeoutSeconds = o.RequestTimeoutSeconds
	}
	return nil
}

// SetChainID sets the expected chain ID, 0 disables the check.
func (c *config) SetChainID(id uint64) {
	c.chainId = id
}

func (c *config) RPCURL() string {
	return c.rpcURL
}

func (c *config) ChainID() uint64 {
	return c.chainId
}

func (c *config) BatchPolicy() BatchPolicy {
	return c.policy
}

// RequestTimeout returns the per call RPC timeout (default: 30s)
func (c *config) RequestTimeout() time.Duration {
	if c.timeoutSeconds <= 0 {
		return DEFAULT_REQUEST_TIMEOUT_SECONDS * time.Second
	}
	return time.Duration(c.timeoutSeconds) * time.Second
}

func requestTimeoutFromEnv() int {
	timeoutStr := os.Getenv(envRequestTimeoutSeconds)
	if timeoutStr == "" {
		return DEFAULT_REQUEST_TIMEOUT_SECONDS
	}
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil || timeout <= 0 {
		return DEFAULT_REQUEST_TIMEOUT_SECONDS
	}
	return timeout
}
