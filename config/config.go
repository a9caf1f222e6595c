package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/joho/godotenv"
)

// Chaincode captures how the chaincode process is launched.
type Chaincode struct {
	// ServerAddress switches the binary to chaincode-as-a-service mode when set.
	ServerAddress    string
	CCID             string
	TLSDisabled      bool
	TLSKeyPath       string
	TLSCertPath      string
	ClientCACertPath string
	LogSpec          string
}

// Load preloads envFile (when present) into the environment and builds the config.
// Variables already set in the environment win over the file.
func Load(envFile string) (Chaincode, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Chaincode{}, fmt.Errorf("failed to load env file '%s': %w", envFile, err)
		}
	}
	return FromEnv(), nil
}

// FromEnv builds a Chaincode config from environment variables.
func FromEnv() Chaincode {
	logSpec := os.Getenv("CHAINCODE_LOG_SPEC")
	if logSpec == "" {
		logSpec = "info"
	}
	return Chaincode{
		ServerAddress:    strings.TrimSpace(os.Getenv("CHAINCODE_SERVER_ADDRESS")),
		CCID:             os.Getenv("CHAINCODE_ID"),
		TLSDisabled:      strings.EqualFold(os.Getenv("CHAINCODE_TLS_DISABLED"), "true"),
		TLSKeyPath:       os.Getenv("CHAINCODE_TLS_KEY"),
		TLSCertPath:      os.Getenv("CHAINCODE_TLS_CERT"),
		ClientCACertPath: os.Getenv("CHAINCODE_CLIENT_CA_CERT"),
		LogSpec:          logSpec,
	}
}

// External reports whether the chaincode runs as an external service
// instead of being launched by the peer.
func (c Chaincode) External() bool {
	return c.ServerAddress != ""
}

// Validate checks the settings an external service needs.
func (c Chaincode) Validate() error {
	if !c.External() {
		return nil
	}
	if c.CCID == "" {
		return errors.New("CHAINCODE_ID is required when CHAINCODE_SERVER_ADDRESS is set")
	}
	if !c.TLSDisabled && (c.TLSKeyPath == "" || c.TLSCertPath == "") {
		return errors.New("CHAINCODE_TLS_KEY and CHAINCODE_TLS_CERT are required unless CHAINCODE_TLS_DISABLED=true")
	}
	return nil
}

// TLSProperties reads the key material for the chaincode server.
func (c Chaincode) TLSProperties() (shim.TLSProperties, error) {
	if c.TLSDisabled {
		return shim.TLSProperties{Disabled: true}, nil
	}
	key, err := os.ReadFile(c.TLSKeyPath)
	if err != nil {
		return shim.TLSProperties{}, fmt.Errorf("failed to read TLS key: %w", err)
	}
	cert, err := os.ReadFile(c.TLSCertPath)
	if err != nil {
		return shim.TLSProperties{}, fmt.Errorf("failed to read TLS certificate: %w", err)
	}
	props := shim.TLSProperties{Key: key, Cert: cert}
	if c.ClientCACertPath != "" {
		caCert, err := os.ReadFile(c.ClientCACertPath)
		if err != nil {
			return shim.TLSProperties{}, fmt.Errorf("failed to read client CA certificate: %w", err)
		}
		props.ClientCACerts = caCert
	}
	return props, nil
}
